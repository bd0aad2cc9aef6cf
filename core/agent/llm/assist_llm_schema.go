package llm

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const classificationSchemaJSON = `{
  "type": "object",
  "properties": {
    "labels": {"type": ["array", "null"], "items": {"type": "string"}},
    "priorityScore": {"type": ["number", "null"], "minimum": 0, "maximum": 100},
    "summary": {"type": ["string", "null"]},
    "suggestedActions": {"type": ["array", "null"], "items": {"type": "string"}}
  }
}`

const draftSchemaJSON = `{
  "type": "object",
  "required": ["variants"],
  "properties": {
    "variants": {
      "type": "array",
      "minItems": 3,
      "maxItems": 3,
      "items": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text": {"type": "string", "minLength": 1},
          "tokens": {"type": ["number", "null"], "minimum": 0, "maximum": 100000},
          "estimatedSendTime": {"type": ["string", "null"]}
        }
      }
    }
  }
}`

var (
	classificationSchema = jsonschema.MustCompileString("classification.json", classificationSchemaJSON)
	draftSchema          = jsonschema.MustCompileString("draft.json", draftSchemaJSON)
)

// decodeModelJSON parses model output, validates it against schema and decodes it into target.
func decodeModelJSON(text string, schema *jsonschema.Schema, target any) *RemoteError {
	cleaned := stripCodeFence(text)

	var doc any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return &RemoteError{Reason: ReasonParse, Err: err}
	}
	if err := schema.Validate(doc); err != nil {
		return &RemoteError{Reason: ReasonSchema, Err: err}
	}
	if err := json.Unmarshal([]byte(cleaned), target); err != nil {
		return &RemoteError{Reason: ReasonSchema, Err: err}
	}
	return nil
}

// stripCodeFence removes a surrounding markdown code fence, if any.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
