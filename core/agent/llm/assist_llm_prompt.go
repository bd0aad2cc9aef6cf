package llm

import (
	"fmt"
	"strings"

	"assist_server/core/domain"
)

// Prompt is a rendered system/user prompt pair.
type Prompt struct {
	System string
	User   string
}

const classifySystemPrompt = `You are an email triage assistant. Analyze the email and classify it.
Respond in JSON only, no additional text.`

const classifySchemaExample = `{
  "labels": ["label1", "label2"],
  "priorityScore": 0-100,
  "summary": "one sentence summary",
  "suggestedActions": ["action1", "action2"]
}`

const draftSystemPrompt = `You are an email reply assistant. Write reply drafts on behalf of the recipient.
Respond in JSON only, no additional text.`

const draftSchemaExample = `{
  "variants": [
    {"text": "shortest reply", "tokens": 40, "estimatedSendTime": "<1 min"},
    {"text": "more detailed reply", "tokens": 90, "estimatedSendTime": "~1 min"},
    {"text": "most detailed reply", "tokens": 160, "estimatedSendTime": "~2 min"}
  ]
}`

var toneInstructions = map[domain.Tone]string{
	domain.ToneProfessional: "Use a formal, professional business tone.",
	domain.ToneFriendly:     "Use a warm, friendly and conversational tone.",
	domain.ToneBrief:        "Be brief, concise and to the point.",
}

// BuildClassifyPrompt renders the classification prompt for email.
func BuildClassifyPrompt(email *domain.EmailMessage) Prompt {
	var b strings.Builder
	b.WriteString("Classify this email.\n\n")
	writeEmail(&b, email)
	if email.PriorityScore != nil {
		fmt.Fprintf(&b, "Current priority score: %d\n", *email.PriorityScore)
	}
	b.WriteString("\nPriority score: 0 (ignore) to 100 (urgent).\n")
	b.WriteString("\nRespond with this exact JSON format:\n")
	b.WriteString(classifySchemaExample)

	return Prompt{System: classifySystemPrompt, User: b.String()}
}

// BuildDraftPrompt renders the reply drafting prompt for req.
func BuildDraftPrompt(req *domain.ToneRequest) Prompt {
	var b strings.Builder
	b.WriteString("Draft a reply to this email.\n\n")
	writeEmail(&b, &req.Email)

	fmt.Fprintf(&b, "\nTone: %s\n", toneInstruction(req.Tone))

	if snippets := nonEmpty(req.Snippets); len(snippets) > 0 {
		b.WriteString("\nThe reply must include these points:\n")
		for _, s := range snippets {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	fmt.Fprintf(&b, "\nWrite exactly %d variants, each progressively more detailed than the previous one.\n", domain.DraftVariantCount)
	b.WriteString("tokens is an estimate of the variant's length; estimatedSendTime is how long it takes to review and send.\n")
	b.WriteString("\nRespond with this exact JSON format:\n")
	b.WriteString(draftSchemaExample)

	return Prompt{System: draftSystemPrompt, User: b.String()}
}

func writeEmail(b *strings.Builder, email *domain.EmailMessage) {
	fmt.Fprintf(b, "From: %s\n", email.Sender)
	fmt.Fprintf(b, "Subject: %s\n", email.Subject)
	if email.Category != "" {
		fmt.Fprintf(b, "Category: %s\n", email.Category)
	}
	if len(email.Labels) > 0 {
		fmt.Fprintf(b, "Current labels: %s\n", strings.Join(email.Labels, ", "))
	}
	fmt.Fprintf(b, "\nBody:\n%s\n", email.Body)
}

func toneInstruction(tone domain.Tone) string {
	if s, ok := toneInstructions[tone]; ok {
		return s
	}
	return toneInstructions[domain.ToneProfessional]
}

func nonEmpty(items []string) []string {
	var out []string
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
