package llm

import (
	"context"
	"fmt"
	"math"
	"strings"

	"assist_server/core/domain"
)

// classificationPayload mirrors the model output; nil fields were absent.
type classificationPayload struct {
	Labels           []string `json:"labels"`
	PriorityScore    *float64 `json:"priorityScore"`
	Summary          *string  `json:"summary"`
	SuggestedActions []string `json:"suggestedActions"`
}

// Classify asks the provider to classify email.
func (i *Inference) Classify(ctx context.Context, email *domain.EmailMessage) Result[domain.Classification] {
	prompt := BuildClassifyPrompt(email)

	text, rerr := i.complete(ctx, TaskClassify, prompt, classifyTemperature, classifyMaxTokens)
	if rerr != nil {
		return RemoteFailure[domain.Classification](rerr.Reason, rerr.Err)
	}

	var payload classificationPayload
	if rerr := decodeModelJSON(text, classificationSchema, &payload); rerr != nil {
		i.recordFailure(TaskClassify, rerr)
		return RemoteFailure[domain.Classification](rerr.Reason, rerr.Err)
	}

	return Success(normalizeClassification(&payload, email))
}

// normalizeClassification fills absent fields from the input email.
func normalizeClassification(p *classificationPayload, email *domain.EmailMessage) domain.Classification {
	c := domain.Classification{
		Labels:           p.Labels,
		SuggestedActions: p.SuggestedActions,
	}

	if c.Labels == nil {
		c.Labels = email.LabelsCopy()
	}
	if c.SuggestedActions == nil {
		c.SuggestedActions = []string{}
	}

	if p.PriorityScore != nil {
		c.PriorityScore = domain.ClampScore(int(math.Round(*p.PriorityScore)))
	} else {
		c.PriorityScore = email.PriorityOr(domain.DefaultPriorityScore)
	}

	if p.Summary != nil && strings.TrimSpace(*p.Summary) != "" {
		c.Summary = *p.Summary
	} else {
		c.Summary = fmt.Sprintf("Email from %s", email.Sender)
	}

	return c
}
