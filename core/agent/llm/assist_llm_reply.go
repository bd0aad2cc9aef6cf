package llm

import (
	"context"
	"math"
	"strings"

	"assist_server/core/domain"
)

type draftVariantPayload struct {
	Text              string   `json:"text"`
	Tokens            *float64 `json:"tokens"`
	EstimatedSendTime *string  `json:"estimatedSendTime"`
}

type draftPayload struct {
	Variants []draftVariantPayload `json:"variants"`
}

// Draft asks the provider for reply variants in the requested tone.
func (i *Inference) Draft(ctx context.Context, req *domain.ToneRequest) Result[domain.DraftReply] {
	prompt := BuildDraftPrompt(req)

	text, rerr := i.complete(ctx, TaskDraft, prompt, draftTemperature, draftMaxTokens)
	if rerr != nil {
		return RemoteFailure[domain.DraftReply](rerr.Reason, rerr.Err)
	}

	var payload draftPayload
	if rerr := decodeModelJSON(text, draftSchema, &payload); rerr != nil {
		i.recordFailure(TaskDraft, rerr)
		return RemoteFailure[domain.DraftReply](rerr.Reason, rerr.Err)
	}

	return Success(normalizeDraft(&payload))
}

// normalizeDraft estimates tokens and send time where the model left them out.
func normalizeDraft(p *draftPayload) domain.DraftReply {
	variants := make([]domain.DraftVariant, 0, len(p.Variants))
	for _, v := range p.Variants {
		dv := domain.DraftVariant{Text: v.Text}

		if v.Tokens != nil {
			dv.Tokens = int(math.Round(*v.Tokens))
		} else {
			dv.Tokens = domain.EstimateTokens(v.Text)
		}

		if v.EstimatedSendTime != nil && strings.TrimSpace(*v.EstimatedSendTime) != "" {
			dv.EstimatedSendTime = *v.EstimatedSendTime
		} else {
			dv.EstimatedSendTime = domain.EstimateSendTime(v.Text)
		}

		variants = append(variants, dv)
	}
	return domain.DraftReply{Variants: variants}
}
