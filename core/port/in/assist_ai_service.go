package in

import (
	"context"

	"assist_server/core/domain"
)

type AIService interface {
	// Email classification
	ClassifyEmail(ctx context.Context, req *ClassifyRequest) (*domain.Classification, error)

	// Reply drafting
	DraftReply(ctx context.Context, req *DraftRequest) (*domain.DraftReply, error)

	// Provider availability, recomputed per call
	ProviderStatus() domain.ProviderStatus
}

// ClassifyRequest is the body of POST /api/ai/classify.
type ClassifyRequest struct {
	Email *domain.EmailMessage `json:"email"`
}

// DraftRequest is the body of POST /api/ai/draft.
type DraftRequest struct {
	Email    *domain.EmailMessage `json:"email"`
	Tone     *string              `json:"tone"`
	Snippets []string             `json:"snippets"`
}
