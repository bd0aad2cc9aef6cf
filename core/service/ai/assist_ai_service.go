package ai

import (
	"context"

	"assist_server/core/agent/llm"
	"assist_server/core/domain"
	"assist_server/core/port/in"
	"assist_server/pkg/apperr"
	"assist_server/pkg/logger"
	"assist_server/pkg/metrics"
)

// Remote is the provider-backed inference path.
type Remote interface {
	Provider() string
	Classify(ctx context.Context, email *domain.EmailMessage) llm.Result[domain.Classification]
	Draft(ctx context.Context, req *domain.ToneRequest) llm.Result[domain.DraftReply]
}

// Fallback must answer every valid request.
type Fallback interface {
	Classify(email *domain.EmailMessage) domain.Classification
	Draft(req *domain.ToneRequest) domain.DraftReply
}

type Service struct {
	registry *llm.ProviderRegistry
	remote   Remote
	fallback Fallback
}

var _ in.AIService = (*Service)(nil)

// NewService wires the pipeline. remote may be nil when no provider is configured.
func NewService(registry *llm.ProviderRegistry, remote Remote, fallback Fallback) *Service {
	return &Service{
		registry: registry,
		remote:   remote,
		fallback: fallback,
	}
}

// ClassifyEmail classifies the request's email remotely, falling back to the stub.
func (s *Service) ClassifyEmail(ctx context.Context, req *in.ClassifyRequest) (*domain.Classification, error) {
	if req == nil || req.Email == nil {
		metrics.IncrementAIRequest(llm.TaskClassify, metrics.OutcomeInvalid)
		return nil, apperr.MissingField("email")
	}
	email := req.Email

	c := resolve(ctx, s, llm.TaskClassify,
		func(r Remote) llm.Result[domain.Classification] { return r.Classify(ctx, email) },
		func() domain.Classification { return s.fallback.Classify(email) },
	)
	return &c, nil
}

// DraftReply drafts reply variants remotely, falling back to the stub.
func (s *Service) DraftReply(ctx context.Context, req *in.DraftRequest) (*domain.DraftReply, error) {
	toneReq, err := toToneRequest(req)
	if err != nil {
		metrics.IncrementAIRequest(llm.TaskDraft, metrics.OutcomeInvalid)
		return nil, err
	}

	d := resolve(ctx, s, llm.TaskDraft,
		func(r Remote) llm.Result[domain.DraftReply] { return r.Draft(ctx, toneReq) },
		func() domain.DraftReply { return s.fallback.Draft(toneReq) },
	)
	return &d, nil
}

// ProviderStatus reports configured providers and the active one.
func (s *Service) ProviderStatus() domain.ProviderStatus {
	return s.registry.Status()
}

func toToneRequest(req *in.DraftRequest) (*domain.ToneRequest, error) {
	if req == nil || req.Email == nil {
		return nil, apperr.MissingField("email")
	}
	if req.Tone == nil {
		return nil, apperr.MissingField("tone")
	}
	tone, ok := domain.ParseTone(*req.Tone)
	if !ok {
		return nil, apperr.InvalidInput("tone", "must be one of Professional, Friendly, Brief")
	}
	return &domain.ToneRequest{
		Email:    *req.Email,
		Tone:     tone,
		Snippets: req.Snippets,
	}, nil
}

// resolve runs the remote path when one is configured and falls back to the stub on any failure.
func resolve[T any](ctx context.Context, s *Service, task string, remote func(Remote) llm.Result[T], stub func() T) T {
	if s.remote == nil {
		metrics.IncrementAIRequest(task, metrics.OutcomeStub)
		return stub()
	}

	result := remote(s.remote)
	if result.OK() {
		metrics.IncrementAIRequest(task, metrics.OutcomeRemote)
		return result.Value()
	}

	failure := result.Failure()
	logger.WithContext(ctx).WithFields(map[string]any{
		"task":     task,
		"provider": s.remote.Provider(),
		"reason":   string(failure.Reason),
	}).WithError(failure.Err).Warn("remote inference failed, using stub")
	metrics.IncrementAIRequest(task, metrics.OutcomeFallback)

	return stub()
}
