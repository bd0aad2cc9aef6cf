package llm

import (
	"context"
	"time"

	"assist_server/core/port/out"
	"assist_server/pkg/metrics"
)

// Task names used in metrics and logs.
const (
	TaskClassify = "classify"
	TaskDraft    = "draft"
)

// Generation parameters per task.
const (
	classifyTemperature = 0.3
	classifyMaxTokens   = 300
	draftTemperature    = 0.7
	draftMaxTokens      = 800
)

// Inference turns emails into remote classification and draft results.
// Each operation issues exactly one completion call and never retries.
type Inference struct {
	completer out.LLMCompleter
}

// NewInference wraps a completer for the active provider.
func NewInference(completer out.LLMCompleter) *Inference {
	return &Inference{completer: completer}
}

// Provider returns the name of the backing provider.
func (i *Inference) Provider() string {
	return i.completer.Provider()
}

// complete runs one completion and records its latency and failure reason.
func (i *Inference) complete(ctx context.Context, task string, prompt Prompt, temperature float32, maxTokens int) (string, *RemoteError) {
	start := time.Now()
	text, err := i.completer.Complete(ctx, out.CompletionRequest{
		System:      prompt.System,
		User:        prompt.User,
		Temperature: temperature,
		MaxTokens:   maxTokens,
		JSONMode:    true,
	})

	status := "ok"
	var rerr *RemoteError
	if err != nil {
		rerr = &RemoteError{Reason: classifyCallError(err), Err: err}
		status = "error"
	}
	metrics.RecordRemoteCall(i.Provider(), task, status, time.Since(start))
	if rerr != nil {
		i.recordFailure(task, rerr)
	}
	return text, rerr
}

func (i *Inference) recordFailure(task string, rerr *RemoteError) {
	metrics.IncrementRemoteFailure(i.Provider(), task, string(rerr.Reason))
}
