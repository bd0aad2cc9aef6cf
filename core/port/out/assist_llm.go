package out

import "context"

// LLMCompleter sends one chat completion to a remote provider.
type LLMCompleter interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Provider() string
}

// CompletionRequest carries the prompts and generation parameters for one call.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
	JSONMode    bool
}
