package llm

import (
	"errors"
	"fmt"

	"assist_server/pkg/resilience"

	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// FailureReason classifies why a remote call produced no usable value.
type FailureReason string

const (
	ReasonTransport   FailureReason = "transport"    // network error or no response
	ReasonStatus      FailureReason = "status"       // provider answered non-2xx
	ReasonBreakerOpen FailureReason = "breaker_open" // circuit breaker short-circuited
	ReasonEmpty       FailureReason = "empty"        // provider returned no text
	ReasonParse       FailureReason = "parse"        // output is not JSON
	ReasonSchema      FailureReason = "schema"       // JSON does not match the target schema
)

// RemoteError is the detail carried by a RemoteFailure.
type RemoteError struct {
	Reason FailureReason
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Err == nil {
		return string(e.Reason)
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Result is either Success(value) or RemoteFailure(reason).
type Result[T any] struct {
	value   T
	failure *RemoteError
}

// Success wraps an accepted remote value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// RemoteFailure records why no value is available.
func RemoteFailure[T any](reason FailureReason, err error) Result[T] {
	return Result[T]{failure: &RemoteError{Reason: reason, Err: err}}
}

// OK reports whether the result is a Success.
func (r Result[T]) OK() bool {
	return r.failure == nil
}

// Value returns the wrapped value; the zero value for a RemoteFailure.
func (r Result[T]) Value() T {
	return r.value
}

// Failure returns the failure detail, nil for a Success.
func (r Result[T]) Failure() *RemoteError {
	return r.failure
}

// classifyCallError maps a completer error to a failure reason.
func classifyCallError(err error) FailureReason {
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	var genaiErr genai.APIError
	switch {
	case errors.Is(err, resilience.ErrCircuitOpen), errors.Is(err, resilience.ErrTooManyRequest):
		return ReasonBreakerOpen
	case errors.As(err, &apiErr), errors.As(err, &reqErr), errors.As(err, &genaiErr):
		return ReasonStatus
	case errors.Is(err, ErrEmptyCompletion):
		return ReasonEmpty
	default:
		return ReasonTransport
	}
}
