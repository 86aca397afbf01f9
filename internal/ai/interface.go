// README: Completion client seam; implementations must not retry.
package ai

import (
	"context"
	"fmt"
)

// CompletionClient is the narrow seam to the generative completion service.
// Implementations translate the message exchange to the provider wire format,
// perform exactly one call, and return the raw response text. Retry policy
// belongs to the caller so backoff stays centralized and testable.
type CompletionClient interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Options fix the generation parameters for a client. They are applied once
// at construction so the shared client stays read-only afterwards.
type Options struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// DefaultOptions returns the planner's standard generation parameters:
// structured JSON output, moderate creativity, a 4000-token response budget.
func DefaultOptions() Options {
	return Options{
		Model:           defaultModel,
		Temperature:     0.7,
		MaxOutputTokens: 4000,
	}
}

// CallError wraps any transport, auth, rate-limit or server failure from the
// completion service.
type CallError struct {
	Err error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("completion call failed: %v", e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }
