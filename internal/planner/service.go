// README: Retry orchestrator driving the call-decode-validate cycle.
package planner

import (
	"context"
	"fmt"
	"log"
	"time"

	"tripsmith/internal/ai"
	"tripsmith/internal/plan"
)

const (
	defaultMaxAttempts = 3
	defaultBackoffUnit = time.Second
)

// ExhaustedRetriesError is returned when every attempt failed. It wraps the
// last underlying cause so callers can still tell a dead upstream from a
// model that kept producing unparseable or invalid documents.
type ExhaustedRetriesError struct {
	Attempts int
	LastErr  error
}

func (e *ExhaustedRetriesError) Error() string {
	return fmt.Sprintf("travel plan request failed after %d attempts: %v", e.Attempts, e.LastErr)
}

func (e *ExhaustedRetriesError) Unwrap() error { return e.LastErr }

// Service requests validated travel plans from the completion client.
// The client is injected so tests can substitute a stub.
type Service struct {
	client      ai.CompletionClient
	maxAttempts int
	backoffUnit time.Duration
	sleep       func(time.Duration)
}

// NewService creates a Service with the standard retry policy:
// 3 attempts, exponential backoff of 1s, 2s between them.
func NewService(client ai.CompletionClient) *Service {
	return &Service{
		client:      client,
		maxAttempts: defaultMaxAttempts,
		backoffUnit: defaultBackoffUnit,
		sleep:       time.Sleep,
	}
}

// attemptResult tags the outcome of a single attempt so the retry loop is
// driven by explicit states instead of error-type switches.
type attemptResult struct {
	plan      *plan.TravelPlan
	retryable error
	fatal     error
}

func (s *Service) attempt(ctx context.Context, messages []ai.Message) attemptResult {
	raw, err := s.client.Complete(ctx, messages)
	if err != nil {
		if ctx.Err() != nil {
			// The caller gave up; retrying would only fail the same way.
			return attemptResult{fatal: err}
		}
		return attemptResult{retryable: err}
	}

	p, err := plan.Decode([]byte(raw))
	if err != nil {
		// Unparseable or schema-breaking output is worth another attempt:
		// the model may produce a conformant document next time.
		return attemptResult{retryable: err}
	}
	return attemptResult{plan: p}
}

// GetTravelPlan builds the prompt for query and runs the call-decode-validate
// cycle, retrying transient failures with exponential backoff (1, 2 units; no
// sleep after the final attempt). It makes at most maxAttempts completion
// calls and surfaces *ExhaustedRetriesError once they are spent.
func (s *Service) GetTravelPlan(ctx context.Context, query string) (*plan.TravelPlan, error) {
	messages := BuildMessages(query)

	var lastErr error
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		res := s.attempt(ctx, messages)
		switch {
		case res.plan != nil:
			return res.plan, nil
		case res.fatal != nil:
			return nil, res.fatal
		default:
			lastErr = res.retryable
			log.Printf("travel plan attempt %d/%d failed: %v", attempt+1, s.maxAttempts, lastErr)
			if attempt < s.maxAttempts-1 {
				s.sleep(s.backoffUnit << attempt)
			}
		}
	}

	return nil, &ExhaustedRetriesError{Attempts: s.maxAttempts, LastErr: lastErr}
}
