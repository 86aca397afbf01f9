// README: Usage module service (burst limit + monthly quota + history).
package usage

import (
	"context"
	"time"
)

// Service orchestrates plan-usage accounting.
type Service struct {
	store        *Store
	monthlyQuota int
	burstLimit   int
}

// NewService creates a Service backed by the given Store and limits.
func NewService(store *Store, monthlyQuota, burstLimit int) *Service {
	return &Service{store: store, monthlyQuota: monthlyQuota, burstLimit: burstLimit}
}

// Allow checks the burst window, then deducts one request from the user's
// monthly allowance. Returns ErrBurstLimited or ErrQuotaExceeded when the
// corresponding limit is hit.
func (s *Service) Allow(ctx context.Context, uid string) error {
	n, err := s.store.CountBurst(ctx, uid)
	if err != nil {
		return err
	}
	if n > int64(s.burstLimit) {
		return ErrBurstLimited
	}
	return s.usePlanRequest(ctx, uid)
}

// usePlanRequest deducts one monthly request. If the user row does not exist
// yet it is initialised and the deduction is retried once.
func (s *Service) usePlanRequest(ctx context.Context, uid string) error {
	err := s.store.UsePlanRequest(ctx, uid, s.monthlyQuota)
	if err != ErrQuotaExceeded {
		return err
	}

	if initErr := s.store.EnsureUser(ctx, uid, s.monthlyQuota); initErr != nil {
		return initErr
	}
	return s.store.UsePlanRequest(ctx, uid, s.monthlyQuota)
}

// RecordPlan appends a generated plan to the history table.
func (s *Service) RecordPlan(ctx context.Context, uid, query string, planJSON []byte, took time.Duration) error {
	return s.store.RecordPlan(ctx, uid, query, planJSON, took)
}
