package service

import (
	"context"
	"errors"
	"time"

	"vendbridge/internal/model"
)

const rateLimitPause = 60 * time.Second

// RunStatusUpdater drives reconciliation for orders whose webhook never
// arrives: every interval it evicts expired orders and polls the
// provider ledger for the rest. Stops when ctx is cancelled.
func (s *Service) RunStatusUpdater(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// eviction keeps running through a rate-limit pause;
				// only the status fan-out waits the penalty out
				s.sweep(ctx)

				if s.pool.isPaused() {
					continue
				}

				orders := s.store.PendingSnapshot()
				if len(orders) > 0 {
					s.pool.process(ctx, orders, s.refreshOrder)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// refreshOrder re-checks one pending order against the provider and
// feeds the result through the same reconciliation path the webhook
// uses.
func (s *Service) refreshOrder(ctx context.Context, order model.Order) {
	charge, err := s.gateway.QueryChargeStatus(ctx, order.ChargeID)
	if err != nil {
		if errors.Is(err, model.ErrRateLimited) {
			s.pool.pauseWithTimer(rateLimitPause)
			return
		}
		s.lg.Errorf("charge %s status refresh failed: %v", order.ChargeID, err)
		return
	}

	s.reconcile(ctx, order.ChargeID, charge)
}
