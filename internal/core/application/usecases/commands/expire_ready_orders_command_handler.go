package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/workflow"
)

// expiryActorID identifies the background sweep in transition audit records.
const expiryActorID = "scheduler"

// ExpireReadyOrdersCommandHandler cancels orders that have sat in "ready"
// longer than the retention window without being picked up.
//
// Each candidate is cancelled through the regular transition executor on the
// manager screen, so expiry obeys the same graph, authorization, and
// concurrency rules as any workstation request. Orders are processed
// independently: one failure never rolls back another order's cancellation.
type ExpireReadyOrdersCommandHandler struct {
	uowFactory        UoWFactory
	transitionHandler RequestTransitionCommandHandler
	retention         time.Duration
}

// NewExpireReadyOrdersCommandHandler creates a handler for the expiry sweep.
// retention is how long an order may remain in "ready" before it is cancelled.
func NewExpireReadyOrdersCommandHandler(
	uowFactory UoWFactory,
	transitionHandler RequestTransitionCommandHandler,
	retention time.Duration,
) ExpireReadyOrdersCommandHandler {
	return ExpireReadyOrdersCommandHandler{
		uowFactory:        uowFactory,
		transitionHandler: transitionHandler,
		retention:         retention,
	}
}

// Handle processes the expiry sweep.
// Collects the orders currently in "ready", then cancels each one whose last
// transition is older than the retention window. Returns the joined errors of
// the orders that could not be processed; already-cancelled orders stay cancelled.
func (h ExpireReadyOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireReadyOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	candidates, err := h.loadReadyOrders(ctx)
	if err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-h.retention)

	var failures []error
	for _, candidate := range candidates {
		history := candidate.History()
		if len(history) == 0 {
			continue
		}
		if history[len(history)-1].OccurredAt().After(cutoff) {
			continue
		}

		if expireErr := h.expire(ctx, candidate); expireErr != nil {
			failures = append(failures, fmt.Errorf("order %s: %w", candidate.ID(), expireErr))
		}
	}

	return errors.Join(failures...)
}

// loadReadyOrders reads the candidate set in a short read-only transaction.
func (h ExpireReadyOrdersCommandHandler) loadReadyOrders(ctx context.Context) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetAllInStatus(ctx, order.Ready)
}

// expire cancels one order through the transition executor.
// A conflict means a workstation advanced the order while the sweep ran; the
// order is simply no longer a candidate.
func (h ExpireReadyOrdersCommandHandler) expire(ctx context.Context, candidate *order.Order) error {
	cmd, err := NewRequestTransitionCommand(
		candidate.ID(),
		workflow.ScreenManager,
		order.Cancelled,
		"ready retention window exceeded",
		expiryActorID,
		RoutingLegacy,
	)
	if err != nil {
		return err
	}

	result, err := h.transitionHandler.Handle(ctx, cmd)
	if errors.Is(err, order.ErrConflict) || errors.Is(err, order.ErrTerminalState) {
		return nil
	}
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("cancellation blocked: %v", result.Blockers)
	}
	return nil
}
