package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/workflow"
	"laundry/internal/core/domain/services"
)

// maxPersistAttempts bounds the automatic retries of the atomic write after a
// transition has been validated. Only infrastructure failures are retried;
// concurrency conflicts surface immediately because the winning transition
// may have changed the order's status.
const maxPersistAttempts = 3

// TransitionResult is the outcome of a transition request.
//
// A blocker failure is a normal, expected outcome, not an error: Success is
// false and Blockers lists the unmet preconditions for the actor to remediate.
// Protocol and infrastructure failures are returned as errors instead.
type TransitionResult struct {
	// Success reports whether the status change was committed.
	Success bool

	// NewStatus is the order's status after the transition.
	// Only meaningful when Success is true.
	NewStatus order.Status

	// Blockers lists the unmet precondition IDs. Empty iff Success.
	Blockers []string
}

// RequestTransitionCommandHandler is the transition executor: the single
// writer of order status and history.
//
// For each request it loads the order and the tenant's settings in one
// transaction, recomputes the effective status graph from fresh toggles,
// makes the legacy/contract routing decision exactly once, evaluates the
// edge's blockers, and, only if every blocker passes, applies the status
// change and appends the audit record atomically with a compare-and-swap on
// the order's version.
//
// Failure semantics:
//   - order.TerminalStateError, order.InvalidTransitionError: caller bug or
//     stale client; never retried.
//   - blocker failure: returned as data in TransitionResult, never an error.
//   - order.ConflictError: lost concurrency race; surfaced immediately so the
//     caller can reload and re-decide.
//   - order.PersistenceError: infrastructure failure after the bounded retry
//     budget is exhausted.
//
// Example:
//
//	handler := NewRequestTransitionCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrConflict):
//	    // reload and let the operator retry
//	case err != nil:
//	    // protocol or infrastructure failure
//	case !result.Success:
//	    renderChecklist(result.Blockers)
//	default:
//	    fmt.Printf("order is now %s", result.NewStatus)
//	}
type RequestTransitionCommandHandler struct {
	uowFactory UoWFactory
	graph      services.StatusGraph
	resolver   services.ScreenContractResolver
	evaluator  services.PreconditionEvaluator
}

// NewRequestTransitionCommandHandler creates the transition executor.
// Requires a UoWFactory providing access to both the order and tenant
// settings repositories in a single transaction.
func NewRequestTransitionCommandHandler(uowFactory UoWFactory) RequestTransitionCommandHandler {
	graph := services.NewStatusGraph()
	return RequestTransitionCommandHandler{
		uowFactory: uowFactory,
		graph:      graph,
		resolver:   services.NewScreenContractResolver(graph),
		evaluator:  services.NewPreconditionEvaluator(),
	}
}

// Handle processes the transition request, retrying the atomic write a
// bounded number of times on infrastructure failures.
func (h RequestTransitionCommandHandler) Handle(
	ctx context.Context,
	cmd RequestTransitionCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	var result TransitionResult
	var err error
	for attempt := 1; attempt <= maxPersistAttempts; attempt++ {
		result, err = h.execute(ctx, cmd)
		if err == nil || !errors.Is(err, order.ErrPersistence) {
			return result, err
		}
	}
	return result, err
}

// execute runs one full attempt: load, validate, authorize, evaluate, write.
// A request cancelled before the write leaves the order unmodified.
func (h RequestTransitionCommandHandler) execute(
	ctx context.Context,
	cmd RequestTransitionCommand,
) (TransitionResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	fromStatus := aggregate.Status()
	if fromStatus.IsTerminal() {
		return TransitionResult{}, order.NewTerminalStateError(fromStatus)
	}

	// Settings are read inside the transaction, never from a cache: the
	// effective graph must reflect the tenant's current toggles.
	settings, err := uow.TenantSettingsRepository().Get(ctx, aggregate.TenantID())
	if err != nil {
		return TransitionResult{}, err
	}

	edge, found := h.graph.FindEdge(settings.Toggles, fromStatus, cmd.ToStatus())
	if !found {
		return TransitionResult{}, order.NewInvalidTransitionError(fromStatus, cmd.ToStatus(), cmd.Screen())
	}

	strategy := h.selectStrategy(settings, cmd, fromStatus)
	if err = strategy.Authorize(edge, cmd.Screen()); err != nil {
		return TransitionResult{}, err
	}

	if blockers := h.evaluator.Evaluate(aggregate, edge); len(blockers) > 0 {
		return TransitionResult{Success: false, Blockers: blockers}, nil
	}

	record, err := aggregate.ApplyTransition(
		cmd.ToStatus(), cmd.Screen(), cmd.Notes(), cmd.ActorID(), time.Now().UTC(),
	)
	if err != nil {
		return TransitionResult{}, err
	}

	if err = orderRepo.UpdateWithHistory(ctx, aggregate, record); err != nil {
		if errors.Is(err, order.ErrConflict) {
			return TransitionResult{}, err
		}
		return TransitionResult{}, order.NewPersistenceError(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, order.NewPersistenceError(err)
	}

	return TransitionResult{Success: true, NewStatus: cmd.ToStatus(), Blockers: []string{}}, nil
}

// selectStrategy makes the routing decision exactly once per request.
// The contract path is taken only when the hint asks for it, the screen has a
// contract, and that contract grants the requested transition; every other
// case falls back to the legacy path. Both paths authorize against the same
// edge, so the choice can never change the business outcome.
func (h RequestTransitionCommandHandler) selectStrategy(
	settings workflow.Settings,
	cmd RequestTransitionCommand,
	fromStatus order.Status,
) services.TransitionStrategy {
	if cmd.Routing() == RoutingContract {
		if contract, ok := h.resolver.Resolve(settings, cmd.Screen()); ok &&
			contract.Allows(fromStatus, cmd.ToStatus()) {
			return services.NewContractTransitionStrategy(contract)
		}
	}
	return services.NewLegacyTransitionStrategy()
}
