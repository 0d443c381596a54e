package services

import (
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/workflow"
)

// TransitionStrategy authorizes a screen to use a graph edge. Two
// implementations coexist during the screen-contract migration window:
// the legacy path checks the edge's screen list directly, the contract path
// checks the materialized per-screen contract. Contracts are derived from
// the same edges, so both strategies converge on the same outcome for the
// same request; the dual mode stages the rollout, it never forks business
// logic. The transition executor picks a strategy exactly once per request.
type TransitionStrategy interface {
	// Name identifies the strategy ("legacy" or "contract") for audit logging.
	Name() string

	// Authorize returns nil if the screen may request the edge, or an
	// InvalidTransitionError otherwise. Blockers are out of scope here:
	// authorization is about protocol, preconditions are business rules.
	Authorize(edge TransitionEdge, screen workflow.Screen) error
}

// LegacyTransitionStrategy authorizes directly against the edge's screen list.
type LegacyTransitionStrategy struct{}

// NewLegacyTransitionStrategy creates the legacy strategy.
func NewLegacyTransitionStrategy() LegacyTransitionStrategy {
	return LegacyTransitionStrategy{}
}

// Name returns "legacy".
func (LegacyTransitionStrategy) Name() string {
	return "legacy"
}

// Authorize checks that the edge's screen list contains the requesting screen.
func (LegacyTransitionStrategy) Authorize(edge TransitionEdge, screen workflow.Screen) error {
	if !edge.AllowsScreen(screen) {
		return order.NewInvalidTransitionError(edge.From, edge.To, screen)
	}
	return nil
}

// ContractTransitionStrategy authorizes against a resolved screen contract.
type ContractTransitionStrategy struct {
	contract ScreenContract
}

// NewContractTransitionStrategy creates a strategy bound to a resolved contract.
func NewContractTransitionStrategy(contract ScreenContract) ContractTransitionStrategy {
	return ContractTransitionStrategy{contract: contract}
}

// Name returns "contract".
func (ContractTransitionStrategy) Name() string {
	return "contract"
}

// Authorize checks that the contract grants the edge to its screen.
func (s ContractTransitionStrategy) Authorize(edge TransitionEdge, screen workflow.Screen) error {
	if s.contract.Screen() != screen || !s.contract.Allows(edge.From, edge.To) {
		return order.NewInvalidTransitionError(edge.From, edge.To, screen)
	}
	return nil
}
