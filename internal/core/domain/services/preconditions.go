package services

import (
	"laundry/internal/core/domain/model/order"
)

// Blocker is a named precondition evaluated against an order snapshot.
// A blocker's check is pure: it reads stored order fields only, never the
// wall clock or any other ambient state, so that evaluating the same
// snapshot twice always yields the same result.
type Blocker struct {
	id          BlockerID
	description string
	check       func(*order.Order) bool
}

// ID returns the blocker's stable identifier.
func (b Blocker) ID() BlockerID {
	return b.id
}

// Description returns the human-readable explanation shown in checklists.
func (b Blocker) Description() string {
	return b.description
}

// blockerRegistry returns the catalog of known blockers.
// The check returns true when the precondition is satisfied.
func blockerRegistry() map[BlockerID]Blocker {
	return map[BlockerID]Blocker{
		BlockerItemsRecorded: {
			id:          BlockerItemsRecorded,
			description: "at least one item must be recorded on the ticket",
			check: func(o *order.Order) bool {
				return o.ItemsCount() > 0
			},
		},
		BlockerAllPiecesTagged: {
			id:          BlockerAllPiecesTagged,
			description: "every piece must be tagged before processing",
			check: func(o *order.Order) bool {
				return o.PiecesTagged() >= o.PiecesTotal()
			},
		},
		BlockerAllPiecesAssembled: {
			id:          BlockerAllPiecesAssembled,
			description: "every piece must be assembled back onto the order",
			check: func(o *order.Order) bool {
				return o.PiecesAssembled() >= o.PiecesTotal()
			},
		},
		BlockerQANoOpenIssues: {
			id:          BlockerQANoOpenIssues,
			description: "all quality issues must be resolved",
			check: func(o *order.Order) bool {
				return o.OpenQAIssues() == 0
			},
		},
		BlockerRackLocationRequired: {
			id:          BlockerRackLocationRequired,
			description: "a rack location must be recorded before the order is ready",
			check: func(o *order.Order) bool {
				return o.RackLocation() != ""
			},
		},
	}
}

// PreconditionEvaluator runs the blockers of a transition edge against an
// order snapshot and collects the failed ones.
//
// Evaluation is short-circuit free: every blocker on the edge runs so the
// caller receives the complete list of reasons, not just the first. The
// evaluator never mutates the order and never returns an error for business
// reasons; a non-empty result is a normal, expected outcome.
type PreconditionEvaluator struct{}

// NewPreconditionEvaluator creates a new PreconditionEvaluator.
func NewPreconditionEvaluator() PreconditionEvaluator {
	return PreconditionEvaluator{}
}

// Evaluate runs every blocker of the edge, in the edge's declared order,
// against the order snapshot. Returns the IDs of the blockers whose
// precondition is unmet; an empty list means the transition may proceed.
//
// An edge referencing a blocker absent from the registry fails that blocker:
// a misconfigured edge must never silently pass.
func (e PreconditionEvaluator) Evaluate(o *order.Order, edge TransitionEdge) []string {
	registry := blockerRegistry()

	failed := make([]string, 0)
	for _, id := range edge.Blockers {
		blocker, ok := registry[id]
		if !ok || !blocker.check(o) {
			failed = append(failed, string(id))
		}
	}
	return failed
}

// Describe returns the human-readable description of a blocker for UI
// checklists. The second return value is false for unknown IDs.
func (e PreconditionEvaluator) Describe(id BlockerID) (string, bool) {
	blocker, ok := blockerRegistry()[id]
	if !ok {
		return "", false
	}
	return blocker.description, true
}
