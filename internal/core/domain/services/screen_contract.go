package services

import (
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/workflow"
)

// ScreenContract is the per-screen view of a tenant's effective status graph:
// the subset of edges that one workstation may request.
//
// A contract is constructed only from graph edges, never from a separate
// authority, so a screen can never be granted a transition absent from the
// graph, even by misconfiguration.
type ScreenContract struct {
	screen workflow.Screen
	edges  []TransitionEdge
}

// Screen returns the workstation this contract belongs to.
func (c ScreenContract) Screen() workflow.Screen {
	return c.screen
}

// Allows reports whether this screen may request the from -> to transition.
func (c ScreenContract) Allows(from, to order.Status) bool {
	for _, edge := range c.edges {
		if edge.From == from && edge.To == to {
			return true
		}
	}
	return false
}

// AllowedTargets returns the statuses this screen may move an order to from
// the given status, in graph order.
func (c ScreenContract) AllowedTargets(from order.Status) []order.Status {
	targets := make([]order.Status, 0, 2)
	for _, edge := range c.edges {
		if edge.From == from {
			targets = append(targets, edge.To)
		}
	}
	return targets
}

// ScreenContractResolver materializes screen contracts from the status graph
// for tenants enrolled in the screen-contract rollout.
type ScreenContractResolver struct {
	graph StatusGraph
}

// NewScreenContractResolver creates a resolver backed by the given graph.
func NewScreenContractResolver(graph StatusGraph) ScreenContractResolver {
	return ScreenContractResolver{graph: graph}
}

// Resolve returns the contract for the given screen under the tenant's
// settings. The second return value is false when the screen has no contract
// yet. That is not an error: it signals the transition executor to route the
// request through the legacy path.
func (r ScreenContractResolver) Resolve(
	settings workflow.Settings,
	screen workflow.Screen,
) (ScreenContract, bool) {
	if !settings.HasContract(screen) {
		return ScreenContract{}, false
	}

	edges := make([]TransitionEdge, 0)
	for _, edge := range r.graph.Edges(settings.Toggles) {
		if edge.AllowsScreen(screen) {
			edges = append(edges, edge)
		}
	}

	return ScreenContract{screen: screen, edges: edges}, true
}
