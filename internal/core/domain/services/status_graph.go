package services

import (
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/workflow"
)

// BlockerID names a precondition that must hold before a transition is
// permitted. Blocker IDs are stable identifiers: they appear verbatim in
// transition results so workstations can render remediation checklists.
type BlockerID string

// Known blockers and the edges they guard in the canonical chain.
const (
	// BlockerItemsRecorded guards intake -> preparation: the ticket must list items.
	BlockerItemsRecorded BlockerID = "items_recorded"

	// BlockerAllPiecesTagged guards preparation -> processing.
	BlockerAllPiecesTagged BlockerID = "all_pieces_tagged"

	// BlockerAllPiecesAssembled guards assembly -> next stage.
	BlockerAllPiecesAssembled BlockerID = "all_pieces_assembled"

	// BlockerQANoOpenIssues guards qa -> next stage.
	BlockerQANoOpenIssues BlockerID = "qa_no_open_issues"

	// BlockerRackLocationRequired guards packing -> ready.
	BlockerRackLocationRequired BlockerID = "rack_location_required"
)

// TransitionEdge is one directed edge of a tenant's effective status graph:
// which screens may request it and which blockers guard it, in evaluation order.
type TransitionEdge struct {
	From     order.Status
	To       order.Status
	Screens  []workflow.Screen
	Blockers []BlockerID
}

// AllowsScreen reports whether the given screen may request this edge.
func (e TransitionEdge) AllowsScreen(screen workflow.Screen) bool {
	for _, s := range e.Screens {
		if s == screen {
			return true
		}
	}
	return false
}

// chainLink describes one stage of the canonical chain: the screens allowed
// to advance an order out of the stage, the blockers on its outgoing edge,
// and whether the stage is enabled for a given tenant.
type chainLink struct {
	stage    order.Status
	screens  []workflow.Screen
	blockers []BlockerID
	enabled  func(workflow.StageToggles) bool
}

// canonicalChain returns the full stage chain with per-stage screens and
// blockers. The static definition never changes per tenant; disabled stages
// are spliced out by Edges.
func canonicalChain() []chainLink {
	always := func(workflow.StageToggles) bool { return true }

	return []chainLink{
		{
			stage:    order.Intake,
			screens:  []workflow.Screen{workflow.ScreenIntake},
			blockers: []BlockerID{BlockerItemsRecorded},
			enabled:  always,
		},
		{
			stage:    order.Preparation,
			screens:  []workflow.Screen{workflow.ScreenPreparation},
			blockers: []BlockerID{BlockerAllPiecesTagged},
			enabled:  always,
		},
		{
			stage:   order.Processing,
			screens: []workflow.Screen{workflow.ScreenProcessing},
			enabled: always,
		},
		{
			stage:    order.Assembly,
			screens:  []workflow.Screen{workflow.ScreenAssembly},
			blockers: []BlockerID{BlockerAllPiecesAssembled},
			enabled:  func(t workflow.StageToggles) bool { return t.AssemblyEnabled },
		},
		{
			stage:    order.QA,
			screens:  []workflow.Screen{workflow.ScreenQA},
			blockers: []BlockerID{BlockerQANoOpenIssues},
			enabled:  func(t workflow.StageToggles) bool { return t.QAEnabled },
		},
		{
			stage:    order.Packing,
			screens:  []workflow.Screen{workflow.ScreenPacking},
			blockers: []BlockerID{BlockerRackLocationRequired},
			enabled:  func(t workflow.StageToggles) bool { return t.PackingEnabled },
		},
		{
			stage:   order.Ready,
			screens: []workflow.Screen{workflow.ScreenDelivery},
			enabled: always,
		},
		{
			stage:   order.OutForDelivery,
			screens: []workflow.Screen{workflow.ScreenDelivery},
			enabled: always,
		},
		{
			stage:   order.Delivered,
			enabled: always,
		},
	}
}

// blockerApplies reports whether a blocker is relevant for a tenant.
// A blocker owned by an optional stage stops applying when that stage is
// disabled: a spliced edge carries the union of the removed edges' blockers
// filtered through this check.
func blockerApplies(id BlockerID, toggles workflow.StageToggles) bool {
	switch id {
	case BlockerAllPiecesAssembled:
		return toggles.AssemblyEnabled
	case BlockerQANoOpenIssues:
		return toggles.QAEnabled
	case BlockerRackLocationRequired:
		return toggles.PackingEnabled
	default:
		return true
	}
}

// StatusGraph is the domain service that computes a tenant's effective set of
// transition edges from the canonical chain and the tenant's stage toggles.
//
// Edges is a pure function of the toggles: it must be recomputed per request
// and never cached across tenants. Disabling a stage removes every edge
// touching it and rewires the predecessor directly to the successor, carrying
// the union of the removed edges' still-applicable blockers.
//
// Example:
//
//	graph := services.NewStatusGraph()
//	edges := graph.Edges(workflow.StageToggles{AssemblyEnabled: false, QAEnabled: true, PackingEnabled: true})
//	// edges contains processing -> qa instead of processing -> assembly -> qa
type StatusGraph struct{}

// NewStatusGraph creates a new StatusGraph service.
func NewStatusGraph() StatusGraph {
	return StatusGraph{}
}

// Edges returns the deterministic effective edge set for the given toggles:
// the spliced stage chain followed by one cancellation edge per non-terminal
// stage (manager screen, no blockers).
func (g StatusGraph) Edges(toggles workflow.StageToggles) []TransitionEdge {
	chain := canonicalChain()

	active := make([]int, 0, len(chain))
	for i, link := range chain {
		if link.enabled(toggles) {
			active = append(active, i)
		}
	}

	edges := make([]TransitionEdge, 0, 2*len(active))

	for n := 0; n+1 < len(active); n++ {
		from := chain[active[n]]
		to := chain[active[n+1]]

		// Union of blockers across the from-stage's outgoing edge and the
		// outgoing edges of every spliced-out stage in between, keeping only
		// the ones still applicable under the toggles.
		var blockers []BlockerID
		for i := active[n]; i < active[n+1]; i++ {
			for _, id := range chain[i].blockers {
				if blockerApplies(id, toggles) {
					blockers = append(blockers, id)
				}
			}
		}

		edges = append(edges, TransitionEdge{
			From:     from.stage,
			To:       to.stage,
			Screens:  from.screens,
			Blockers: blockers,
		})
	}

	for _, i := range active {
		if chain[i].stage.IsTerminal() {
			continue
		}
		edges = append(edges, TransitionEdge{
			From:    chain[i].stage,
			To:      order.Cancelled,
			Screens: []workflow.Screen{workflow.ScreenManager},
		})
	}

	return edges
}

// FindEdge looks up the edge from -> to in the effective graph for the given
// toggles. The second return value is false when the edge does not exist,
// which the transition executor reports as an InvalidTransitionError.
func (g StatusGraph) FindEdge(toggles workflow.StageToggles, from, to order.Status) (TransitionEdge, bool) {
	for _, edge := range g.Edges(toggles) {
		if edge.From == from && edge.To == to {
			return edge, true
		}
	}
	return TransitionEdge{}, false
}

// AllowedTargets returns the statuses reachable from the given status via any
// screen, in graph order. Used to render available workstation actions.
func (g StatusGraph) AllowedTargets(toggles workflow.StageToggles, from order.Status) []order.Status {
	targets := make([]order.Status, 0, 2)
	for _, edge := range g.Edges(toggles) {
		if edge.From == from {
			targets = append(targets, edge.To)
		}
	}
	return targets
}
