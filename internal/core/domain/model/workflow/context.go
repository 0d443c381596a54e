package workflow

// StageToggles holds the per-tenant switches for the optional workflow stages.
// A disabled stage is spliced out of the tenant's effective status graph:
// the predecessor of the stage connects directly to its successor.
//
// Toggles are configuration, not authority: the transition engine always
// recomputes the effective graph from fresh toggles at request time.
type StageToggles struct {
	AssemblyEnabled bool `json:"assembly_enabled"`
	QAEnabled       bool `json:"qa_enabled"`
	PackingEnabled  bool `json:"packing_enabled"`
}

// AllStagesEnabled returns toggles with every optional stage switched on.
// This is the default for tenants without stored settings.
func AllStagesEnabled() StageToggles {
	return StageToggles{
		AssemblyEnabled: true,
		QAEnabled:       true,
		PackingEnabled:  true,
	}
}

// Flags returns the toggles as a stage-name map for informational consumers
// such as the workstation UI.
func (t StageToggles) Flags() map[string]bool {
	return map[string]bool{
		"assembly_enabled": t.AssemblyEnabled,
		"qa_enabled":       t.QAEnabled,
		"packing_enabled":  t.PackingEnabled,
	}
}

// Settings is the full per-tenant workflow configuration: the stage toggles
// plus the set of screens enrolled in the screen-contract rollout. A screen
// absent from ContractScreens has no contract yet and is routed through the
// legacy transition path.
type Settings struct {
	Toggles         StageToggles `json:"toggles"`
	ContractScreens []Screen     `json:"contract_screens"`
}

// DefaultSettings returns settings for a tenant with no stored configuration:
// all optional stages enabled and no screens enrolled in the contract rollout.
func DefaultSettings() Settings {
	return Settings{Toggles: AllStagesEnabled()}
}

// HasContract reports whether the given screen is enrolled in the
// screen-contract rollout for this tenant.
func (s Settings) HasContract(screen Screen) bool {
	for _, enrolled := range s.ContractScreens {
		if enrolled == screen {
			return true
		}
	}
	return false
}

// OrderMetrics carries informational counts over a tenant's active orders.
type OrderMetrics struct {
	ItemsCount  int `json:"items_count"`
	PiecesTotal int `json:"pieces_total"`
}

// WorkflowContext is the read-only aggregation served to the UI: stage flags
// plus order metrics. It never decides a transition's legality.
type WorkflowContext struct {
	Flags   map[string]bool `json:"flags"`
	Metrics OrderMetrics    `json:"metrics"`
}
