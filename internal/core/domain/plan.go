package domain

// StepAction says whether a planned step can reuse the previous output or
// must regenerate it.
type StepAction uint8

const (
	// ActionReuse means the previous output is still valid; no filter runs.
	ActionReuse StepAction = iota
	// ActionRebuild means the asset must be regenerated at a new versioned path.
	ActionRebuild
)

// String returns a human-readable name for the action.
func (a StepAction) String() string {
	switch a {
	case ActionReuse:
		return "Reuse"
	case ActionRebuild:
		return "Rebuild"
	}
	return "Unknown"
}

// PlannedStep is one asset's entry in the build plan.
type PlannedStep struct {
	Asset       AssetDefinition
	Fingerprint Fingerprint
	Action      StepAction
	// OutputPath is the versioned path, relative to the output root. For
	// Reuse it equals the previous run's path; for Rebuild it is fresh.
	OutputPath string
}

// Plan is the ordered list of steps for one pack run. Steps appear in
// dependency order: a step is always preceded by the steps for its inputs.
type Plan struct {
	Steps []PlannedStep
}

// Rebuilds returns the number of steps that require regeneration.
func (p *Plan) Rebuilds() int {
	n := 0
	for _, s := range p.Steps {
		if s.Action == ActionRebuild {
			n++
		}
	}
	return n
}
