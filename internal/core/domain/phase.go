package domain

// Phase is the packer's run state. A run advances Loaded -> Validated ->
// Planned -> Executing -> Completed; any failure moves it to Failed.
type Phase uint8

const (
	// PhaseLoaded means the manifest has been loaded.
	PhaseLoaded Phase = iota
	// PhaseValidated means the dependency graph was built without errors.
	PhaseValidated
	// PhasePlanned means fingerprints are resolved and every step is decided.
	PhasePlanned
	// PhaseExecuting means steps are being processed.
	PhaseExecuting
	// PhaseCompleted means every step resolved and a new state exists.
	PhaseCompleted
	// PhaseFailed means the run aborted; no partial state is exposed.
	PhaseFailed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseLoaded:
		return "Loaded"
	case PhaseValidated:
		return "Validated"
	case PhasePlanned:
		return "Planned"
	case PhaseExecuting:
		return "Executing"
	case PhaseCompleted:
		return "Completed"
	case PhaseFailed:
		return "Failed"
	}
	return "Unknown"
}
