package domain

// StateEntry records one asset's last-known fingerprint and the versioned
// output path it was written to.
type StateEntry struct {
	Fingerprint Fingerprint `json:"fingerprint"`
	OutputPath  string      `json:"output_path"`
}

// BuildState is the record of a completed pack run, persisted across
// invocations. It is passed in as the previous snapshot and returned as a new
// value; a run never mutates the snapshot it was given. Entries for assets
// that left the manifest are simply absent from the new state.
type BuildState struct {
	Assets map[string]StateEntry `json:"assets"`
}

// NewBuildState creates an empty build state.
func NewBuildState() BuildState {
	return BuildState{Assets: make(map[string]StateEntry)}
}

// Get returns the entry for an asset name.
func (s BuildState) Get(name InternedString) (StateEntry, bool) {
	e, ok := s.Assets[name.String()]
	return e, ok
}

// Put records an entry for an asset name.
func (s BuildState) Put(name InternedString, e StateEntry) {
	s.Assets[name.String()] = e
}

// Len returns the number of recorded assets.
func (s BuildState) Len() int {
	return len(s.Assets)
}
