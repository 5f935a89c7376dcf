// Package cas implements build-state persistence as a flat JSON file.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pak/internal/core/domain"
	"go.trai.ch/pak/internal/core/ports"
	"go.trai.ch/zerr"
)

// ErrUnsupportedStateVersion is returned when the state file's envelope
// declares a version this binary does not understand.
var ErrUnsupportedStateVersion = zerr.New("unsupported state file version")

const stateVersion = 1

// envelope wraps the persisted state so the format can evolve.
type envelope struct {
	Version int                          `json:"version"`
	Assets  map[string]domain.StateEntry `json:"assets"`
}

var _ ports.StateStore = (*Store)(nil)

// Store implements ports.StateStore using a versioned JSON file.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the previous build state from path. A missing or empty file
// yields an empty state.
func (s *Store) Load(path string) (domain.BuildState, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewBuildState(), nil
		}
		return domain.BuildState{}, zerr.Wrap(err, "failed to read state file")
	}
	if len(data) == 0 {
		return domain.NewBuildState(), nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return domain.BuildState{}, zerr.Wrap(err, "failed to unmarshal state file")
	}
	if env.Version != stateVersion {
		return domain.BuildState{}, zerr.With(ErrUnsupportedStateVersion, "version", env.Version)
	}

	state := domain.NewBuildState()
	for name, entry := range env.Assets {
		state.Assets[name] = entry
	}
	return state, nil
}

// Save persists the new build state to path, replacing any previous file.
func (s *Store) Save(path string, state domain.BuildState) error {
	env := envelope{
		Version: stateVersion,
		Assets:  state.Assets,
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal state file")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for state file")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write state file")
	}
	return nil
}
