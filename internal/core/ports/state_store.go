package ports

import "go.trai.ch/pak/internal/core/domain"

// StateStore defines the interface for persisting build state across runs.
// The packer itself only exchanges in-memory BuildState values; loading and
// saving happen around a run, never during it.
//
//go:generate go run go.uber.org/mock/mockgen -source=state_store.go -destination=mocks/mock_state_store.go -package=mocks
type StateStore interface {
	// Load reads the previous build state from path.
	// A missing file yields an empty state, not an error.
	Load(path string) (domain.BuildState, error)

	// Save persists the new build state to path.
	Save(path string, state domain.BuildState) error
}
