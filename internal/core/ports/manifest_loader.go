// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/pak/internal/core/domain"

// ManifestLoader defines the interface for loading the asset manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest from the given path.
	Load(path string) (*domain.Manifest, error)
}
