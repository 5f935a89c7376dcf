package ports

import (
	"context"

	"go.trai.ch/pak/internal/core/domain"
)

// AssetFilter is the capability contract for a named asset transformation.
//
// Determinism contract for implementers: identical (filter name, options,
// input content) must always produce identical output content, or the
// fingerprint cache becomes unsound. This is documented, not enforced.
//
//go:generate go run go.uber.org/mock/mockgen -source=filter.go -destination=mocks/mock_filter.go -package=mocks
type AssetFilter interface {
	// Validate type-checks the options before any byte-level work happens.
	// It rejects unknown option keys and values of the wrong variant.
	Validate(options domain.Options) error

	// Apply consumes the already-materialized input files, in declared order,
	// and writes the result to outputPath.
	Apply(ctx context.Context, inputPaths []string, outputPath string, options domain.Options) error
}

// FilterRegistry resolves filter names to implementations. It is read-only
// during a pack run; all registrations happen before execution begins.
type FilterRegistry interface {
	// Lookup returns the filter registered under name.
	Lookup(name string) (AssetFilter, bool)

	// Names returns all registered filter names, sorted.
	Names() []string
}
