package ports

import (
	"context"
	"io"
)

// Telemetry records per-asset progress for a pack run.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a vertex for the named asset.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one asset's progress.
type Vertex interface {
	io.Writer

	// Cached marks the vertex as reused from a previous run.
	Cached()

	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}
