// Package telemetry provides the no-op telemetry implementation.
package telemetry

import (
	"context"

	"go.trai.ch/pak/internal/core/ports"
)

var _ ports.Telemetry = (*Noop)(nil)

// Noop is a no-op implementation of ports.Telemetry.
type Noop struct{}

// NewNoop creates a new Noop telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a no-op vertex.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoopVertex{}
}

// Close does nothing.
func (n *Noop) Close() error {
	return nil
}

// NoopVertex is a no-op implementation of ports.Vertex.
type NoopVertex struct{}

// Write does nothing and reports the full length as written.
func (v *NoopVertex) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// Cached does nothing.
func (v *NoopVertex) Cached() {}

// Complete does nothing.
func (v *NoopVertex) Complete(_ error) {}
