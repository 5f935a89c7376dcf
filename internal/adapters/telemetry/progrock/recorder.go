// Package progrock provides the Progrock implementation of the telemetry port.
package progrock

import (
	"context"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/pak/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on a progrock tape: one vertex per
// asset, marked cached when the previous output is reused.
type Recorder struct {
	w         progrock.Writer
	rec       *progrock.Recorder
	closeOnce sync.Once
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a vertex for the named asset.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &Vertex{vertex: v}
}

// Close flushes and closes the recording session. Safe to call more than
// once; only the first call closes the underlying writer.
func (r *Recorder) Close() error {
	var err error
	r.closeOnce.Do(func() {
		if c, ok := r.w.(interface{ Close() error }); ok {
			err = c.Close()
		}
	})
	return err
}
