package progrock

import (
	"github.com/vito/progrock"
	"go.trai.ch/pak/internal/core/ports"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Write forwards to the vertex's stdout stream.
func (v *Vertex) Write(p []byte) (n int, err error) {
	return v.vertex.Stdout().Write(p)
}

// Cached marks the vertex as a cache hit.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}

// Complete marks the vertex as finished (successfully or with an error).
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
