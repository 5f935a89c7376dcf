package filters

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pak/internal/core/ports"
)

// NodeID is the unique identifier for the filter registry Graft node.
const NodeID graft.ID = "adapter.filter_registry"

func init() {
	graft.Register(graft.Node[ports.FilterRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FilterRegistry, error) {
			return NewDefaultRegistry(), nil
		},
	})
}
