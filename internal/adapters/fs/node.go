package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pak/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the file hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs_hasher"
	// OpsNodeID is the unique identifier for the file ops Graft node.
	OpsNodeID graft.ID = "adapter.fs_ops"
)

func init() {
	graft.Register(graft.Node[ports.FileHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileHasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.FileOps]{
		ID:        OpsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileOps, error) {
			return NewOps(), nil
		},
	})
}
