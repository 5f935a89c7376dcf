package packer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pak/internal/adapters/fs"
	"go.trai.ch/pak/internal/core/ports"
	"go.trai.ch/pak/internal/engine/fingerprint"
	"go.trai.ch/pak/internal/engine/planner"
	"go.trai.ch/pak/internal/engine/scheduler"
)

// NodeID is the unique identifier for the packer Graft node.
const NodeID graft.ID = "engine.packer"

func init() {
	graft.Register(graft.Node[*Packer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.HasherNodeID,
			fs.OpsNodeID,
			scheduler.NodeID,
		},
		Run: func(ctx context.Context) (*Packer, error) {
			hasher, err := graft.Dep[ports.FileHasher](ctx)
			if err != nil {
				return nil, err
			}

			ops, err := graft.Dep[ports.FileOps](ctx)
			if err != nil {
				return nil, err
			}

			sched, err := graft.Dep[*scheduler.Scheduler](ctx)
			if err != nil {
				return nil, err
			}

			return NewPacker(fingerprint.NewResolver(hasher), planner.NewPlanner(ops), sched), nil
		},
	})
}
