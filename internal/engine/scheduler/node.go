package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pak/internal/adapters/filters"
	"go.trai.ch/pak/internal/adapters/fs"
	"go.trai.ch/pak/internal/adapters/logger"
	"go.trai.ch/pak/internal/adapters/telemetry/progrock"
	"go.trai.ch/pak/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			filters.NodeID,
			fs.OpsNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			registry, err := graft.Dep[ports.FilterRegistry](ctx)
			if err != nil {
				return nil, err
			}

			ops, err := graft.Dep[ports.FileOps](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(registry, ops, telemetry, log), nil
		},
	})
}
