package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/internal/adapters/cas"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/fs"                  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/shell"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/stopwatch"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/telemetry/progrock"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/adapters/toolchain"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mk/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			toolchain.NodeID,
			progrock.NodeID,
			stopwatch.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			toolchains, err := graft.Dep[ports.ToolchainRegistry](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			watch, err := graft.Dep[ports.Stopwatch](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(executor, store, hasher, toolchains, telemetry, watch), nil
		},
	})
}
