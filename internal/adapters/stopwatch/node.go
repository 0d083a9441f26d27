package stopwatch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mk/internal/core/ports"
)

// NodeID is the unique identifier for the stopwatch Graft node.
const NodeID graft.ID = "adapter.stopwatch"

func init() {
	graft.Register(graft.Node[ports.Stopwatch]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Stopwatch, error) {
			return New(), nil
		},
	})
}
