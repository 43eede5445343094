package tracking

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rauri/internal/adapters/config"
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports"
)

// NodeID is the unique identifier for the tracking store Graft node.
const NodeID graft.ID = "adapter.tracking_store"

func init() {
	graft.Register(graft.Node[ports.TrackingStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.PathsNodeID},
		Run: func(ctx context.Context) (ports.TrackingStore, error) {
			paths, err := graft.Dep[domain.Paths](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(paths.TrackingFile()), nil
		},
	})
}
