package makepkg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rauri/internal/adapters/shell"
	"go.trai.ch/rauri/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "adapter.makepkg"

func init() {
	graft.Register(graft.Node[ports.Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Builder, error) {
			runner, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(runner), nil
		},
	})
}
