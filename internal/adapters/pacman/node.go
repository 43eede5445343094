package pacman

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rauri/internal/adapters/shell"
	"go.trai.ch/rauri/internal/core/ports"
)

const (
	// DatabaseNodeID is the unique identifier for the package database Graft node.
	DatabaseNodeID graft.ID = "adapter.pacman.database"
	// ManagerNodeID is the unique identifier for the package manager Graft node.
	ManagerNodeID graft.ID = "adapter.pacman.manager"
)

func init() {
	graft.Register(graft.Node[ports.PackageDatabase]{
		ID:        DatabaseNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PackageDatabase, error) {
			runner, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewDatabase(runner), nil
		},
	})

	graft.Register(graft.Node[ports.PackageManager]{
		ID:        ManagerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.PackageManager, error) {
			runner, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(runner), nil
		},
	})
}
