package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// PathsNodeID is the unique identifier for the user paths Graft node.
	PathsNodeID graft.ID = "adapter.config.paths"
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// SettingsNodeID is the unique identifier for the loaded configuration Graft node.
	SettingsNodeID graft.ID = "adapter.config.settings"
)

func init() {
	graft.Register(graft.Node[domain.Paths]{
		ID:        PathsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (domain.Paths, error) {
			home, err := os.UserHomeDir()
			if err != nil {
				return domain.Paths{}, zerr.Wrap(err, domain.ErrHomeDirUnavailable.Error())
			}
			return domain.NewPaths(home), nil
		},
	})

	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{PathsNodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			paths, err := graft.Dep[domain.Paths](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(paths), nil
		},
	})

	graft.Register(graft.Node[*domain.Config]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return loader.Load()
		},
	})
}
