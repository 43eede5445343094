package aur

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rauri/internal/adapters/config"
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports"
)

// NodeID is the unique identifier for the AUR metadata Graft node.
const NodeID graft.ID = "adapter.aur"

func init() {
	graft.Register(graft.Node[ports.MetadataService]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.MetadataService, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.AURURL, cfg.RequestTimeout), nil
		},
	})
}
