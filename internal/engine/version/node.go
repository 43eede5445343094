package version

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rauri/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports"
)

// NodeID is the unique identifier for the version comparator Graft node.
const NodeID graft.ID = "engine.version_comparator"

func init() {
	graft.Register(graft.Node[ports.VersionComparator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.VersionComparator, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.VersionCompare), nil
		},
	})
}
