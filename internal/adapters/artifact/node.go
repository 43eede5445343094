package artifact

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rauri/internal/adapters/config"
	"go.trai.ch/rauri/internal/adapters/logger"
	"go.trai.ch/rauri/internal/adapters/pacman"
	"go.trai.ch/rauri/internal/adapters/pkginfo"
	"go.trai.ch/rauri/internal/adapters/shell"
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports"
)

// NodeID is the unique identifier for the artifact resolver Graft node.
const NodeID graft.ID = "adapter.artifact_resolver"

// NewInspector returns the inspector selected by mode.
func NewInspector(mode string, runner pacman.Runner) ports.ArtifactInspector {
	switch mode {
	case domain.InspectorNative:
		return pkginfo.NewInspector()
	case domain.InspectorPacman:
		return pacman.NewInspector(runner)
	default:
		return Chain{pkginfo.NewInspector(), pacman.NewInspector(runner)}
	}
}

func init() {
	graft.Register(graft.Node[ports.ArtifactResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactResolver, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[*shell.Runner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(NewInspector(cfg.ArtifactInspector, runner), cfg.PackageExtension, log), nil
		},
	})
}
