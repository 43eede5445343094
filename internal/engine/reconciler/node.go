package reconciler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rauri/internal/adapters/artifact" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rauri/internal/adapters/aur"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rauri/internal/adapters/config"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rauri/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rauri/internal/adapters/matcher"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rauri/internal/adapters/pacman"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rauri/internal/adapters/tracking" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports"
	"go.trai.ch/rauri/internal/engine/version"
)

// NodeID is the unique identifier for the reconciler Graft node.
const NodeID graft.ID = "engine.reconciler"

func init() {
	graft.Register(graft.Node[*Reconciler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			tracking.NodeID,
			pacman.DatabaseNodeID,
			aur.NodeID,
			artifact.NodeID,
			matcher.NodeID,
			version.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Reconciler, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.TrackingStore](ctx)
			if err != nil {
				return nil, err
			}

			db, err := graft.Dep[ports.PackageDatabase](ctx)
			if err != nil {
				return nil, err
			}

			metadata, err := graft.Dep[ports.MetadataService](ctx)
			if err != nil {
				return nil, err
			}

			artifacts, err := graft.Dep[ports.ArtifactResolver](ctx)
			if err != nil {
				return nil, err
			}

			identity, err := graft.Dep[ports.IdentityMatcher](ctx)
			if err != nil {
				return nil, err
			}

			comparator, err := graft.Dep[ports.VersionComparator](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(
				store,
				db,
				metadata,
				artifacts,
				identity,
				comparator,
				log,
				cfg,
			), nil
		},
	})
}
