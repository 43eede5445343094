package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rauri/internal/adapters/aur"       //nolint:depguard // Wired in app layer
	"go.trai.ch/rauri/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rauri/internal/adapters/git"       //nolint:depguard // Wired in app layer
	"go.trai.ch/rauri/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rauri/internal/adapters/makepkg"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rauri/internal/adapters/pacman"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rauri/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rauri/internal/adapters/tracking"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports"
	"go.trai.ch/rauri/internal/engine/reconciler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the app components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.SettingsNodeID,
			reconciler.NodeID,
			tracking.NodeID,
			pacman.ManagerNodeID,
			aur.NodeID,
			git.NodeID,
			makepkg.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run:       runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	rec, err := graft.Dep[*reconciler.Reconciler](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.TrackingStore](ctx)
	if err != nil {
		return nil, err
	}
	packages, err := graft.Dep[ports.PackageManager](ctx)
	if err != nil {
		return nil, err
	}
	metadata, err := graft.Dep[ports.MetadataService](ctx)
	if err != nil {
		return nil, err
	}
	fetcher, err := graft.Dep[ports.SourceFetcher](ctx)
	if err != nil {
		return nil, err
	}
	builder, err := graft.Dep[ports.Builder](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, cfg, rec, store, packages, metadata, fetcher, builder, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{App: a, Logger: log}, nil
}
