// Package reconciler aligns the tracked package set with the live package
// database and upstream metadata before install, update, remove and list act on it.
package reconciler

import (
	"context"
	"fmt"

	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports"
)

// Reconciler resolves package identities and keeps the tracked set honest.
//
// The tracked set is only a hint. Every name read from it is confirmed against the
// package database before it drives a mutating operation.
type Reconciler struct {
	store      ports.TrackingStore
	db         ports.PackageDatabase
	metadata   ports.MetadataService
	artifacts  ports.ArtifactResolver
	matcher    ports.IdentityMatcher
	comparator ports.VersionComparator
	logger     ports.Logger
	config     *domain.Config
}

// New creates a Reconciler. Package sources are looked up in cfg.DownloadDir at
// call time.
func New(
	store ports.TrackingStore,
	db ports.PackageDatabase,
	metadata ports.MetadataService,
	artifacts ports.ArtifactResolver,
	matcher ports.IdentityMatcher,
	comparator ports.VersionComparator,
	logger ports.Logger,
	cfg *domain.Config,
) *Reconciler {
	return &Reconciler{
		store:      store,
		db:         db,
		metadata:   metadata,
		artifacts:  artifacts,
		matcher:    matcher,
		comparator: comparator,
		logger:     logger,
		config:     cfg,
	}
}

// Cleanup untracks every name that is no longer installed and returns the names
// it removed.
//
// A name whose presence cannot be determined stays tracked, and a failure to
// untrack one name does not stop the others. Only an unreadable tracking store
// fails the call.
func (r *Reconciler) Cleanup(ctx context.Context) ([]string, error) {
	set, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	var stale []string
	for _, name := range set.Sorted() {
		installed, err := r.db.IsInstalled(ctx, name)
		if err != nil {
			r.logger.Warn(fmt.Sprintf("Could not check whether %s is installed, keeping it tracked: %v", name, err))
			continue
		}
		if !installed {
			stale = append(stale, name)
		}
	}

	removed := make([]string, 0, len(stale))
	for _, name := range stale {
		if err := r.store.Remove(name); err != nil {
			r.logger.Warn(fmt.Sprintf("Failed to remove %s from tracking: %v", name, err))
			continue
		}
		removed = append(removed, name)
	}

	return removed, nil
}

func (r *Reconciler) downloadDir() string {
	return r.config.DownloadDir
}

// installedTracked returns the tracked names currently present in the database.
// Names whose presence cannot be determined are left out.
func (r *Reconciler) installedTracked(ctx context.Context, names []string) []string {
	var installed []string
	for _, name := range names {
		ok, err := r.db.IsInstalled(ctx, name)
		if err != nil {
			r.logger.Debug(fmt.Sprintf("skipping %s: %v", name, err))
			continue
		}
		if ok {
			installed = append(installed, name)
		}
	}
	return installed
}
