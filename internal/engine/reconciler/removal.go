package reconciler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResolveForRemoval finds the installed package a removal request refers to.
//
// The exact name wins when it is installed. Otherwise the request is matched
// against the tracked names that are still installed. The returned InstalledName
// has been confirmed present in the package database; when no such name exists
// the call fails with ErrPackageNotInstalled. An installed debug companion is
// reported in DebugCompanion.
func (r *Reconciler) ResolveForRemoval(ctx context.Context, requested string) (domain.ResolvedIdentity, error) {
	id := domain.ResolvedIdentity{RequestedName: requested}
	if requested == "" {
		return id, domain.ErrNoPackageName
	}

	tracked, err := r.store.Load()
	if err != nil {
		r.logger.Warn(fmt.Sprintf("Could not read tracked packages: %v", err))
		tracked = domain.NewTrackedSet()
	}

	exact, err := r.db.IsInstalled(ctx, requested)
	if err != nil {
		return id, zerr.With(err, "package", requested)
	}

	switch {
	case exact:
		id.InstalledName = requested
		if tracked.Has(requested) {
			id.MatchedTrackedName = requested
		}
	default:
		candidates := r.installedTracked(ctx, tracked.Sorted())
		match, ok := r.matcher.Match(requested, candidates)
		if !ok {
			return id, r.notInstalled(requested, tracked)
		}
		r.logger.Debug(fmt.Sprintf("%s resolved to tracked package %s", requested, match))
		id.InstalledName = match
		id.MatchedTrackedName = match
	}

	companion := domain.DebugName(id.InstalledName)
	installed, err := r.db.IsInstalled(ctx, companion)
	switch {
	case err != nil:
		r.logger.Warn(fmt.Sprintf("Could not check debug package %s: %v", companion, err))
	case installed:
		id.DebugCompanion = companion
	}

	id.SourceDirName = r.findSourceDir(ctx, id)
	return id, nil
}

func (r *Reconciler) notInstalled(requested string, tracked domain.TrackedSet) error {
	err := zerr.With(domain.ErrPackageNotInstalled, "package", requested)
	if suggestions := r.matcher.Suggest(requested, tracked.Sorted()); len(suggestions) > 0 {
		err = zerr.With(err, "did_you_mean", strings.Join(suggestions, ", "))
	}
	return err
}

// findSourceDir returns the download directory entry that built the identity.
// A directory whose artifacts produced the installed or requested name wins;
// otherwise a directory named after the tracked, requested or installed name.
func (r *Reconciler) findSourceDir(ctx context.Context, id domain.ResolvedIdentity) string {
	for _, dir := range r.sourceDirs() {
		artifacts, err := r.artifacts.Scan(ctx, filepath.Join(r.downloadDir(), dir))
		if err != nil {
			continue
		}
		for _, a := range artifacts {
			if a.Name == id.InstalledName || a.Name == id.RequestedName {
				return dir
			}
		}
	}

	for _, name := range []string{id.MatchedTrackedName, id.RequestedName, id.InstalledName} {
		if name == "" {
			continue
		}
		info, err := os.Stat(filepath.Join(r.downloadDir(), name))
		if err == nil && info.IsDir() {
			return name
		}
	}

	return ""
}

// sourceDirs lists the directories of the download directory that hold a build
// descriptor, sorted by name.
func (r *Reconciler) sourceDirs() []string {
	entries, err := os.ReadDir(r.downloadDir())
	if err != nil {
		return nil
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(r.downloadDir(), entry.Name(), domain.BuildDescriptorName)); err != nil {
			continue
		}
		dirs = append(dirs, entry.Name())
	}
	return dirs
}

// Untrack removes every name that may refer to id from the tracked set and
// returns the names that were actually tracked.
func (r *Reconciler) Untrack(id domain.ResolvedIdentity) ([]string, error) {
	set, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, name := range id.TrackingVariants() {
		if set.Has(name) {
			set.Remove(name)
			removed = append(removed, name)
		}
	}
	if len(removed) == 0 {
		return nil, nil
	}

	if err := r.store.Save(set); err != nil {
		return nil, err
	}
	return removed, nil
}
