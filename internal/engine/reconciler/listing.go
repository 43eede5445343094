package reconciler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResolveForListing returns one entry per source directory whose built package is
// installed. Directories that were never installed, or whose packages were removed
// since, are left out silently. A missing download directory lists nothing.
func (r *Reconciler) ResolveForListing(ctx context.Context) ([]domain.ListedPackage, error) {
	if _, err := os.Stat(r.downloadDir()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactScanFailed.Error()), "dir", r.downloadDir())
	}

	var listed []domain.ListedPackage
	for _, dir := range r.sourceDirs() {
		pkg, ok := r.listDir(ctx, dir)
		if ok {
			listed = append(listed, pkg)
		}
	}
	return listed, nil
}

// listDir picks the installed primary package built in dir. A package named like
// the directory is preferred; otherwise the first by artifact path.
func (r *Reconciler) listDir(ctx context.Context, dir string) (domain.ListedPackage, bool) {
	artifacts, err := r.artifacts.Scan(ctx, filepath.Join(r.downloadDir(), dir))
	if err != nil {
		r.logger.Debug(fmt.Sprintf("skipping %s: %v", dir, err))
		return domain.ListedPackage{}, false
	}

	var (
		found   []domain.ListedPackage
		queried = make(map[string]struct{}, len(artifacts))
	)
	for _, a := range artifacts {
		if a.IsDebug() {
			continue
		}
		if _, seen := queried[a.Name]; seen {
			continue
		}
		queried[a.Name] = struct{}{}

		version, ok, err := r.db.InstalledVersion(ctx, a.Name)
		if err != nil {
			r.logger.Debug(fmt.Sprintf("skipping %s: %v", a.Name, err))
			continue
		}
		if !ok {
			continue
		}
		found = append(found, domain.ListedPackage{
			DirName:          dir,
			PackageName:      a.Name,
			InstalledVersion: version,
		})
	}

	if len(found) == 0 {
		return domain.ListedPackage{}, false
	}
	for _, pkg := range found {
		if pkg.PackageName == dir {
			return pkg, true
		}
	}
	return found[0], true
}

// MarkOutdated fills in the upstream version of each listed package and flags the
// stale ones. Packages without upstream metadata are left unflagged.
func (r *Reconciler) MarkOutdated(ctx context.Context, pkgs []domain.ListedPackage) {
	for i := range pkgs {
		info, err := r.metadata.Info(ctx, pkgs[i].PackageName)
		if err != nil {
			r.logger.Debug(fmt.Sprintf("no upstream metadata for %s: %v", pkgs[i].PackageName, err))
			continue
		}
		pkgs[i].UpstreamVersion = info.Version
		pkgs[i].Outdated = r.comparator.IsOutdated(pkgs[i].InstalledVersion, info.Version)
	}
}
