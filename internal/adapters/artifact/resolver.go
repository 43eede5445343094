// Package artifact discovers which packages a build actually produced.
package artifact

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.ArtifactResolver.
type Resolver struct {
	inspector ports.ArtifactInspector
	pattern   string
	logger    ports.Logger
}

// NewResolver creates a Resolver that inspects files ending in extension.
func NewResolver(inspector ports.ArtifactInspector, extension string, logger ports.Logger) *Resolver {
	return &Resolver{
		inspector: inspector,
		pattern:   "*" + extension,
		logger:    logger,
	}
}

// Scan returns every artifact in dir whose embedded metadata could be read.
// Unreadable artifacts are skipped. The result is sorted by path.
func (r *Resolver) Scan(ctx context.Context, dir string) ([]domain.BuildArtifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactScanFailed.Error()), "dir", dir)
	}

	var artifacts []domain.BuildArtifact
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matched, err := doublestar.Match(r.pattern, entry.Name())
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrArtifactScanFailed.Error()), "pattern", r.pattern)
		}
		if !matched {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		artifact, err := r.inspector.Identity(ctx, path)
		if err != nil {
			r.logger.Debug("skipping unreadable artifact " + path + ": " + err.Error())
			continue
		}
		artifact.Path = path
		artifacts = append(artifacts, artifact)
	}

	slices.SortFunc(artifacts, func(a, b domain.BuildArtifact) int {
		return strings.Compare(a.Path, b.Path)
	})

	return artifacts, nil
}

// Resolve determines the primary package produced in dir.
// Debug companions never become the primary name. When several primary packages
// were produced, the requested name wins if it is among them; otherwise the first
// by path is chosen. When nothing usable is found the requested name is returned
// unresolved.
func (r *Resolver) Resolve(ctx context.Context, dir, requested string) domain.ArtifactResolution {
	res := domain.ArtifactResolution{Name: requested}

	artifacts, err := r.Scan(ctx, dir)
	if err != nil {
		r.logger.Debug("artifact scan failed, using requested name " + requested + ": " + err.Error())
		return res
	}
	res.Artifacts = artifacts

	var primaries []string
	debug := domain.NewTrackedSet()
	for _, a := range artifacts {
		if a.IsDebug() {
			debug.Add(a.Name)
			continue
		}
		if !slices.Contains(primaries, a.Name) {
			primaries = append(primaries, a.Name)
		}
	}
	if len(debug) > 0 {
		res.Debug = debug.Sorted()
	}

	switch {
	case len(primaries) == 0:
		return res
	case slices.Contains(primaries, requested):
		res.Name = requested
	default:
		res.Name = primaries[0]
		if len(primaries) > 1 {
			r.logger.Debug("build in " + dir + " produced several packages, using " + res.Name)
		}
	}
	res.Resolved = true

	return res
}

// Chain tries each inspector in turn and returns the first successful answer.
type Chain []ports.ArtifactInspector

// Identity implements ports.ArtifactInspector.
func (c Chain) Identity(ctx context.Context, path string) (domain.BuildArtifact, error) {
	var errs []error
	for _, insp := range c {
		artifact, err := insp.Identity(ctx, path)
		if err == nil {
			return artifact, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return domain.BuildArtifact{}, zerr.With(domain.ErrArtifactQueryFailed, "path", path)
	}
	return domain.BuildArtifact{}, errors.Join(errs...)
}
