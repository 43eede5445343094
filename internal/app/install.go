package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports"
	"go.trai.ch/rauri/internal/ui/style"
	"go.trai.ch/zerr"
)

// Install installs target, which is a package name or an AUR git URL.
//
// A URL always builds from source. A name known to the official repositories is
// installed with the package manager and not tracked; any other name is built
// from the AUR and the package it produced is tracked.
func (a *App) Install(ctx context.Context, target string) error {
	if target == "" {
		return domain.ErrNoPackageName
	}

	if domain.IsSourceURL(target) {
		name, err := domain.PackageNameFromURL(target)
		if err != nil {
			return err
		}
		return a.installFromSource(ctx, name, target)
	}

	inRepo, err := a.packages.InRepository(ctx, target)
	if err != nil {
		a.logger.Debug(fmt.Sprintf("repository lookup for %s failed, trying the AUR: %v", target, err))
	}
	if inRepo {
		a.logger.Info(fmt.Sprintf("Installing %s from official repositories...", target))
		if err := a.packages.InstallFromRepository(ctx, target); err != nil {
			return err
		}
		a.logger.Info(fmt.Sprintf("%s Installed %s successfully", style.Check, target))
		return nil
	}

	return a.installFromSource(ctx, target, domain.SourceURL(a.config.AURURL, target))
}

func (a *App) installFromSource(ctx context.Context, name, url string) error {
	a.logger.Info(fmt.Sprintf("Installing %s from AUR...", name))

	res, err := a.buildFromSource(ctx, name, url)
	if err != nil {
		return err
	}

	if res.Name != name {
		a.logger.Info(fmt.Sprintf("%s Installed %s (as %s) successfully", style.Check, name, res.Name))
		return nil
	}
	a.logger.Info(fmt.Sprintf("%s Installed %s successfully", style.Check, name))
	return nil
}

// buildFromSource clones, builds and tracks one package. Tracking failures are
// reported as warnings; the package is installed either way.
func (a *App) buildFromSource(ctx context.Context, name, url string) (domain.ArtifactResolution, error) {
	var res domain.ArtifactResolution

	err := a.phase(ctx, "install "+name, func(ctx context.Context, span ports.Span) error {
		span.SetAttribute("package", name)
		dir := filepath.Join(a.config.DownloadDir, name)

		if err := a.fetcher.Fetch(ctx, url, dir); err != nil {
			return err
		}
		if err := a.builder.Build(ctx, dir); err != nil {
			return zerr.With(err, "package", name)
		}

		var trackErr error
		res, trackErr = a.reconciler.RecordBuild(ctx, dir, name)
		span.SetAttribute("artifact", res.Name)
		if trackErr != nil {
			a.logger.Warn(fmt.Sprintf("Failed to track package %s: %v", res.Name, trackErr))
		}
		return nil
	})

	return res, err
}
