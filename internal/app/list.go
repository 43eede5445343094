package app

import (
	"context"
	"fmt"

	"go.trai.ch/rauri/internal/core/ports"
)

// ListOptions configures List.
type ListOptions struct {
	// Tracked lists the tracked names instead of the installed source directories.
	Tracked bool
}

// List prints the installed packages built from the download directory, with
// the upstream version of those that are out of date.
func (a *App) List(ctx context.Context, opts ListOptions) error {
	if opts.Tracked {
		return a.listTracked()
	}

	return a.phase(ctx, "list", func(ctx context.Context, _ ports.Span) error {
		pkgs, err := a.reconciler.ResolveForListing(ctx)
		if err != nil {
			return err
		}
		if len(pkgs) == 0 {
			a.logger.Info("No installed AUR packages found in " + a.config.DownloadDir)
			return nil
		}

		a.reconciler.MarkOutdated(ctx, pkgs)

		a.logger.Info(fmt.Sprintf("Installed AUR packages in %s:", a.config.DownloadDir))
		a.renderer().Packages(pkgs)
		return nil
	})
}

func (a *App) listTracked() error {
	set, err := a.store.Load()
	if err != nil {
		return err
	}
	if len(set) == 0 {
		a.logger.Info("No packages tracked by rauri.")
		return nil
	}

	a.logger.Info("Packages tracked by rauri:")
	a.renderer().Tracked(set.Sorted())
	return nil
}

// Search looks query up in the AUR and the official repositories. A source that
// cannot be searched is reported and skipped.
func (a *App) Search(ctx context.Context, query string) error {
	return a.phase(ctx, "search", func(ctx context.Context, span ports.Span) error {
		span.SetAttribute("query", query)
		a.logger.Info(fmt.Sprintf("Searching for '%s'...", query))

		aur, err := a.metadata.Search(ctx, query)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("AUR search failed: %v", err))
		}

		repo, err := a.packages.SearchRepository(ctx, query)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("Official repository search failed: %v", err))
		}

		if len(aur) == 0 && len(repo) == 0 {
			a.logger.Info(fmt.Sprintf("No packages found matching '%s'", query))
			return nil
		}

		a.renderer().Search(aur, repo)
		return nil
	})
}
