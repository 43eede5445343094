package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports"
	"go.trai.ch/rauri/internal/ui/style"
	"go.trai.ch/zerr"
)

// Update rebuilds every tracked AUR package whose installed version differs from
// upstream. Stale tracking entries are pruned first.
//
// A package that fails to update does not stop the run; the failures are
// reported together in an ErrUpdateFailed error at the end.
func (a *App) Update(ctx context.Context) error {
	return a.phase(ctx, "update", func(ctx context.Context, _ ports.Span) error {
		return a.update(ctx)
	})
}

func (a *App) update(ctx context.Context) error {
	err := a.phase(ctx, "cleanup", func(ctx context.Context, span ports.Span) error {
		removed, err := a.reconciler.Cleanup(ctx)
		if err != nil {
			return err
		}
		span.SetAttribute("removed", removed)
		if len(removed) > 0 {
			a.logger.Info(fmt.Sprintf("Cleaned up %d uninstalled package(s) from tracking", len(removed)))
		}
		return nil
	})
	if err != nil {
		return err
	}

	var report domain.UpdateReport
	err = a.phase(ctx, "plan", func(ctx context.Context, span ports.Span) error {
		var err error
		report, err = a.reconciler.PlanUpdates(ctx)
		if err != nil {
			return err
		}
		span.SetAttribute("plans", len(report.Plans))
		span.SetAttribute("skipped", len(report.Skipped))
		return nil
	})
	if err != nil {
		return err
	}

	if len(report.Plans) == 0 && len(report.Skipped) == 0 {
		a.logger.Info("No AUR packages tracked by rauri to update.")
		return nil
	}

	for _, s := range report.Skipped {
		a.warnSkipped(s)
	}

	var failed []string
	for _, plan := range report.Plans {
		if !plan.NeedsUpdate {
			a.logger.Info(fmt.Sprintf("%s is up to date", plan.BaseName))
			continue
		}

		a.logger.Info(fmt.Sprintf("Updating %s from %s to %s...",
			plan.BaseName, plan.InstalledVersion, plan.UpstreamVersion))

		url := domain.SourceURL(a.config.AURURL, plan.BaseName)
		if _, err := a.buildFromSource(ctx, plan.BaseName, url); err != nil {
			a.logger.Warn(fmt.Sprintf("Failed to update %s: %v", plan.BaseName, err))
			failed = append(failed, plan.BaseName)
		}
	}

	if len(failed) > 0 {
		return zerr.With(domain.ErrUpdateFailed, "packages", strings.Join(failed, ", "))
	}

	a.logger.Info(style.Check + " AUR package updates complete")
	return nil
}

func (a *App) warnSkipped(s domain.SkippedPackage) {
	switch s.Reason {
	case domain.SkipNotInstalled:
		a.logger.Warn(fmt.Sprintf("Package %s is not installed, skipping", s.Name))
	case domain.SkipQueryFailed:
		a.logger.Warn(fmt.Sprintf("Could not query %s, skipping: %v", s.Name, s.Err))
	case domain.SkipMetadataUnavailable:
		a.logger.Warn(fmt.Sprintf("Could not check AUR for %s, skipping: %v", s.Name, s.Err))
	default:
		a.logger.Warn(fmt.Sprintf("Skipping %s: %s", s.Name, s.Reason))
	}
}

// Upgrade upgrades the official packages and then updates the AUR packages.
func (a *App) Upgrade(ctx context.Context) error {
	a.logger.Info("Updating official packages...")
	if err := a.packages.Upgrade(ctx); err != nil {
		return err
	}
	a.logger.Info(style.Check + " Official packages updated")

	return a.Update(ctx)
}
