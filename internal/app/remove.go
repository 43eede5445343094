package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/rauri/internal/core/ports"
	"go.trai.ch/rauri/internal/ui/style"
)

// RemoveOptions configures Remove.
type RemoveOptions struct {
	// KeepSource leaves the package's source directory in place.
	KeepSource bool
}

// Remove uninstalls the package name refers to, along with its installed debug
// companion, untracks it and deletes its source directory.
//
// Only the removal of the primary package can fail the call. Everything after it
// is best effort, and whatever is left behind is repaired by the next cleanup.
func (a *App) Remove(ctx context.Context, name string, opts RemoveOptions) error {
	return a.phase(ctx, "remove "+name, func(ctx context.Context, span ports.Span) error {
		span.SetAttribute("package", name)

		id, err := a.reconciler.ResolveForRemoval(ctx, name)
		if err != nil {
			return err
		}
		span.SetAttribute("installed", id.InstalledName)

		if err := a.packages.Remove(ctx, id.InstalledName); err != nil {
			return err
		}

		if id.DebugCompanion != "" {
			if err := a.packages.Remove(ctx, id.DebugCompanion); err != nil {
				a.logger.Warn(fmt.Sprintf("Failed to remove debug package %s: %v", id.DebugCompanion, err))
			}
		}

		if _, err := a.reconciler.Untrack(id); err != nil {
			a.logger.Warn(fmt.Sprintf("Failed to untrack package: %v", err))
		}

		if !opts.KeepSource && id.SourceDirName != "" {
			a.removeSourceDir(id.SourceDirName)
		}

		if id.Renamed() {
			a.logger.Info(fmt.Sprintf("%s Removed %s (was installed as %s) successfully",
				style.Check, id.RequestedName, id.InstalledName))
			return nil
		}
		a.logger.Info(fmt.Sprintf("%s Removed %s successfully", style.Check, id.InstalledName))
		return nil
	})
}

func (a *App) removeSourceDir(dirName string) {
	path := filepath.Join(a.config.DownloadDir, dirName)
	if err := os.RemoveAll(path); err != nil {
		a.logger.Warn(fmt.Sprintf("Failed to remove package folder %s: %v", path, err))
		return
	}
	a.logger.Debug("removed " + path)
}
