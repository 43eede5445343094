package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/ui/style"
	"go.trai.ch/zerr"
)

// Setup prepares the download directory, asking the user for its location when
// no configuration has been saved yet. An empty answer selects the default.
func (a *App) Setup(_ context.Context) error {
	if a.configLoader.Exists() {
		_, err := prepareDownloadDir(a.config.DownloadDir)
		return err
	}

	a.logger.Info("Welcome to rauri! First-time setup required.")

	def := a.configLoader.Paths().DefaultDownloadDir()
	_, _ = fmt.Fprintf(a.out, "Enter download directory path (default: %s): ", def)

	answer, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && answer == "" {
		a.logger.Debug(fmt.Sprintf("no answer read, using the default: %v", err))
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = def
	}

	dir, err := a.saveDownloadDir(answer)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("%s Download directory set to %s", style.Check, dir))
	a.logger.Info("Configuration saved to " + a.configLoader.Paths().ConfigFile())
	return nil
}

// SetPath changes the download directory and saves the configuration.
func (a *App) SetPath(_ context.Context, path string) error {
	dir, err := a.saveDownloadDir(path)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("%s AUR download path set to: %s", style.Check, dir))
	return nil
}

// saveDownloadDir creates path and persists it. The shared configuration is only
// changed once the save succeeded.
func (a *App) saveDownloadDir(path string) (string, error) {
	expanded := a.configLoader.Paths().ExpandHome(strings.TrimSpace(path))

	dir, err := prepareDownloadDir(expanded)
	if err != nil {
		return "", err
	}

	next := *a.config
	next.DownloadDir = dir
	if err := a.configLoader.Save(&next); err != nil {
		return "", err
	}
	*a.config = next

	return dir, nil
}

func prepareDownloadDir(path string) (string, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadDirCreateFailed.Error()), "path", path)
	}

	info, err := os.Stat(dir)
	if err == nil && !info.IsDir() {
		return "", zerr.With(domain.ErrDownloadDirIsFile, "path", dir)
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadDirCreateFailed.Error()), "path", dir)
	}
	return dir, nil
}

// Clean removes every package folder from the download directory. Tracking is
// left untouched.
func (a *App) Clean(_ context.Context) error {
	dir := a.config.DownloadDir

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		a.logger.Info("Download directory does not exist: " + dir)
		return nil
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDownloadDirClearFailed.Error()), "path", dir)
	}

	var removed int
	var failed []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := os.RemoveAll(path); err != nil {
			a.logger.Warn(fmt.Sprintf("Failed to remove %s: %v", path, err))
			failed = append(failed, e.Name())
			continue
		}
		removed++
	}

	if len(failed) > 0 {
		return zerr.With(domain.ErrDownloadDirClearFailed, "folders", strings.Join(failed, ", "))
	}

	if removed == 0 {
		a.logger.Info("No package folders to remove in " + dir)
		return nil
	}
	a.logger.Info(fmt.Sprintf("%s Removed %d package folder(s) from %s", style.Check, removed, dir))
	return nil
}
