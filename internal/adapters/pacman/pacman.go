// Package pacman adapts the system package manager to the database, manager and
// artifact inspector ports.
package pacman

import (
	"bufio"
	"context"
	"strings"

	"go.trai.ch/rauri/internal/adapters/shell"
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	pacmanBin = "pacman"
	sudoBin   = "sudo"
)

// Runner runs pacman. It is satisfied by *shell.Runner.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) (shell.Result, error)
	Interactive(ctx context.Context, dir, name string, args ...string) error
}

// Database implements ports.PackageDatabase with `pacman -Q`.
type Database struct {
	runner Runner
}

// NewDatabase creates a Database using runner.
func NewDatabase(runner Runner) *Database {
	return &Database{runner: runner}
}

// IsInstalled reports whether name is installed.
//
// pacman also answers -Q for a name that an installed package only provides, so
// the reported package name must match name exactly.
func (d *Database) IsInstalled(ctx context.Context, name string) (bool, error) {
	fields, err := d.query(ctx, name)
	if err != nil {
		return false, err
	}
	return len(fields) > 0 && fields[0] == name, nil
}

// InstalledVersion returns the installed version of name.
// Output that does not look like "<name> <version>" is treated as unknown.
func (d *Database) InstalledVersion(ctx context.Context, name string) (string, bool, error) {
	fields, err := d.query(ctx, name)
	if err != nil {
		return "", false, err
	}
	if len(fields) != 2 || fields[0] != name {
		return "", false, nil
	}
	return fields[1], true, nil
}

// query runs `pacman -Q name` and returns the fields of its answer, or nil when
// pacman reports no such package.
func (d *Database) query(ctx context.Context, name string) ([]string, error) {
	res, err := d.runner.Output(ctx, pacmanBin, "-Q", name)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageQueryFailed.Error()), "package", name)
	}
	if !res.Success() {
		return nil, nil
	}
	return strings.Fields(res.Stdout), nil
}

// Manager implements ports.PackageManager, escalating mutating calls through sudo.
type Manager struct {
	runner Runner
}

// NewManager creates a Manager using runner.
func NewManager(runner Runner) *Manager {
	return &Manager{runner: runner}
}

// InRepository reports whether name is available from a sync repository.
func (m *Manager) InRepository(ctx context.Context, name string) (bool, error) {
	res, err := m.runner.Output(ctx, pacmanBin, "-Si", name)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrPackageQueryFailed.Error()), "package", name)
	}
	return res.Success(), nil
}

// InstallFromRepository installs name from the sync repositories.
func (m *Manager) InstallFromRepository(ctx context.Context, name string) error {
	if err := m.runner.Interactive(ctx, "", sudoBin, pacmanBin, "-S", "--noconfirm", name); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageInstallFailed.Error()), "package", name)
	}
	return nil
}

// Remove uninstalls name.
func (m *Manager) Remove(ctx context.Context, name string) error {
	if err := m.runner.Interactive(ctx, "", sudoBin, pacmanBin, "-R", "--noconfirm", name); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageRemovalFailed.Error()), "package", name)
	}
	return nil
}

// Upgrade refreshes the sync databases and upgrades every repository package.
func (m *Manager) Upgrade(ctx context.Context) error {
	if err := m.runner.Interactive(ctx, "", sudoBin, pacmanBin, "-Syy"); err != nil {
		return zerr.Wrap(err, domain.ErrSystemUpgradeFailed.Error())
	}
	if err := m.runner.Interactive(ctx, "", sudoBin, pacmanBin, "-Syu", "--noconfirm"); err != nil {
		return zerr.Wrap(err, domain.ErrSystemUpgradeFailed.Error())
	}
	return nil
}

// SearchRepository searches the sync repositories. No match is an empty result.
func (m *Manager) SearchRepository(ctx context.Context, query string) ([]domain.RepoPackage, error) {
	res, err := m.runner.Output(ctx, pacmanBin, "-Ss", query)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepositorySearchFailed.Error()), "query", query)
	}
	if !res.Success() {
		return nil, nil
	}
	return parseSearch(res.Stdout), nil
}

// parseSearch reads `pacman -Ss` output: a "repo/name version [tags]" header line
// followed by an indented description line.
func parseSearch(out string) []domain.RepoPackage {
	var pkgs []domain.RepoPackage

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if n := len(pkgs); n > 0 && pkgs[n-1].Description == "" {
				pkgs[n-1].Description = strings.TrimSpace(line)
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		repo, name, ok := strings.Cut(fields[0], "/")
		if !ok || name == "" {
			continue
		}
		pkgs = append(pkgs, domain.RepoPackage{
			Repository: repo,
			Name:       name,
			Version:    fields[1],
			Installed:  strings.Contains(line, "[installed"),
		})
	}

	return pkgs
}
