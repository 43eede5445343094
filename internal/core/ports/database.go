package ports

import (
	"context"

	"go.trai.ch/rauri/internal/core/domain"
)

// PackageDatabase queries the live system package database.
// Every call reflects the state at call time; callers must not cache answers.
//
//go:generate go run go.uber.org/mock/mockgen -source=database.go -destination=mocks/mock_database.go -package=mocks
type PackageDatabase interface {
	// IsInstalled reports whether name is installed. An error means the database
	// could not be asked, not that the package is absent.
	IsInstalled(ctx context.Context, name string) (bool, error)

	// InstalledVersion returns the installed version of name.
	// ok is false when the package is absent or its version could not be determined.
	InstalledVersion(ctx context.Context, name string) (version string, ok bool, err error)
}

// PackageManager performs mutating operations through the system package manager.
type PackageManager interface {
	// InRepository reports whether name is available from the official repositories.
	InRepository(ctx context.Context, name string) (bool, error)

	// InstallFromRepository installs name from the official repositories.
	InstallFromRepository(ctx context.Context, name string) error

	// Remove uninstalls name.
	Remove(ctx context.Context, name string) error

	// Upgrade synchronizes the databases and upgrades every official package.
	Upgrade(ctx context.Context) error

	// SearchRepository searches the official repositories.
	SearchRepository(ctx context.Context, query string) ([]domain.RepoPackage, error)
}
