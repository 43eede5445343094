package ports

import "go.trai.ch/rauri/internal/core/domain"

// ConfigLoader defines the interface for loading and persisting the user configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration, returning defaults when no config file exists.
	Load() (*domain.Config, error)

	// Exists reports whether a config file has been written before.
	Exists() bool

	// Save persists the configuration, replacing any previous content.
	Save(cfg *domain.Config) error

	// Paths returns the locations the configuration was resolved against.
	Paths() domain.Paths
}
