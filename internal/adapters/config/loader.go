// Package config provides the configuration loader for rauri.
package config

import (
	"errors"
	iofs "io/fs"
	"net/url"
	"os"
	"strings"

	"go.trai.ch/rauri/internal/adapters/fs"
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file in the user's config directory.
type Loader struct {
	paths domain.Paths
}

// NewLoader creates a new Loader resolving files against paths.
func NewLoader(paths domain.Paths) *Loader {
	return &Loader{paths: paths}
}

// Paths returns the locations the loader reads from.
func (l *Loader) Paths() domain.Paths {
	return l.paths
}

// Exists reports whether a config file has been written.
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.paths.ConfigFile())
	return err == nil
}

// Load reads the configuration file, falling back to defaults for absent keys
// and for a missing file.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.DefaultConfig(l.paths)
	path := l.paths.ConfigFile()

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the home directory
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := file.apply(cfg, l.paths); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if err := Validate(cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return cfg, nil
}

// Save validates cfg and atomically replaces the config file.
func (l *Loader) Save(cfg *domain.Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(fromConfig(cfg))
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}

	path := l.paths.ConfigFile()
	if err := fs.WriteFileAtomic(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}

	return nil
}

// Validate checks that every field of cfg holds a usable value.
func Validate(cfg *domain.Config) error {
	switch {
	case cfg.DownloadDir == "":
		return zerr.With(domain.ErrInvalidConfig, "download_dir", cfg.DownloadDir)
	case cfg.RequestTimeout <= 0:
		return zerr.With(domain.ErrInvalidConfig, "request_timeout", cfg.RequestTimeout.String())
	case !strings.HasPrefix(cfg.PackageExtension, "."):
		return zerr.With(domain.ErrInvalidConfig, "package_extension", cfg.PackageExtension)
	}

	switch cfg.VersionCompare {
	case domain.VersionCompareExact, domain.VersionCompareVercmp:
	default:
		return zerr.With(domain.ErrInvalidConfig, "version_compare", cfg.VersionCompare)
	}

	switch cfg.ArtifactInspector {
	case domain.InspectorAuto, domain.InspectorNative, domain.InspectorPacman:
	default:
		return zerr.With(domain.ErrInvalidConfig, "artifact_inspector", cfg.ArtifactInspector)
	}

	u, err := url.Parse(cfg.AURURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return zerr.With(domain.ErrInvalidConfig, "aur_url", cfg.AURURL)
	}

	return nil
}
