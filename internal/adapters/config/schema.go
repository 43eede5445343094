package config

import (
	"time"

	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/zerr"
)

// configFile is the on-disk representation of domain.Config.
// Absent keys keep their default values.
type configFile struct {
	DownloadDir       string `yaml:"download_dir,omitempty"`
	UseColor          *bool  `yaml:"use_color,omitempty"`
	AURURL            string `yaml:"aur_url,omitempty"`
	RequestTimeout    string `yaml:"request_timeout,omitempty"`
	VersionCompare    string `yaml:"version_compare,omitempty"`
	PackageExtension  string `yaml:"package_extension,omitempty"`
	ArtifactInspector string `yaml:"artifact_inspector,omitempty"`
}

func fromConfig(cfg *domain.Config) configFile {
	useColor := cfg.UseColor
	return configFile{
		DownloadDir:       cfg.DownloadDir,
		UseColor:          &useColor,
		AURURL:            cfg.AURURL,
		RequestTimeout:    cfg.RequestTimeout.String(),
		VersionCompare:    cfg.VersionCompare,
		PackageExtension:  cfg.PackageExtension,
		ArtifactInspector: cfg.ArtifactInspector,
	}
}

// apply overlays the values present in f onto cfg.
func (f *configFile) apply(cfg *domain.Config, paths domain.Paths) error {
	if f.DownloadDir != "" {
		cfg.DownloadDir = paths.ExpandHome(f.DownloadDir)
	}
	if f.UseColor != nil {
		cfg.UseColor = *f.UseColor
	}
	if f.AURURL != "" {
		cfg.AURURL = f.AURURL
	}
	if f.RequestTimeout != "" {
		d, err := time.ParseDuration(f.RequestTimeout)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "request_timeout", f.RequestTimeout)
		}
		cfg.RequestTimeout = d
	}
	if f.VersionCompare != "" {
		cfg.VersionCompare = f.VersionCompare
	}
	if f.PackageExtension != "" {
		cfg.PackageExtension = f.PackageExtension
	}
	if f.ArtifactInspector != "" {
		cfg.ArtifactInspector = f.ArtifactInspector
	}
	return nil
}
