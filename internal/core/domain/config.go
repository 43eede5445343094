package domain

import "time"

// Version comparison modes.
const (
	// VersionCompareExact treats any difference between version strings as stale.
	VersionCompareExact = "exact"
	// VersionCompareVercmp orders versions like pacman's vercmp and only flags upgrades.
	VersionCompareVercmp = "vercmp"
)

// Artifact inspector modes.
const (
	// InspectorAuto reads package metadata natively and falls back to pacman.
	InspectorAuto = "auto"
	// InspectorNative reads .PKGINFO from the package archive.
	InspectorNative = "native"
	// InspectorPacman queries the artifact with `pacman -Qp`.
	InspectorPacman = "pacman"
)

// Config is the user configuration, passed explicitly to every component that needs it.
type Config struct {
	// DownloadDir is where package sources are cloned and built.
	DownloadDir string
	// UseColor enables colored terminal output.
	UseColor bool
	// AURURL is the base URL of the AUR instance.
	AURURL string
	// RequestTimeout bounds every metadata request.
	RequestTimeout time.Duration
	// VersionCompare selects the staleness comparator ("exact" or "vercmp").
	VersionCompare string
	// PackageExtension is the extension of built package files.
	PackageExtension string
	// ArtifactInspector selects how package metadata is read ("auto", "native" or "pacman").
	ArtifactInspector string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig(paths Paths) *Config {
	return &Config{
		DownloadDir:       paths.DefaultDownloadDir(),
		UseColor:          true,
		AURURL:            DefaultAURURL,
		RequestTimeout:    DefaultRequestTimeout,
		VersionCompare:    VersionCompareExact,
		PackageExtension:  DefaultPackageExtension,
		ArtifactInspector: InspectorAuto,
	}
}
