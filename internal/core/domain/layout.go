package domain

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	// AppName is the name of the tool, used for the config directory.
	AppName = "rauri"

	// ConfigFileName is the name of the configuration file inside the config directory.
	ConfigFileName = "config.yaml"

	// TrackingFileName is the name of the tracked package file inside the config directory.
	TrackingFileName = "packages.yaml"

	// BuildDescriptorName is the file that marks a directory as a package source.
	BuildDescriptorName = "PKGBUILD"

	// DefaultPackageExtension is the extension of packages produced by makepkg.
	DefaultPackageExtension = ".pkg.tar.zst"

	// DefaultAURURL is the base URL of the Arch User Repository.
	DefaultAURURL = "https://aur.archlinux.org"

	// DefaultRequestTimeout bounds every metadata request.
	DefaultRequestTimeout = 10 * time.Second

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Paths holds the on-disk locations owned by the tool.
type Paths struct {
	// Home is the user's home directory, used for "~" expansion.
	Home string
	// ConfigDir is the directory holding the config and tracking files.
	ConfigDir string
}

// NewPaths derives the tool's paths from a home directory.
func NewPaths(home string) Paths {
	return Paths{
		Home:      home,
		ConfigDir: filepath.Join(home, ".config", AppName),
	}
}

// ConfigFile returns the path of the configuration file.
func (p Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir, ConfigFileName)
}

// TrackingFile returns the path of the tracked package file.
func (p Paths) TrackingFile() string {
	return filepath.Join(p.ConfigDir, TrackingFileName)
}

// DefaultDownloadDir returns the download directory used when none is configured.
func (p Paths) DefaultDownloadDir() string {
	return filepath.Join(p.Home, "Downloads", "aur")
}

// ExpandHome replaces a leading "~" with the home directory.
func (p Paths) ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	return filepath.Join(p.Home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
}
