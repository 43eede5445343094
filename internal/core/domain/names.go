package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// DebugSuffix marks the debug-symbol companion of a package.
const DebugSuffix = "-debug"

var sourceURLRegex = regexp.MustCompile(`aur\.archlinux\.org/([^/]+)\.git$`)

// IsDebugName reports whether name is a debug-symbol companion package.
func IsDebugName(name string) bool {
	return strings.HasSuffix(name, DebugSuffix) && len(name) > len(DebugSuffix)
}

// BaseName strips the debug suffix from name, if any.
// Debug companions share an update cycle with their base package.
func BaseName(name string) string {
	if IsDebugName(name) {
		return strings.TrimSuffix(name, DebugSuffix)
	}
	return name
}

// DebugName returns the debug companion name for a package.
func DebugName(name string) string {
	return name + DebugSuffix
}

// IsSourceURL reports whether s looks like an AUR git clone URL.
func IsSourceURL(s string) bool {
	return strings.Contains(s, "aur.archlinux.org") && strings.HasSuffix(s, ".git")
}

// PackageNameFromURL extracts the package name from an AUR git clone URL.
func PackageNameFromURL(url string) (string, error) {
	m := sourceURLRegex.FindStringSubmatch(url)
	if m == nil {
		return "", zerr.With(ErrInvalidSourceURL, "url", url)
	}
	return m[1], nil
}

// SourceURL builds the git clone URL of a package on the given AUR instance.
func SourceURL(aurURL, name string) string {
	return strings.TrimSuffix(aurURL, "/") + "/" + name + ".git"
}
