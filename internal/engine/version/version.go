// Package version decides whether an installed package version is stale.
package version

import (
	"strings"

	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports"
)

// Exact treats any difference between the installed and upstream strings as stale,
// including downgrades. It never misorders versions it cannot parse.
type Exact struct{}

// IsOutdated reports whether the two version strings differ.
func (Exact) IsOutdated(installed, upstream string) bool {
	return installed != upstream
}

// Ordered flags a package only when upstream sorts after the installed version,
// using pacman's epoch:version-release ordering.
type Ordered struct{}

// IsOutdated reports whether upstream is newer than installed.
func (Ordered) IsOutdated(installed, upstream string) bool {
	return Compare(installed, upstream) < 0
}

// New returns the comparator selected by mode. Unknown modes fall back to Exact.
func New(mode string) ports.VersionComparator {
	if mode == domain.VersionCompareVercmp {
		return Ordered{}
	}
	return Exact{}
}

// Compare orders two full versions the way pacman's vercmp does.
// It returns -1 if a is older than b, 0 if they are equal and 1 if a is newer.
func Compare(a, b string) int {
	if a == b {
		return 0
	}

	epochA, verA, relA := parseEVR(a)
	epochB, verB, relB := parseEVR(b)

	if c := compareSegments(epochA, epochB); c != 0 {
		return c
	}
	if c := compareSegments(verA, verB); c != 0 {
		return c
	}
	if relA != "" && relB != "" {
		return compareSegments(relA, relB)
	}
	return 0
}

// parseEVR splits [epoch:]version[-release]. A missing epoch is "0".
func parseEVR(evr string) (epoch, version, release string) {
	digits := 0
	for digits < len(evr) && isDigit(evr[digits]) {
		digits++
	}

	epoch = "0"
	version = evr
	if digits < len(evr) && evr[digits] == ':' {
		if digits > 0 {
			epoch = evr[:digits]
		}
		version = evr[digits+1:]
	}

	if i := strings.LastIndexByte(version, '-'); i >= 0 {
		release = version[i+1:]
		version = version[:i]
	}

	return epoch, version, release
}

// compareSegments walks alternating runs of digits and letters. Separator runs
// only matter by length. Numeric runs compare by value, alphabetic runs
// lexically, and a numeric run is newer than an alphabetic one.
func compareSegments(a, b string) int {
	if a == b {
		return 0
	}

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		startA, startB := i, j
		for i < len(a) && !isAlnum(a[i]) {
			i++
		}
		for j < len(b) && !isAlnum(b[j]) {
			j++
		}
		if i >= len(a) || j >= len(b) {
			break
		}
		if i-startA != j-startB {
			return sign(i - startA - (j - startB))
		}

		startA, startB = i, j
		numeric := isDigit(a[i])
		class := isAlpha
		if numeric {
			class = isDigit
		}
		for i < len(a) && class(a[i]) {
			i++
		}
		for j < len(b) && class(b[j]) {
			j++
		}

		segA, segB := a[startA:i], b[startB:j]
		if segB == "" {
			if numeric {
				return 1
			}
			return -1
		}

		if numeric {
			segA = strings.TrimLeft(segA, "0")
			segB = strings.TrimLeft(segB, "0")
			if len(segA) != len(segB) {
				return sign(len(segA) - len(segB))
			}
		}

		if c := strings.Compare(segA, segB); c != 0 {
			return c
		}
	}

	restA, restB := i >= len(a), j >= len(b)
	if restA && restB {
		return 0
	}
	// A trailing alphabetic run is older than nothing, anything else is newer.
	if (restA && !isAlpha(b[j])) || (!restA && isAlpha(a[i])) {
		return -1
	}
	return 1
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isAlnum(c byte) bool { return isDigit(c) || isAlpha(c) }
