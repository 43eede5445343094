package domain

// BuildArtifact is one installable unit produced by a build.
// Name and Version come from the artifact's embedded metadata, never from its filename.
type BuildArtifact struct {
	Path    string
	Name    string
	Version string
}

// IsDebug reports whether the artifact is a debug-symbol companion.
func (a BuildArtifact) IsDebug() bool {
	return IsDebugName(a.Name)
}

// ArtifactResolution is the outcome of inspecting a build output directory.
type ArtifactResolution struct {
	// Name is the resolved primary package name, or the requested name when nothing
	// usable was found.
	Name string
	// Resolved is true when Name came from an artifact rather than the fallback.
	Resolved bool
	// Debug holds the names of debug companions produced alongside the primary package.
	Debug []string
	// Artifacts holds every artifact whose metadata could be read, sorted by path.
	Artifacts []BuildArtifact
}

// ResolvedIdentity is the database-confirmed identity behind a user's removal request.
type ResolvedIdentity struct {
	// RequestedName is the name the user typed.
	RequestedName string
	// MatchedTrackedName is the tracked name that matched the request, empty if none did.
	MatchedTrackedName string
	// InstalledName is the package confirmed present in the live database.
	InstalledName string
	// SourceDirName is the download directory holding the package's source, empty if unknown.
	SourceDirName string
	// DebugCompanion is the installed debug companion of InstalledName, empty if absent.
	DebugCompanion string
}

// TrackingVariants returns every name that may refer to the identity in the tracked set.
func (r ResolvedIdentity) TrackingVariants() []string {
	seen := make(map[string]struct{}, 5)
	var names []string
	for _, n := range []string{
		r.RequestedName,
		r.InstalledName,
		r.MatchedTrackedName,
		DebugName(r.InstalledName),
		r.DebugCompanion,
	} {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	return names
}

// Renamed reports whether the package was installed under a different name than requested.
func (r ResolvedIdentity) Renamed() bool {
	return r.InstalledName != r.RequestedName
}

// UpdatePlan is the staleness verdict for one tracked base package.
type UpdatePlan struct {
	BaseName         string
	InstalledVersion string
	UpstreamVersion  string
	NeedsUpdate      bool
}

// SkipReason explains why a tracked package was left out of an update plan.
type SkipReason string

const (
	// SkipNotInstalled means the package is no longer present in the database.
	SkipNotInstalled SkipReason = "not installed"
	// SkipQueryFailed means the database could not be queried for the package.
	SkipQueryFailed SkipReason = "database query failed"
	// SkipMetadataUnavailable means upstream metadata could not be obtained.
	SkipMetadataUnavailable SkipReason = "upstream metadata unavailable"
)

// SkippedPackage is a tracked base package excluded from the update plan.
type SkippedPackage struct {
	Name   string
	Reason SkipReason
	Err    error
}

// UpdateReport is the result of planning an update run.
type UpdateReport struct {
	Plans   []UpdatePlan
	Skipped []SkippedPackage
}

// Outdated returns the plans that need an update.
func (r UpdateReport) Outdated() []UpdatePlan {
	var out []UpdatePlan
	for _, p := range r.Plans {
		if p.NeedsUpdate {
			out = append(out, p)
		}
	}
	return out
}

// ListedPackage is a source directory whose produced package is installed.
type ListedPackage struct {
	DirName          string
	PackageName      string
	InstalledVersion string
	// UpstreamVersion is empty when upstream metadata was unavailable.
	UpstreamVersion string
	Outdated        bool
}

// UpstreamPackage is a package as described by the AUR.
type UpstreamPackage struct {
	Name        string
	Version     string
	Description string
	Votes       int64
	Popularity  float64
}

// RepoPackage is a package found in the official repositories.
type RepoPackage struct {
	Repository  string
	Name        string
	Version     string
	Description string
	Installed   bool
}
