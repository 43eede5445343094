package ports

// IdentityMatcher decides which candidate name a partial or stale request refers to.
type IdentityMatcher interface {
	// Match returns the candidate the request refers to. The choice must not depend on
	// the order of candidates.
	Match(requested string, candidates []string) (string, bool)

	// Suggest returns candidates resembling requested, best first, for error hints.
	Suggest(requested string, candidates []string) []string
}

// VersionComparator decides whether an installed version is stale.
type VersionComparator interface {
	// IsOutdated reports whether installed should be replaced by upstream.
	IsOutdated(installed, upstream string) bool
}
