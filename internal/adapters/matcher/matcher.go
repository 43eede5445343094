// Package matcher decides which tracked package a partial or stale name refers to.
package matcher

import (
	"cmp"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

const suggestionLimit = 3

// Substring matches a request against candidates by bidirectional containment:
// a candidate matches when either name contains the other.
//
// Several candidates may match. The winner is the exact name if present, then
// the candidate whose length is closest to the request, then the
// lexicographically smallest, so the result never depends on candidate order.
type Substring struct{}

// NewSubstring creates a Substring matcher.
func NewSubstring() Substring {
	return Substring{}
}

// Match returns the best candidate for requested.
func (Substring) Match(requested string, candidates []string) (string, bool) {
	if requested == "" {
		return "", false
	}

	matches := Candidates(requested, candidates)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// Suggest returns a few tracked names resembling requested, for a "did you mean" hint.
func (Substring) Suggest(requested string, candidates []string) []string {
	return Suggest(requested, candidates, suggestionLimit)
}

// Candidates returns every candidate that matches requested, best first.
func Candidates(requested string, candidates []string) []string {
	var matches []string
	for _, c := range candidates {
		if c == "" || slices.Contains(matches, c) {
			continue
		}
		if strings.Contains(c, requested) || strings.Contains(requested, c) {
			matches = append(matches, c)
		}
	}

	slices.SortFunc(matches, func(a, b string) int {
		if a == requested || b == requested {
			return boolRank(a == requested, b == requested)
		}
		if c := cmp.Compare(distance(a, requested), distance(b, requested)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	return matches
}

func boolRank(a, b bool) int {
	switch {
	case a && !b:
		return -1
	case b && !a:
		return 1
	default:
		return 0
	}
}

func distance(a, b string) int {
	d := len(a) - len(b)
	if d < 0 {
		return -d
	}
	return d
}

// Suggest returns up to limit candidates resembling query, best first.
func Suggest(query string, candidates []string, limit int) []string {
	matches := fuzzy.Find(query, candidates)

	var out []string
	for _, m := range matches {
		if m.Str == query || slices.Contains(out, m.Str) {
			continue
		}
		out = append(out, m.Str)
		if len(out) == limit {
			break
		}
	}
	return out
}
