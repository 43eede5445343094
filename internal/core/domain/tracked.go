package domain

import "slices"

// TrackedSet is the set of package names the tool is responsible for.
// It is a hint about what was installed, never ground truth.
type TrackedSet map[string]struct{}

// NewTrackedSet creates a set holding the given names.
func NewTrackedSet(names ...string) TrackedSet {
	s := make(TrackedSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name. Empty names are ignored.
func (s TrackedSet) Add(name string) {
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

// Remove deletes name if present.
func (s TrackedSet) Remove(name string) {
	delete(s, name)
}

// Has reports whether name is tracked.
func (s TrackedSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in ascending order.
func (s TrackedSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// BaseNames returns the distinct base names of the set, sorted.
func (s TrackedSet) BaseNames() []string {
	bases := make(TrackedSet, len(s))
	for n := range s {
		bases.Add(BaseName(n))
	}
	return bases.Sorted()
}

// Equal reports whether both sets hold the same names.
func (s TrackedSet) Equal(other TrackedSet) bool {
	if len(s) != len(other) {
		return false
	}
	for n := range s {
		if !other.Has(n) {
			return false
		}
	}
	return true
}
