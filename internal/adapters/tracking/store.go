// Package tracking persists the set of packages rauri is responsible for.
package tracking

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rauri/internal/adapters/fs"
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// record is the on-disk layout of the tracking file.
type record struct {
	Packages []string `yaml:"packages"`
}

// Store implements ports.TrackingStore using a single YAML file.
// Writes replace the whole file; concurrent invocations are not coordinated.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the tracking file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the tracked set. A missing file yields an empty set.
func (s *Store) Load() (domain.TrackedSet, error) {
	data, err := os.ReadFile(s.path) //nolint:gosec // path comes from the config directory
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.NewTrackedSet(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTrackingReadFailed.Error()), "path", s.path)
	}

	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTrackingParseFailed.Error()), "path", s.path)
	}

	return domain.NewTrackedSet(rec.Packages...), nil
}

// Save atomically replaces the tracking file with set, sorted.
func (s *Store) Save(set domain.TrackedSet) error {
	data, err := yaml.Marshal(record{Packages: set.Sorted()})
	if err != nil {
		return zerr.Wrap(err, domain.ErrTrackingMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTrackingCreateFailed.Error()), "path", dir)
	}

	if err := fs.WriteFileAtomic(s.path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTrackingWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Add tracks name.
func (s *Store) Add(name string) error {
	return s.update(func(set domain.TrackedSet) { set.Add(name) })
}

// Remove untracks name.
func (s *Store) Remove(name string) error {
	return s.update(func(set domain.TrackedSet) { set.Remove(name) })
}

// update applies fn to the stored set and saves the result when it changed.
func (s *Store) update(fn func(domain.TrackedSet)) error {
	set, err := s.Load()
	if err != nil {
		return err
	}

	next := domain.NewTrackedSet(set.Sorted()...)
	fn(next)
	if next.Equal(set) {
		return nil
	}

	return s.Save(next)
}
