// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/rauri/internal/core/domain"

// TrackingStore persists the set of package names the tool is responsible for.
//
// The store is an optimistic hint: callers must confirm every name against the
// live package database before acting on it. No locking is provided.
//
//go:generate go run go.uber.org/mock/mockgen -source=tracking.go -destination=mocks/mock_tracking.go -package=mocks
type TrackingStore interface {
	// Load returns the tracked set. A missing record yields an empty set, not an error.
	Load() (domain.TrackedSet, error)

	// Save replaces the persisted set with the given one.
	Save(set domain.TrackedSet) error

	// Add tracks name. Adding a tracked name is not an error.
	Add(name string) error

	// Remove untracks name. Removing an absent name is not an error.
	Remove(name string) error
}
