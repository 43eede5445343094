package ports

import (
	"context"

	"go.trai.ch/rauri/internal/core/domain"
)

// ArtifactInspector reads the identity embedded in a built package file.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifact.go -destination=mocks/mock_artifact.go -package=mocks
type ArtifactInspector interface {
	// Identity returns the package name and version recorded inside the artifact.
	// It fails when the artifact is unreadable or corrupt.
	Identity(ctx context.Context, path string) (domain.BuildArtifact, error)
}

// ArtifactResolver discovers what a build actually produced.
type ArtifactResolver interface {
	// Scan returns every readable artifact in dir, sorted by path.
	Scan(ctx context.Context, dir string) ([]domain.BuildArtifact, error)

	// Resolve determines the primary package name produced in dir, falling back to
	// requested when nothing usable is found. It never fails.
	Resolve(ctx context.Context, dir, requested string) domain.ArtifactResolution
}
