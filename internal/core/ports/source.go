package ports

import "context"

// SourceFetcher retrieves package sources.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceFetcher interface {
	// Fetch clones url into dest, replacing any previous content of dest.
	Fetch(ctx context.Context, url, dest string) error
}

// Builder builds and installs a package from its source directory.
type Builder interface {
	// Build runs the build tool in sourceDir. Only success or failure is reported.
	Build(ctx context.Context, sourceDir string) error
}
