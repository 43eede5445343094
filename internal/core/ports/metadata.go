package ports

import (
	"context"

	"go.trai.ch/rauri/internal/core/domain"
)

// MetadataService retrieves upstream package metadata.
//
//go:generate go run go.uber.org/mock/mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks
type MetadataService interface {
	// Info returns the upstream description of name.
	// It fails with domain.ErrMetadataNotFound when the service does not know the
	// package, and with a distinct error when the service cannot be reached.
	Info(ctx context.Context, name string) (*domain.UpstreamPackage, error)

	// Search returns upstream packages matching query.
	Search(ctx context.Context, query string) ([]domain.UpstreamPackage, error)
}
