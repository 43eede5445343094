// Package git implements the SourceFetcher port with go-git.
package git

import (
	"context"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports"
	"go.trai.ch/zerr"
)

type cloneFunc func(ctx context.Context, path string, isBare bool, o *gogit.CloneOptions) (*gogit.Repository, error)

// Fetcher clones package sources into the download directory.
type Fetcher struct {
	logger ports.Logger
	clone  cloneFunc
}

// NewFetcher creates a Fetcher.
func NewFetcher(logger ports.Logger) *Fetcher {
	return &Fetcher{
		logger: logger,
		clone:  gogit.PlainCloneContext,
	}
}

// Fetch clones url into dest. Any previous content of dest is removed first so a
// stale checkout never leaks into the build.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) error {
	if err := os.RemoveAll(dest); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", dest)
	}
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "path", dest)
	}

	f.logger.Debug("cloning " + url + " into " + dest)

	_, err := f.clone(ctx, dest, false, &gogit.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	if err != nil {
		_ = os.RemoveAll(dest)
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
		return zerr.With(wrapped, "path", dest)
	}

	return nil
}
