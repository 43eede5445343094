//nolint:testpackage // Replaces the clone function
package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newQuietFetcher(t *testing.T) *Fetcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return NewFetcher(log)
}

func TestFetch_RemovesStaleCheckout(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "aur", "foo")
	require.NoError(t, os.MkdirAll(dest, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "stale.txt"), []byte("old"), domain.FilePerm))

	f := newQuietFetcher(t)
	var gotOpts *gogit.CloneOptions
	f.clone = func(_ context.Context, path string, isBare bool, o *gogit.CloneOptions) (*gogit.Repository, error) {
		assert.Equal(t, dest, path)
		assert.False(t, isBare)
		_, err := os.Stat(filepath.Join(dest, "stale.txt"))
		assert.True(t, os.IsNotExist(err))
		gotOpts = o
		return nil, os.MkdirAll(path, domain.DirPerm)
	}

	require.NoError(t, f.Fetch(context.Background(), "https://aur.archlinux.org/foo.git", dest))
	require.NotNil(t, gotOpts)
	assert.Equal(t, "https://aur.archlinux.org/foo.git", gotOpts.URL)
}

func TestFetch_FailureCleansUp(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "foo")

	f := newQuietFetcher(t)
	f.clone = func(_ context.Context, path string, _ bool, _ *gogit.CloneOptions) (*gogit.Repository, error) {
		require.NoError(t, os.MkdirAll(filepath.Join(path, ".git"), domain.DirPerm))
		return nil, errors.New("repository not found")
	}

	err := f.Fetch(context.Background(), "https://aur.archlinux.org/foo.git", dest)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFetchFailed.Error())

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFetch_ClonesLocalRepository(t *testing.T) {
	if _, err := exec.LookPath("git-upload-pack"); err != nil {
		t.Skip("git-upload-pack not available")
	}

	origin := t.TempDir()
	repo, err := gogit.PlainInit(origin, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(origin, domain.BuildDescriptorName), []byte("pkgname=foo\n"), domain.FilePerm))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(domain.BuildDescriptorName)
	require.NoError(t, err)
	_, err = wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.org", When: time.Unix(0, 0)},
	})
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "foo")
	f := newQuietFetcher(t)
	require.NoError(t, f.Fetch(context.Background(), "file://"+origin, dest))

	data, err := os.ReadFile(filepath.Join(dest, domain.BuildDescriptorName))
	require.NoError(t, err)
	assert.Equal(t, "pkgname=foo\n", string(data))
}
