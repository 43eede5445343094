package tracking_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rauri/internal/adapters/tracking"
	"go.trai.ch/rauri/internal/core/domain"
)

func newStore(t *testing.T) *tracking.Store {
	t.Helper()
	return tracking.NewStore(filepath.Join(t.TempDir(), "rauri", "packages.yaml"))
}

func TestStore_LoadMissing(t *testing.T) {
	t.Parallel()

	set, err := newStore(t).Load()
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	sets := []domain.TrackedSet{
		domain.NewTrackedSet(),
		domain.NewTrackedSet("foo"),
		domain.NewTrackedSet("zsh-git", "foo-debug", "foo", "alpha"),
	}

	for _, want := range sets {
		store := newStore(t)
		require.NoError(t, store.Save(want))

		got, err := store.Load()
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "want %v, got %v", want.Sorted(), got.Sorted())
	}
}

func TestStore_SortedOnDisk(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	require.NoError(t, store.Save(domain.NewTrackedSet("zsh-git", "alpha", "foo")))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "packages:\n    - alpha\n    - foo\n    - zsh-git\n", string(data))

	first := string(data)
	require.NoError(t, store.Save(domain.NewTrackedSet("foo", "zsh-git", "alpha")))
	data, err = os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, first, string(data), "equal sets must produce identical bytes")
}

func TestStore_AddRemoveIdempotent(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	require.NoError(t, store.Add("foo"))
	require.NoError(t, store.Add("foo"))
	require.NoError(t, store.Add("bar"))

	set, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"bar", "foo"}, set.Sorted())

	require.NoError(t, store.Remove("foo"))
	require.NoError(t, store.Remove("foo"))
	require.NoError(t, store.Remove("never-tracked"))

	set, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"bar"}, set.Sorted())
}

func TestStore_RemoveOnMissingFileDoesNotCreateIt(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	require.NoError(t, store.Remove("foo"))

	_, err := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestStore_LoadCorrupt(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o750))
	require.NoError(t, os.WriteFile(store.Path(), []byte("packages: {oops"), 0o600))

	_, err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrTrackingParseFailed.Error())

	err = store.Add("foo")
	require.Error(t, err, "mutations must not overwrite an unreadable record")
}

func TestStore_LoadUnreadable(t *testing.T) {
	t.Parallel()

	// A directory in place of the file cannot be read.
	store := tracking.NewStore(t.TempDir())

	_, err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrTrackingReadFailed.Error())
}

func TestStore_SaveUnderFile(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	store := tracking.NewStore(filepath.Join(blocker, "rauri", "packages.yaml"))

	err := store.Save(domain.NewTrackedSet("foo"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrTrackingCreateFailed.Error())
}
