package reconciler_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rauri/internal/adapters/matcher"  //nolint:depguard // real matching policy under test
	"go.trai.ch/rauri/internal/adapters/tracking" //nolint:depguard // real store under test
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/core/ports/mocks"
	"go.trai.ch/rauri/internal/engine/reconciler"
	"go.trai.ch/rauri/internal/engine/version"
	"go.uber.org/mock/gomock"
)

var errQuery = errors.New("pacman: unable to lock database")

type fixture struct {
	store       *tracking.Store
	db          *mocks.MockPackageDatabase
	metadata    *mocks.MockMetadataService
	artifacts   *mocks.MockArtifactResolver
	logger      *mocks.MockLogger
	downloadDir string
	warnings    []string

	installed map[string]string
	failing   map[string]error
}

func newFixture(t *testing.T, tracked ...string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		store:       tracking.NewStore(filepath.Join(t.TempDir(), "packages.yaml")),
		db:          mocks.NewMockPackageDatabase(ctrl),
		metadata:    mocks.NewMockMetadataService(ctrl),
		artifacts:   mocks.NewMockArtifactResolver(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
		downloadDir: t.TempDir(),
		installed:   map[string]string{},
		failing:     map[string]error{},
	}
	require.NoError(t, f.store.Save(domain.NewTrackedSet(tracked...)))

	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		f.warnings = append(f.warnings, msg)
	}).AnyTimes()

	f.db.EXPECT().IsInstalled(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string) (bool, error) {
			if err := f.failing[name]; err != nil {
				return false, err
			}
			_, ok := f.installed[name]
			return ok, nil
		}).AnyTimes()
	f.db.EXPECT().InstalledVersion(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, name string) (string, bool, error) {
			if err := f.failing[name]; err != nil {
				return "", false, err
			}
			v, ok := f.installed[name]
			return v, ok, nil
		}).AnyTimes()

	return f
}

func (f *fixture) reconciler() *reconciler.Reconciler {
	return reconciler.New(
		f.store,
		f.db,
		f.metadata,
		f.artifacts,
		matcher.NewSubstring(),
		version.Exact{},
		f.logger,
		&domain.Config{DownloadDir: f.downloadDir},
	)
}

func (f *fixture) tracked(t *testing.T) []string {
	t.Helper()
	set, err := f.store.Load()
	require.NoError(t, err)
	return set.Sorted()
}

// sourceDir creates a package source directory with a build descriptor.
func (f *fixture) sourceDir(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(f.downloadDir, name)
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.BuildDescriptorName), []byte("pkgname="+name+"\n"), domain.FilePerm))
	return dir
}

func TestCleanup_RemovesUninstalled(t *testing.T) {
	f := newFixture(t, "foo", "gone", "gone-debug")
	f.installed["foo"] = "1.0-1"

	removed, err := f.reconciler().Cleanup(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"gone", "gone-debug"}, removed)
	assert.Equal(t, []string{"foo"}, f.tracked(t))
}

func TestCleanup_QueryFailureKeepsEntryAndContinues(t *testing.T) {
	f := newFixture(t, "broken", "foo", "gone")
	f.installed["foo"] = "1.0-1"
	f.failing["broken"] = errQuery

	removed, err := f.reconciler().Cleanup(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"gone"}, removed)
	assert.Equal(t, []string{"broken", "foo"}, f.tracked(t))
	require.Len(t, f.warnings, 1)
	assert.Contains(t, f.warnings[0], "broken")
}

func TestCleanup_LeavesOnlyInstalledNames(t *testing.T) {
	f := newFixture(t, "a", "b", "c", "d")
	f.installed["b"] = "1"
	f.installed["d"] = "2"

	_, err := f.reconciler().Cleanup(context.Background())
	require.NoError(t, err)

	for _, name := range f.tracked(t) {
		ok, err := f.db.IsInstalled(context.Background(), name)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}
}

func TestCleanup_StoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTrackingStore(ctrl)
	db := mocks.NewMockPackageDatabase(ctrl)
	log := mocks.NewMockLogger(ctrl)
	r := reconciler.New(store, db, nil, nil, matcher.NewSubstring(), version.Exact{}, log, &domain.Config{DownloadDir: t.TempDir()})

	t.Run("unreadable store is fatal", func(t *testing.T) {
		store.EXPECT().Load().Return(nil, domain.ErrTrackingReadFailed)

		_, err := r.Cleanup(context.Background())
		require.ErrorIs(t, err, domain.ErrTrackingReadFailed)
	})

	t.Run("failed removal is reported and skipped", func(t *testing.T) {
		store.EXPECT().Load().Return(domain.NewTrackedSet("a", "b"), nil)
		db.EXPECT().IsInstalled(gomock.Any(), "a").Return(false, nil)
		db.EXPECT().IsInstalled(gomock.Any(), "b").Return(false, nil)
		store.EXPECT().Remove("a").Return(domain.ErrTrackingWriteFailed)
		store.EXPECT().Remove("b").Return(nil)
		log.EXPECT().Warn(gomock.Any()).Times(1)

		removed, err := r.Cleanup(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, removed)
	})
}
