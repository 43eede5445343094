package pacman_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rauri/internal/adapters/pacman"
	"go.trai.ch/rauri/internal/adapters/shell"
	"go.trai.ch/rauri/internal/core/domain"
)

// fakeRunner answers captured commands from a table keyed by the command line.
type fakeRunner struct {
	outputs     map[string]shell.Result
	launchErr   error
	interactErr map[string]error
	interactive []string
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) (shell.Result, error) {
	if f.launchErr != nil {
		return shell.Result{ExitCode: -1}, f.launchErr
	}
	line := strings.Join(append([]string{name}, args...), " ")
	if res, ok := f.outputs[line]; ok {
		return res, nil
	}
	return shell.Result{ExitCode: 1, Stderr: "error: package was not found"}, nil
}

func (f *fakeRunner) Interactive(_ context.Context, _, name string, args ...string) error {
	line := strings.Join(append([]string{name}, args...), " ")
	f.interactive = append(f.interactive, line)
	return f.interactErr[line]
}

func TestDatabase_IsInstalled(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]shell.Result{
		"pacman -Q foo": {Stdout: "foo 1.0-1\n"},
	}}
	db := pacman.NewDatabase(runner)

	ok, err := db.IsInstalled(t.Context(), "foo")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = db.IsInstalled(t.Context(), "bar")
	require.NoError(t, err)
	assert.False(t, ok, "a failed query means absent")
}

func TestDatabase_IsInstalled_LaunchFailure(t *testing.T) {
	db := pacman.NewDatabase(&fakeRunner{launchErr: errors.New("exec: pacman: not found")})

	_, err := db.IsInstalled(t.Context(), "foo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrPackageQueryFailed.Error())
}

func TestDatabase_ProvidingPackageIsNotInstalled(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]shell.Result{
		"pacman -Q foo": {Stdout: "foo-git r10-1\n"},
	}}
	db := pacman.NewDatabase(runner)

	ok, err := db.IsInstalled(t.Context(), "foo")
	require.NoError(t, err)
	assert.False(t, ok, "foo-git only provides foo")

	_, ok, err = db.InstalledVersion(t.Context(), "foo")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDatabase_InstalledVersion(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]shell.Result{
		"pacman -Q foo":     {Stdout: "foo 1:2.0-3\n"},
		"pacman -Q garbled": {Stdout: "something unexpected here\n"},
	}}
	db := pacman.NewDatabase(runner)

	v, ok, err := db.InstalledVersion(t.Context(), "foo")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1:2.0-3", v)

	_, ok, err = db.InstalledVersion(t.Context(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = db.InstalledVersion(t.Context(), "garbled")
	require.NoError(t, err)
	assert.False(t, ok, "malformed output is unknown, not a panic")
}

func TestManager_Mutations(t *testing.T) {
	runner := &fakeRunner{}
	m := pacman.NewManager(runner)

	require.NoError(t, m.InstallFromRepository(t.Context(), "git"))
	require.NoError(t, m.Remove(t.Context(), "foo"))
	require.NoError(t, m.Upgrade(t.Context()))

	assert.Equal(t, []string{
		"sudo pacman -S --noconfirm git",
		"sudo pacman -R --noconfirm foo",
		"sudo pacman -Syy",
		"sudo pacman -Syu --noconfirm",
	}, runner.interactive)
}

func TestManager_Remove_Failure(t *testing.T) {
	runner := &fakeRunner{interactErr: map[string]error{
		"sudo pacman -R --noconfirm foo": errors.New("exit status 1"),
	}}
	m := pacman.NewManager(runner)

	err := m.Remove(t.Context(), "foo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrPackageRemovalFailed.Error())
}

func TestManager_Upgrade_StopsOnSyncFailure(t *testing.T) {
	runner := &fakeRunner{interactErr: map[string]error{
		"sudo pacman -Syy": errors.New("exit status 1"),
	}}
	m := pacman.NewManager(runner)

	require.Error(t, m.Upgrade(t.Context()))
	assert.Equal(t, []string{"sudo pacman -Syy"}, runner.interactive)
}

func TestManager_InRepository(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]shell.Result{
		"pacman -Si git": {Stdout: "Repository : extra\nName : git\n"},
	}}
	m := pacman.NewManager(runner)

	ok, err := m.InRepository(t.Context(), "git")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.InRepository(t.Context(), "yay")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_SearchRepository(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]shell.Result{
		"pacman -Ss fire": {Stdout: "extra/firefox 120.0-1 [installed]\n" +
			"    Fast, Private & Safe Web Browser\n" +
			"extra/firejail 0.9.72-1\n" +
			"    Linux namespaces sandbox program\n" +
			"core/broken\n"},
	}}
	m := pacman.NewManager(runner)

	pkgs, err := m.SearchRepository(t.Context(), "fire")
	require.NoError(t, err)
	assert.Equal(t, []domain.RepoPackage{
		{Repository: "extra", Name: "firefox", Version: "120.0-1", Description: "Fast, Private & Safe Web Browser", Installed: true},
		{Repository: "extra", Name: "firejail", Version: "0.9.72-1", Description: "Linux namespaces sandbox program"},
	}, pkgs)

	pkgs, err = m.SearchRepository(t.Context(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func TestInspector_Identity(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]shell.Result{
		"pacman -Qp /build/foo-git-1.0-1-x86_64.pkg.tar.zst": {Stdout: "foo-git 1.0-1\n"},
		"pacman -Qp /build/odd.pkg.tar.zst":                   {Stdout: "\n"},
	}}
	insp := pacman.NewInspector(runner)

	a, err := insp.Identity(t.Context(), "/build/foo-git-1.0-1-x86_64.pkg.tar.zst")
	require.NoError(t, err)
	assert.Equal(t, domain.BuildArtifact{Path: "/build/foo-git-1.0-1-x86_64.pkg.tar.zst", Name: "foo-git", Version: "1.0-1"}, a)

	_, err = insp.Identity(t.Context(), "/build/corrupt.pkg.tar.zst")
	require.Error(t, err)

	_, err = insp.Identity(t.Context(), "/build/odd.pkg.tar.zst")
	require.Error(t, err)
}
