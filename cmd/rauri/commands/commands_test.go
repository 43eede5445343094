package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rauri/cmd/rauri/commands"
	"go.trai.ch/rauri/internal/app"
	"go.trai.ch/rauri/internal/build"
)

type mockApp struct {
	verbose    bool
	setupCalls int
	calls      []string

	installFunc func(ctx context.Context, target string) error
	removeFunc  func(ctx context.Context, name string, opts app.RemoveOptions) error
	listFunc    func(ctx context.Context, opts app.ListOptions) error
	searchFunc  func(ctx context.Context, query string) error
	setPathFunc func(ctx context.Context, path string) error
	setupErr    error
	updateErr   error
}

func (m *mockApp) SetVerbose(verbose bool) { m.verbose = verbose }

func (m *mockApp) Setup(_ context.Context) error {
	m.setupCalls++
	return m.setupErr
}

func (m *mockApp) Install(ctx context.Context, target string) error {
	m.calls = append(m.calls, "install")
	if m.installFunc != nil {
		return m.installFunc(ctx, target)
	}
	return nil
}

func (m *mockApp) Update(_ context.Context) error {
	m.calls = append(m.calls, "update")
	return m.updateErr
}

func (m *mockApp) Upgrade(_ context.Context) error {
	m.calls = append(m.calls, "upgrade")
	return nil
}

func (m *mockApp) Remove(ctx context.Context, name string, opts app.RemoveOptions) error {
	m.calls = append(m.calls, "remove")
	if m.removeFunc != nil {
		return m.removeFunc(ctx, name, opts)
	}
	return nil
}

func (m *mockApp) List(ctx context.Context, opts app.ListOptions) error {
	m.calls = append(m.calls, "list")
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Search(ctx context.Context, query string) error {
	m.calls = append(m.calls, "search")
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return nil
}

func (m *mockApp) Clean(_ context.Context) error {
	m.calls = append(m.calls, "clean")
	return nil
}

func (m *mockApp) SetPath(ctx context.Context, path string) error {
	m.calls = append(m.calls, "set-path")
	if m.setPathFunc != nil {
		return m.setPathFunc(ctx, path)
	}
	return nil
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Install(t *testing.T) {
	t.Run("passes the target through", func(t *testing.T) {
		var target string
		m := &mockApp{installFunc: func(_ context.Context, tgt string) error {
			target = tgt
			return nil
		}}

		_, err := execute(t, m, "install", "yay-bin")
		require.NoError(t, err)
		assert.Equal(t, "yay-bin", target)
		assert.Equal(t, 1, m.setupCalls)
	})

	t.Run("requires a target", func(t *testing.T) {
		m := &mockApp{}

		_, err := execute(t, m, "install")
		require.Error(t, err)
		assert.Empty(t, m.calls)
		assert.Zero(t, m.setupCalls)
	})

	t.Run("returns error on install failure", func(t *testing.T) {
		m := &mockApp{installFunc: func(_ context.Context, _ string) error {
			return errors.New("simulated error")
		}}

		_, err := execute(t, m, "install", "foo")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_SetupFailureStopsCommand(t *testing.T) {
	m := &mockApp{setupErr: errors.New("no download dir")}

	_, err := execute(t, m, "update")
	require.Error(t, err)
	assert.Empty(t, m.calls)
}

func TestCommands_Verbose(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "--verbose", "upgrade")
	require.NoError(t, err)
	assert.True(t, m.verbose)
	assert.Equal(t, []string{"upgrade"}, m.calls)
}

func TestCommands_Update(t *testing.T) {
	m := &mockApp{updateErr: errors.New("some packages failed to update")}

	_, err := execute(t, m, "update")
	require.Error(t, err)
	assert.Equal(t, []string{"update"}, m.calls)
}

func TestCommands_Remove(t *testing.T) {
	var gotName string
	var gotOpts app.RemoveOptions
	m := &mockApp{removeFunc: func(_ context.Context, name string, opts app.RemoveOptions) error {
		gotName = name
		gotOpts = opts
		return nil
	}}

	_, err := execute(t, m, "remove", "foo", "--keep-source")
	require.NoError(t, err)
	assert.Equal(t, "foo", gotName)
	assert.True(t, gotOpts.KeepSource)

	_, err = execute(t, m, "uninstall", "bar")
	require.NoError(t, err)
	assert.Equal(t, "bar", gotName)
	assert.False(t, gotOpts.KeepSource)
}

func TestCommands_List(t *testing.T) {
	var gotOpts app.ListOptions
	m := &mockApp{listFunc: func(_ context.Context, opts app.ListOptions) error {
		gotOpts = opts
		return nil
	}}

	_, err := execute(t, m, "list", "--tracked")
	require.NoError(t, err)
	assert.True(t, gotOpts.Tracked)
}

func TestCommands_Search(t *testing.T) {
	var query string
	m := &mockApp{searchFunc: func(_ context.Context, q string) error {
		query = q
		return nil
	}}

	_, err := execute(t, m, "search", "pacman", "helper")
	require.NoError(t, err)
	assert.Equal(t, "pacman helper", query)
}

func TestCommands_Clean(t *testing.T) {
	m := &mockApp{}

	_, err := execute(t, m, "clean")
	require.NoError(t, err)
	assert.Equal(t, []string{"clean"}, m.calls)
}

func TestCommands_SetPathSkipsSetup(t *testing.T) {
	var path string
	m := &mockApp{setPathFunc: func(_ context.Context, p string) error {
		path = p
		return nil
	}}

	_, err := execute(t, m, "set-path", "~/aur")
	require.NoError(t, err)
	assert.Equal(t, "~/aur", path)
	assert.Zero(t, m.setupCalls)
}

func TestCommands_Version(t *testing.T) {
	m := &mockApp{}

	out, err := execute(t, m, "version")
	require.NoError(t, err)

	assert.Contains(t, out, build.Version)
	assert.Zero(t, m.setupCalls)
}

func TestCommands_Help(t *testing.T) {
	m := &mockApp{}

	out, err := execute(t, m, "help", "remove")
	require.NoError(t, err)

	assert.Contains(t, out, "--keep-source")
	assert.Zero(t, m.setupCalls)
}
