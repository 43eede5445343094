package render_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/ui/render"
)

func TestRenderer_Packages(t *testing.T) {
	var buf bytes.Buffer
	render.New(&buf, true).Packages([]domain.ListedPackage{
		{DirName: "bar", PackageName: "bar", InstalledVersion: "2.0-1", UpstreamVersion: "2.0-1"},
		{DirName: "foo", PackageName: "foo-git", InstalledVersion: "r10-1", UpstreamVersion: "r12-1", Outdated: true},
		{DirName: "orphan", PackageName: "orphan", InstalledVersion: "1.0"},
	})

	g := goldie.New(t)
	g.Assert(t, "packages", buf.Bytes())
}

func TestRenderer_PackagesAllCurrent(t *testing.T) {
	var buf bytes.Buffer
	render.New(&buf, false).Packages([]domain.ListedPackage{
		{DirName: "bar", PackageName: "bar", InstalledVersion: "2.0-1"},
	})

	g := goldie.New(t)
	g.Assert(t, "packages_current", buf.Bytes())
}

func TestRenderer_Tracked(t *testing.T) {
	var buf bytes.Buffer
	render.New(&buf, false).Tracked([]string{"foo", "foo-debug"})

	g := goldie.New(t)
	g.Assert(t, "tracked", buf.Bytes())
}

func TestRenderer_Search(t *testing.T) {
	var buf bytes.Buffer
	render.New(&buf, true).Search(
		[]domain.UpstreamPackage{
			{Name: "yay", Version: "12.4.2-1", Description: "Yet another yogurt"},
			{Name: "yay-bin", Version: "12.4.2-1"},
		},
		[]domain.RepoPackage{
			{Repository: "extra", Name: "yajl", Version: "2.1.0-6", Description: "Yet Another JSON Library", Installed: true},
		},
	)

	g := goldie.New(t)
	g.Assert(t, "search", buf.Bytes())
}

func TestRenderer_SearchAURFailed(t *testing.T) {
	var buf bytes.Buffer
	render.New(&buf, false).Search(nil, []domain.RepoPackage{
		{Repository: "core", Name: "pacman", Version: "7.0.0-1"},
	})

	g := goldie.New(t)
	g.Assert(t, "search_repo_only", buf.Bytes())
}
