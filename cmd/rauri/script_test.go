package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// aurPackages is what the fake AUR answers for, keyed by name.
var aurPackages = map[string]string{
	"foo":     "1.0-1",
	"foo-git": "r10-1",
	"bar":     "2.0-1",
}

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"rauri": main,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupScript,
	})
}

// setupScript gives each script a private home with a config that points rauri
// at a local AUR. Scripts put their own pacman and sudo stand-ins in $WORK/bin.
func setupScript(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	binDir := filepath.Join(env.WorkDir, "bin")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+env.Getenv("PATH"))
	env.Setenv("RAURI_TEST_DB", filepath.Join(env.WorkDir, "installed"))

	homeDir := filepath.Join(env.WorkDir, ".home")
	configDir := filepath.Join(homeDir, ".config", "rauri")
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	srv := httptest.NewServer(http.HandlerFunc(serveAUR))
	env.Defer(srv.Close)

	config := "download_dir: ~/aur\nuse_color: false\naur_url: " + srv.URL + "\n"
	return os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(config), 0o600)
}

type fakeResult struct {
	Name    string `json:"Name"`
	Version string `json:"Version"`
}

func serveAUR(w http.ResponseWriter, r *http.Request) {
	kind, arg := r.URL.Query().Get("type"), r.URL.Query().Get("arg")

	results := []fakeResult{}
	for name, version := range aurPackages {
		switch {
		case kind == "info" && name == arg:
		case kind == "search" && strings.Contains(name, arg):
		default:
			continue
		}
		results = append(results, fakeResult{Name: name, Version: version})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":        kind,
		"resultcount": len(results),
		"results":     results,
	})
}
