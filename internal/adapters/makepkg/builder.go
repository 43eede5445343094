// Package makepkg implements the Builder port by running makepkg.
package makepkg

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/zerr"
)

const makepkgBin = "makepkg"

// Runner runs makepkg attached to the terminal. It is satisfied by *shell.Runner.
type Runner interface {
	Interactive(ctx context.Context, dir, name string, args ...string) error
}

// Builder builds and installs a package from its source directory.
type Builder struct {
	runner Runner
}

// NewBuilder creates a Builder using runner.
func NewBuilder(runner Runner) *Builder {
	return &Builder{runner: runner}
}

// Build runs `makepkg -si` in sourceDir. The user answers makepkg's prompts
// directly, so nothing is captured.
func (b *Builder) Build(ctx context.Context, sourceDir string) error {
	if _, err := os.Stat(filepath.Join(sourceDir, domain.BuildDescriptorName)); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "path", sourceDir)
		return zerr.With(wrapped, "reason", "missing "+domain.BuildDescriptorName)
	}

	if err := b.runner.Interactive(ctx, sourceDir, makepkgBin, "-si"); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "path", sourceDir)
	}

	return nil
}
