package pacman

import (
	"context"
	"strings"

	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/zerr"
)

// Inspector implements ports.ArtifactInspector with `pacman -Qp`.
type Inspector struct {
	runner Runner
}

// NewInspector creates an Inspector using runner.
func NewInspector(runner Runner) *Inspector {
	return &Inspector{runner: runner}
}

// Identity queries the package file at path for its name and version.
func (i *Inspector) Identity(ctx context.Context, path string) (domain.BuildArtifact, error) {
	res, err := i.runner.Output(ctx, pacmanBin, "-Qp", path)
	if err != nil {
		return domain.BuildArtifact{}, zerr.With(zerr.Wrap(err, domain.ErrArtifactQueryFailed.Error()), "path", path)
	}
	if !res.Success() {
		err := zerr.With(domain.ErrArtifactQueryFailed, "path", path)
		return domain.BuildArtifact{}, zerr.With(err, "exit_code", res.ExitCode)
	}

	fields := strings.Fields(res.Stdout)
	if len(fields) != 2 {
		return domain.BuildArtifact{}, zerr.With(domain.ErrArtifactQueryFailed, "path", path)
	}

	return domain.BuildArtifact{Path: path, Name: fields[0], Version: fields[1]}, nil
}
