// Package shell runs external programs on behalf of the adapters.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/rauri/internal/core/ports"
	"go.trai.ch/zerr"
)

// Result is the captured outcome of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner starts commands either captured or attached to the user's terminal.
type Runner struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a Runner attached to the process's standard streams.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithStreams returns a copy of r that attaches interactive commands to the given streams.
func (r *Runner) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *Runner {
	return &Runner{
		logger: r.logger,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Output runs name with args and captures its output.
// A non-zero exit status is reported in the Result, not as an error; the error
// is set only when the program could not be started.
func (r *Runner) Output(ctx context.Context, name string, args ...string) (Result, error) {
	r.logger.Debug("exec " + commandLine(name, args))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // program names are fixed by the callers
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	default:
		res.ExitCode = -1
		return res, zerr.With(zerr.Wrap(err, "failed to start command"), "command", name)
	}
}

// Interactive runs name with args in dir, attached to the terminal so the user can
// answer prompts. Any non-zero exit status is an error.
func (r *Runner) Interactive(ctx context.Context, dir, name string, args ...string) error {
	r.logger.Debug("exec " + commandLine(name, args))

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // program names are fixed by the callers
	cmd.Dir = dir
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		return zerr.With(err, "command", commandLine(name, args))
	}

	return nil
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
