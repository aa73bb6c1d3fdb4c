// Package runner executes external toolchain programs and captures their
// standard output verbatim.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
)

// ErrToolNotFound is returned when the requested executable cannot be
// located.
var ErrToolNotFound = errors.New("executable not found")

// NotFound wraps the lookup failure cause for the executable name in
// ErrToolNotFound.
func NotFound(name string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrToolNotFound, name, cause)
}

// Runner runs a program to completion and returns its raw stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ResolveFunc maps an executable name to the path that should be run.
type ResolveFunc func(name string) (string, error)

// ExitError reports a tool that ran but exited unsuccessfully.
type ExitError struct {
	Name   string
	Code   int
	Stderr []byte
	Err    error
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
	if stderr := strings.TrimSpace(string(e.Stderr)); stderr != "" {
		msg += "\nOutput:\n" + stderr
	}
	return msg
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exec runs programs as child processes, one at a time.
type Exec struct {
	Resolve ResolveFunc
	Logger  zerolog.Logger
}

// New returns an Exec runner. A nil resolve falls back to exec.LookPath.
func New(resolve ResolveFunc, logger zerolog.Logger) *Exec {
	if resolve == nil {
		resolve = exec.LookPath
	}
	return &Exec{Resolve: resolve, Logger: logger}
}

// Run blocks until the program exits. Stdout is returned byte for byte;
// stderr is attached to the error on failure and logged on success.
func (r *Exec) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	path, err := r.Resolve(name)
	if err != nil {
		return nil, NotFound(name, err)
	}

	r.Logger.Debug().Str("cmd", shellquote.Join(append([]string{path}, args...)...)).Msg("running")

	var stdout, stderr bytes.Buffer
	//nolint:gosec
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ExitError{
				Name:   name,
				Code:   exitErr.ExitCode(),
				Stderr: stderr.Bytes(),
				Err:    err,
			}
		}
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}

	if stderr.Len() > 0 {
		r.Logger.Warn().Str("tool", name).Msg(strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
