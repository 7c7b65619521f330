package analysis

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"
)

// notFoundExitCode is the conventional shell exit status for a missing
// command.
const notFoundExitCode = 127

// Engine abstracts the external analysis process so the orchestrator can be
// exercised without MATLAB installed.
type Engine interface {
	// Name returns the engine command name, used to recognize "not found"
	// diagnostics.
	Name() string
	// Resolve reports whether the command is resolvable on the search path.
	Resolve() error
	// Run invokes the engine synchronously and returns its combined output
	// and exit code. exitCode is negative when the process could not run or
	// was cut off; err carries the cause.
	Run(ctx context.Context) (output string, exitCode int, err error)
}

// BatchEngine runs the MATLAB batch entry point. The invocation is a
// parameterized argument vector; configuration values are never interpolated
// into a shell string.
type BatchEngine struct {
	Cmd       string
	ScriptDir string
	Timeout   time.Duration
}

// Name implements Engine.
func (e *BatchEngine) Name() string {
	return e.Cmd
}

// Resolve implements Engine.
func (e *BatchEngine) Resolve() error {
	if _, err := exec.LookPath(e.Cmd); err != nil {
		return fmt.Errorf("%w: %s", ErrEngineUnavailable, e.Cmd)
	}
	return nil
}

// Run implements Engine.
func (e *BatchEngine) Run(ctx context.Context) (string, int, error) {
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	// MATLAB wants forward slashes in cd() even on Windows.
	scriptDir := filepath.ToSlash(e.ScriptDir)
	batch := fmt.Sprintf("cd('%s'); addpath(pwd); main;", scriptDir)

	cmd := exec.CommandContext(ctx, e.Cmd, "-batch", batch)
	cmd.Dir = e.ScriptDir

	out, err := cmd.CombinedOutput()
	if err == nil {
		return string(out), 0, nil
	}

	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return string(out), -1, fmt.Errorf("engine timed out after %s", e.Timeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return string(out), exitErr.ExitCode(), err
	}
	return string(out), -1, err
}
