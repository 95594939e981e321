// Package runner executes package manager commands and captures their output.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
)

// Result is the captured outcome of a finished command
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the command exited zero
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner abstracts command execution and executable lookup.
// Run returns an error only when the command could not be started; a
// non-zero exit is reported through Result.ExitCode.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)
	LookPath(name string) (string, error)
}

// ExecRunner executes commands on the local host.
type ExecRunner struct {
	Log zerolog.Logger
}

// NewExecRunner returns an ExecRunner logging to log
func NewExecRunner(log zerolog.Logger) *ExecRunner {
	return &ExecRunner{Log: log}
}

// Run blocks until the command exits, capturing stdout and stderr in full.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	default:
		r.Log.Debug().Str("cmd", name).Strs("args", args).Err(err).Msg("command failed to start")
		return res, err
	}

	r.Log.Debug().
		Str("cmd", name).
		Strs("args", args).
		Str("dir", dir).
		Int("exit", res.ExitCode).
		Dur("took", time.Since(start)).
		Msg("command finished")
	return res, nil
}

// LookPath resolves name against PATH
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
