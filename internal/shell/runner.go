// SPDX-License-Identifier: MPL-2.0

// Package shell runs compiler command lines through the embedded mvdan/sh
// interpreter. Using the interpreter rather than raw exec gives the build
// proper POSIX word splitting for the command strings it assembles, with
// identical behavior on every host.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// Runner executes a single command line in a working directory, blocking
// until the process exits. A non-zero exit reports an ExitStatusError.
type Runner interface {
	Run(ctx context.Context, dir, command string) error
}

// ExitStatusError is returned when a command exits non-zero.
type ExitStatusError struct {
	Command string
	Code    int
}

// Error returns the error message for ExitStatusError.
func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.Code)
}

// InterpRunner is the production Runner backed by mvdan/sh.
type InterpRunner struct {
	// Stdout and Stderr receive the command's output. Nil values default
	// to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// NewInterpRunner creates an InterpRunner wired to the process streams.
func NewInterpRunner() *InterpRunner {
	return &InterpRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run parses command as a shell program and executes it with the working
// directory set to dir. The host environment is inherited.
func (r *InterpRunner) Run(ctx context.Context, dir, command string) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "command")
	if err != nil {
		return fmt.Errorf("failed to parse command %q: %w", command, err)
	}

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &ExitStatusError{Command: command, Code: int(exitStatus)}
		}
		return fmt.Errorf("command %q failed: %w", command, err)
	}

	return nil
}
