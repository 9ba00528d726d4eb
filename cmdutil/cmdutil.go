// Package cmdutil provides child process execution for the envlink CLI.
// It runs commands that inherit the parent's (possibly scoped) environment
// and translates child failures into exit codes.
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Run executes a command and waits for it to complete. The command inherits
// environment variables, stdout, stderr, and stdin from the parent process,
// so overrides applied with envscope.With are visible to the child.
func Run(ctx context.Context, name string, args []string, dir string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %s failed: %w", name, err)
	}
	return nil
}

// RunWithOutput executes a command and returns its combined output.
// The command inherits environment variables from the parent process.
func RunWithOutput(ctx context.Context, name string, args []string, dir string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("command %s failed: %w", name, err)
	}
	return output, nil
}

// ExitCode extracts the process exit code from an error returned by Run.
// A nil error is 0, a child that exited non-zero yields its own code, and
// anything else (e.g. command not found) yields 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
