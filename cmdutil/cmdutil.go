// Package cmdutil provides command execution utilities: running a command line
// through the platform shell or a program directly, with a timeout, capturing
// standard output.
package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/jongio/sharex-core/logutil"
)

// DefaultTimeout is the default timeout for command execution.
const DefaultTimeout = 15 * time.Second

// waitDelay bounds how long a canceled process may take to exit, and how long
// Wait then blocks on output pipes still held open by its grandchildren.
const waitDelay = time.Second

var (
	// ErrTimeout indicates the command did not finish before its deadline.
	ErrTimeout = errors.New("command timed out")
	// ErrInvalidTimeout indicates a zero or negative timeout was requested.
	ErrInvalidTimeout = errors.New("invalid timeout")
	// ErrEmptyCommand indicates there was nothing to run.
	ErrEmptyCommand = errors.New("empty command")
)

// Options controls a single command execution.
type Options struct {
	// Timeout bounds the run. It must be positive.
	Timeout time.Duration
	// SuppressErrorLog skips the warning log on failure. Lookups that expect
	// failures set this.
	SuppressErrorLog bool
}

// CommandError describes a command that started but did not succeed.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed with exit code %d", e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecuteCommand runs command through the platform shell (cmd.exe on Windows,
// an embedded POSIX interpreter elsewhere) and returns its standard output.
// A non-positive timeout fails immediately without starting anything.
func ExecuteCommand(ctx context.Context, command string, opts Options) (string, error) {
	if strings.TrimSpace(command) == "" {
		return "", ErrEmptyCommand
	}
	if opts.Timeout <= 0 {
		return "", fmt.Errorf("%w: %s", ErrInvalidTimeout, opts.Timeout)
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("command canceled: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	err := runShell(ctx, command, &stdout, &stderr)
	if err != nil {
		return stdout.String(), finish(ctx, command, opts, err, stderr.String())
	}
	return stdout.String(), nil
}

// RunCommandWithOutput runs a program directly (no shell) and returns its
// standard output. The command inherits environment variables from the parent
// process.
func RunCommandWithOutput(ctx context.Context, name string, args []string, opts Options) (string, error) {
	if name == "" {
		return "", ErrEmptyCommand
	}
	if opts.Timeout <= 0 {
		return "", fmt.Errorf("%w: %s", ErrInvalidTimeout, opts.Timeout)
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("command canceled: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	hideWindow(cmd)

	if err := cmd.Run(); err != nil {
		display := strings.TrimSpace(name + " " + strings.Join(args, " "))
		return stdout.String(), finish(ctx, display, opts, err, stderr.String())
	}
	return stdout.String(), nil
}

// finish converts a run error into ErrTimeout, a *CommandError or a wrapped
// start failure, logging it unless suppressed.
func finish(ctx context.Context, command string, opts Options, err error, stderr string) error {
	var result error
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		result = fmt.Errorf("%w after %s", ErrTimeout, opts.Timeout)
	case ctx.Err() != nil:
		result = fmt.Errorf("command canceled: %w", ctx.Err())
	default:
		if code, ok := exitCode(err); ok {
			result = &CommandError{Command: command, ExitCode: code, Stderr: stderr, Err: err}
		} else {
			result = fmt.Errorf("failed to run command: %w", err)
		}
	}

	if !opts.SuppressErrorLog {
		logutil.Warn("command failed", "command", command, "error", result)
	}
	return result
}

// exitCode extracts a process exit code from err.
func exitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return shellExitCode(err)
}
