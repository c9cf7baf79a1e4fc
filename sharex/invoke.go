// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package sharex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jongio/sharex-core/cmdutil"
	"github.com/jongio/sharex-core/logutil"
	"github.com/jongio/sharex-core/shellutil"
)

// DefaultTimeout bounds a ShareX invocation when no timeout is given.
const DefaultTimeout = cmdutil.DefaultTimeout

var (
	// ErrNotFound indicates no ShareX executable could be located.
	ErrNotFound = errors.New("ShareX executable not found; set its path or ensure ShareX is installed")
	// ErrInvocationFailed wraps every failure to run ShareX.
	ErrInvocationFailed = errors.New("ShareX invocation failed")
)

// Executor runs a full command line and returns its standard output.
type Executor func(ctx context.Context, command string, opts cmdutil.Options) (string, error)

func defaultExecutor(ctx context.Context, command string, opts cmdutil.Options) (string, error) {
	return cmdutil.ExecuteCommand(ctx, command, opts)
}

// RunOption configures a single Run.
type RunOption func(*runConfig)

type runConfig struct {
	pathHint string
	timeout  time.Duration
}

// WithPathHint sets the preferred executable path, validated before
// auto-detection.
func WithPathHint(hint string) RunOption {
	return func(c *runConfig) {
		c.pathHint = hint
	}
}

// WithTimeout overrides DefaultTimeout. A zero or negative timeout makes the
// run fail without starting ShareX.
func WithTimeout(timeout time.Duration) RunOption {
	return func(c *runConfig) {
		c.timeout = timeout
	}
}

// Invoke runs the executable at exePath with args. Each argument is quoted for
// the shell as needed and the executable path is always quoted.
func (r *Resolver) Invoke(ctx context.Context, exePath string, args []string, timeout time.Duration) (string, error) {
	if exePath == "" {
		return "", fmt.Errorf("%w: %w", ErrInvocationFailed, ErrNotFound)
	}
	if timeout <= 0 {
		return "", fmt.Errorf("%w: %w: %s", ErrInvocationFailed, cmdutil.ErrInvalidTimeout, timeout)
	}

	command := shellutil.BuildCommandLine(exePath, args)
	log := logutil.NewLogger("sharex").WithTarget(Target.Name).WithOperation("invoke")
	log.Debug("running ShareX", "shell", shellutil.DefaultShell(), "command", command, "timeout", timeout)

	out, err := r.execute(ctx, command, cmdutil.Options{Timeout: timeout})
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrInvocationFailed, err)
	}
	log.Info("ShareX accepted command", "exe", exePath)
	return out, nil
}

// Run resolves ShareX and invokes it with args. When ShareX cannot be found
// the error matches both ErrInvocationFailed and ErrNotFound and nothing is
// started.
func (r *Resolver) Run(ctx context.Context, args []string, opts ...RunOption) (string, error) {
	cfg := runConfig{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	exe := r.ResolvePath(ctx, cfg.pathHint)
	return r.Invoke(ctx, exe, args, cfg.timeout)
}

// Invoke runs exePath with the default Resolver's executor.
func Invoke(ctx context.Context, exePath string, args []string, timeout time.Duration) (string, error) {
	return defaultResolver.Invoke(ctx, exePath, args, timeout)
}

// Run resolves and runs ShareX with the default Resolver.
func Run(ctx context.Context, args []string, opts ...RunOption) (string, error) {
	return defaultResolver.Run(ctx, args, opts...)
}
