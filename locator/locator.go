// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package locator finds an installed Windows application's executable using
// independent discovery strategies: a PATH search, the uninstall registry and a
// list of well-known install directories.
//
// Every strategy is a total function: it returns the candidate path and true, or
// an empty string and false. Errors from the tools it runs (where.exe,
// PowerShell) or from the filesystem are logged at debug level and swallowed so
// that a caller can always move on to the next strategy.
package locator

import (
	"context"
	"runtime"
	"time"

	"github.com/jongio/sharex-core/cmdutil"
	"github.com/jongio/sharex-core/logutil"
	"github.com/jongio/sharex-core/pathutil"
)

// DefaultRegistryTimeout bounds the PowerShell registry query, which is slow to
// start compared with the other strategies.
const DefaultRegistryTimeout = 8 * time.Second

// Target describes the application being located.
type Target struct {
	// Name is the display name, e.g. "ShareX".
	Name string
	// Executable is the file name every accepted candidate must end with.
	Executable string
	// DisplayNamePattern is a PowerShell -like pattern matched against the
	// uninstall entry's DisplayName, e.g. "ShareX*".
	DisplayNamePattern string
	// DefaultLocations are full executable paths that may contain %NAME%
	// placeholders. They are checked in order.
	DefaultLocations []string
}

// Strategy is a single discovery method.
type Strategy func(ctx context.Context) (string, bool)

// CommandRunner runs a program and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args []string, timeout time.Duration) (string, error)

// Locator runs discovery strategies for one Target. It holds no mutable state
// and is safe for concurrent use.
type Locator struct {
	target          Target
	run             CommandRunner
	exists          func(string) bool
	lookPath        func(string) string
	goos            string
	searchDirs      []string
	registryTimeout time.Duration
}

// Option configures a Locator.
type Option func(*Locator)

// WithCommandRunner replaces the program runner used by the PATH and registry
// strategies.
func WithCommandRunner(run CommandRunner) Option {
	return func(l *Locator) {
		l.run = run
	}
}

// WithExistsFunc replaces the existence check.
func WithExistsFunc(exists func(string) bool) Option {
	return func(l *Locator) {
		l.exists = exists
	}
}

// WithLookPath replaces the PATH lookup used on non-Windows hosts.
func WithLookPath(lookPath func(string) string) Option {
	return func(l *Locator) {
		l.lookPath = lookPath
	}
}

// WithGOOS overrides the operating system the strategies behave for.
func WithGOOS(goos string) Option {
	return func(l *Locator) {
		l.goos = goos
	}
}

// WithSearchDirs adds directories to check after the target's default locations.
// Each directory may contain %NAME% placeholders.
func WithSearchDirs(dirs ...string) Option {
	return func(l *Locator) {
		l.searchDirs = append(l.searchDirs, dirs...)
	}
}

// WithRegistryTimeout overrides DefaultRegistryTimeout.
func WithRegistryTimeout(timeout time.Duration) Option {
	return func(l *Locator) {
		l.registryTimeout = timeout
	}
}

// New creates a Locator for target.
func New(target Target, opts ...Option) *Locator {
	l := &Locator{
		target:          target,
		run:             runCommand,
		exists:          pathutil.FileExists,
		lookPath:        pathutil.FindToolInPath,
		goos:            runtime.GOOS,
		registryTimeout: DefaultRegistryTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Target returns the application this Locator searches for.
func (l *Locator) Target() Target {
	return l.target
}

// Accept reports whether candidate names the target executable and exists.
func (l *Locator) Accept(candidate string) bool {
	return pathutil.HasExecutableName(candidate, l.target.Executable) && l.Exists(candidate)
}

// Exists reports whether path exists according to the configured check.
func (l *Locator) Exists(path string) bool {
	return path != "" && l.exists(path)
}

func (l *Locator) logger(strategy string) *logutil.ComponentLogger {
	return logutil.NewLogger("locator").WithTarget(l.target.Name).WithStrategy(strategy)
}

// runCommand is the default CommandRunner. Failures are expected while searching,
// so they are not logged as warnings.
func runCommand(ctx context.Context, name string, args []string, timeout time.Duration) (string, error) {
	return cmdutil.RunCommandWithOutput(ctx, name, args, cmdutil.Options{
		Timeout:          timeout,
		SuppressErrorLog: true,
	})
}
