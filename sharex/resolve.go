// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package sharex

import (
	"context"
	"strings"

	"github.com/jongio/sharex-core/locator"
	"github.com/jongio/sharex-core/logutil"
	"github.com/jongio/sharex-core/pathutil"
)

// ExecutableName is the file name every resolved path ends with.
const ExecutableName = "ShareX.exe"

// Links shown by the CLI and used in install guidance.
const (
	WebsiteURL = "https://getsharex.com/"
	DocsURL    = "https://getsharex.com/docs/command-line-arguments"
)

// Target describes ShareX to the locator strategies.
var Target = locator.Target{
	Name:               "ShareX",
	Executable:         ExecutableName,
	DisplayNamePattern: "ShareX*",
	DefaultLocations: []string{
		`%ProgramFiles%\ShareX\ShareX.exe`,
		`%ProgramFiles(x86)%\ShareX\ShareX.exe`,
		`%LocalAppData%\Programs\ShareX\ShareX.exe`,
		`%LocalAppData%\ShareX\ShareX.exe`,
	},
}

// Source identifies which resolution step produced a path.
type Source string

const (
	SourcePreference Source = "preference"
	SourcePath       Source = "path"
	SourceRegistry   Source = "registry"
	SourceDefaults   Source = "defaults"
	SourceNone       Source = "none"
)

type method struct {
	label       string
	description string
}

var methods = map[Source]method{
	SourcePreference: {
		label:       "Preference",
		description: "Path taken from the configured ShareX executable path after expanding environment variables and checking that the file exists.",
	},
	SourcePath: {
		label:       "PATH lookup",
		description: "Found by searching the directories on the PATH environment variable (where ShareX.exe).",
	},
	SourceRegistry: {
		label:       "Registry",
		description: "Found from the ShareX uninstall entry in the Windows registry (InstallLocation or DisplayIcon).",
	},
	SourceDefaults: {
		label:       "Default location",
		description: "Found in a well-known installation directory (Program Files or Local AppData).",
	},
	SourceNone: {
		label:       "Not found",
		description: "No strategy located ShareX. Install ShareX or set its executable path.",
	},
}

// Label returns the short display name of the resolution step.
func (s Source) Label() string {
	return methods[s].label
}

// Description explains how the resolution step finds ShareX.
func (s Source) Description() string {
	return methods[s].description
}

// ResolvedPath is the outcome of a resolution. Path is empty exactly when
// Source is SourceNone.
type ResolvedPath struct {
	Path              string `json:"path,omitempty"`
	Source            Source `json:"source"`
	MethodLabel       string `json:"methodLabel"`
	MethodDescription string `json:"methodDescription"`
}

// Found reports whether an executable was located.
func (r ResolvedPath) Found() bool {
	return r.Source != SourceNone && r.Path != ""
}

func newResolvedPath(path string, source Source) ResolvedPath {
	if path == "" {
		source = SourceNone
	}
	return ResolvedPath{
		Path:              path,
		Source:            source,
		MethodLabel:       source.Label(),
		MethodDescription: source.Description(),
	}
}

type strategy struct {
	source Source
	run    locator.Strategy
}

// Resolver finds ShareX and runs it. It is immutable after NewResolver and safe
// for concurrent use.
type Resolver struct {
	locator    *locator.Locator
	strategies []strategy
	execute    Executor
}

// Option configures a Resolver.
type Option func(*resolverConfig)

type resolverConfig struct {
	locatorOpts []locator.Option
	execute     Executor
}

// WithLocatorOptions passes options through to the underlying locator.
func WithLocatorOptions(opts ...locator.Option) Option {
	return func(c *resolverConfig) {
		c.locatorOpts = append(c.locatorOpts, opts...)
	}
}

// WithSearchDirs adds directories to check after the built-in install
// locations.
func WithSearchDirs(dirs ...string) Option {
	return WithLocatorOptions(locator.WithSearchDirs(dirs...))
}

// WithExecutor replaces the function that runs the final command line.
func WithExecutor(execute Executor) Option {
	return func(c *resolverConfig) {
		c.execute = execute
	}
}

// NewResolver creates a Resolver for ShareX.
func NewResolver(opts ...Option) *Resolver {
	cfg := resolverConfig{execute: defaultExecutor}
	for _, opt := range opts {
		opt(&cfg)
	}

	loc := locator.New(Target, cfg.locatorOpts...)
	return &Resolver{
		locator: loc,
		strategies: []strategy{
			{source: SourcePath, run: loc.FromPath},
			{source: SourceRegistry, run: loc.FromRegistry},
			{source: SourceDefaults, run: loc.FromDefaults},
		},
		execute: cfg.execute,
	}
}

// Resolve validates hint and falls back to the PATH, registry and default
// location strategies in that order. It never fails; when nothing is found the
// result has Source SourceNone and an empty Path.
func (r *Resolver) Resolve(ctx context.Context, hint string) ResolvedPath {
	log := logutil.NewLogger("sharex").WithTarget(Target.Name).WithOperation("resolve")

	if hint = strings.TrimSpace(hint); hint != "" {
		candidate := pathutil.SanitizePath(pathutil.ExpandEnv(hint))
		if r.locator.Accept(candidate) {
			log.Debug("using configured path", "path", candidate)
			return newResolvedPath(candidate, SourcePreference)
		}
		log.WithFields("hint", hint, "candidate", candidate).Warn("configured ShareX path is not usable, auto-detecting")
	}

	for _, p := range r.strategies {
		if path, ok := p.run(ctx); ok {
			log.Debug("resolved", "source", p.source, "path", path)
			return newResolvedPath(path, p.source)
		}
	}

	log.Debug("ShareX not found")
	return newResolvedPath("", SourceNone)
}

// ResolvePath is Resolve without provenance: the path, or "" when not found.
func (r *Resolver) ResolvePath(ctx context.Context, hint string) string {
	return r.Resolve(ctx, hint).Path
}

var defaultResolver = NewResolver()

// Resolve resolves ShareX with the default Resolver.
func Resolve(ctx context.Context, hint string) ResolvedPath {
	return defaultResolver.Resolve(ctx, hint)
}

// ResolvePath resolves the ShareX path with the default Resolver.
func ResolvePath(ctx context.Context, hint string) string {
	return defaultResolver.ResolvePath(ctx, hint)
}
