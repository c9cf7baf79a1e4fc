// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jongio/sharex-core/browser"
	"github.com/jongio/sharex-core/cliout"
	"github.com/jongio/sharex-core/config"
	"github.com/jongio/sharex-core/logutil"
	"github.com/jongio/sharex-core/procutil"
	"github.com/jongio/sharex-core/sharex"
	"github.com/jongio/sharex-core/version"
)

// app carries the per-invocation state shared by the commands.
type app struct {
	cfgFile string
	cfg     *config.Config
	cfgPath string

	resolver     *sharex.Resolver
	resolverOpts []sharex.Option

	progressOut   io.Writer
	findProcesses func(ctx context.Context, name string) ([]procutil.Info, error)
	launch        func(browser.LaunchOptions) error
}

func newApp() *app {
	return &app{
		progressOut:   os.Stderr,
		findProcesses: procutil.FindByName,
		launch:        browser.Launch,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "sharex",
		Short: "Find ShareX and trigger captures from the command line",
		Long: `sharex locates the ShareX executable and runs its command-line actions.

The executable is taken from --path (or SHAREX_PATH, or sharex_path in the
config file) when it points at an existing ShareX.exe. Otherwise it is searched
for on the PATH, in the Windows uninstall registry and in the default install
directories, in that order.

Examples:
  sharex path                 Show where ShareX was found and how
  sharex capture region       Start a region capture
  sharex open                 Open the ShareX main window
  sharex run -- -PrintScreen  Pass arguments straight to ShareX`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is <config dir>/sharex/config.yaml)")
	flags.String("path", "", "path to ShareX.exe; may contain %NAME% environment references")
	flags.Duration("timeout", sharex.DefaultTimeout, "how long to wait for ShareX to accept a command")
	flags.StringSlice("search-dir", nil, "extra directory to search for ShareX.exe (repeatable)")
	flags.StringP("output", "o", "default", "output format: default or json")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-format", "text", "log format: text or json")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("color", "auto", "colorize output: auto, always or never")

	root.AddCommand(
		newPathCmd(a),
		newCaptureCmd(a),
		newOpenCmd(a),
		newRunCmd(a),
		newStatusCmd(a),
		newDocsCmd(a),
		newConfigCmd(a),
		version.NewCommand(version.New("sharex")),
	)
	return root
}

// setup loads the configuration and prepares logging, output and the resolver
// before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, path, err := config.Load(cmd.Context(), config.LoadOptions{
		ConfigFile: a.cfgFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return err
	}
	a.cfg, a.cfgPath = cfg, path

	logutil.SetupLogger(cfg.Debug, cfg.StructuredLogs())
	if !cfg.Debug {
		logutil.SetLevel(logutil.ParseLevel(cfg.LogLevel))
	}
	if err := cliout.SetFormat(cfg.Output); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Color) {
	case "always":
		cliout.ForceColor()
	case "never":
		cliout.NoColor()
	}

	opts := append([]sharex.Option{}, a.resolverOpts...)
	opts = append(opts, sharex.WithSearchDirs(cfg.SearchDirs...))
	a.resolver = sharex.NewResolver(opts...)

	logutil.Debug("configuration loaded", "file", path, "timeout", cfg.Timeout, "searchDirs", len(cfg.SearchDirs))
	return nil
}

// progressWriter returns where step progress goes; JSON output stays clean.
func (a *app) progressWriter() io.Writer {
	if cliout.IsJSON() {
		return io.Discard
	}
	return a.progressOut
}

func (a *app) timeout() time.Duration {
	if a.cfg == nil {
		return sharex.DefaultTimeout
	}
	return a.cfg.Timeout
}

func (a *app) hint() string {
	if a.cfg == nil {
		return ""
	}
	return a.cfg.SharexPath
}

func printResolved(res sharex.ResolvedPath) {
	if res.Found() {
		cliout.Label("Path", res.Path)
	} else {
		cliout.Label("Path", cliout.Status("not found"))
	}
	cliout.Label("Source", string(res.Source))
	cliout.Label("Method", res.MethodLabel)
	cliout.Newline()
	cliout.Plain("%s", res.MethodDescription)
}

func notFoundError() error {
	return fmt.Errorf("%w: %w", sharex.ErrInvocationFailed, sharex.ErrNotFound)
}
