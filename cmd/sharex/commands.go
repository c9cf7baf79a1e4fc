// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongio/sharex-core/browser"
	"github.com/jongio/sharex-core/cliout"
	"github.com/jongio/sharex-core/config"
	"github.com/jongio/sharex-core/pathutil"
	"github.com/jongio/sharex-core/procutil"
	"github.com/jongio/sharex-core/progress"
	"github.com/jongio/sharex-core/sharex"
)

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the resolved ShareX executable and how it was found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := a.resolver.Resolve(cmd.Context(), a.hint())

			err := cliout.Print(res, func() {
				cliout.CommandHeader("path")
				printResolved(res)
				if !res.Found() {
					cliout.Newline()
					cliout.Hint(pathutil.GetInstallSuggestion("sharex"))
				}
			})
			if err != nil {
				return err
			}
			if !res.Found() {
				return sharex.ErrNotFound
			}
			return nil
		},
	}
}

// invocationResult is the JSON shape of capture, open and run.
type invocationResult struct {
	Title    string              `json:"title"`
	Args     []string            `json:"args"`
	Status   string              `json:"status"`
	Resolved sharex.ResolvedPath `json:"resolved"`
	Output   string              `json:"output,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// invoke resolves ShareX and runs it with args, showing the two steps as they
// progress.
func (a *app) invoke(cmd *cobra.Command, title, step, success string, args []string) error {
	steps := progress.NewSteps(a.progressWriter(), sharex.ResolveStep, step)
	result := invocationResult{Title: title, Args: args, Status: "failed"}

	steps.Start(0)
	res := a.resolver.Resolve(cmd.Context(), a.hint())
	result.Resolved = res

	var runErr error
	if !res.Found() {
		runErr = notFoundError()
		steps.Fail(0, "ShareX not found")
		steps.Skip(1)
	} else {
		steps.Complete(0)
		steps.Start(1)
		result.Output, runErr = a.resolver.Invoke(cmd.Context(), res.Path, args, a.timeout())
		if runErr != nil {
			steps.Fail(1, runErr.Error())
		} else {
			steps.Complete(1)
			result.Status = "triggered"
		}
	}
	steps.Finish()

	if runErr != nil {
		result.Error = runErr.Error()
	}

	err := cliout.Print(result, func() {
		cliout.CommandHeader(strings.ToLower(title))
		if runErr == nil {
			cliout.Success("%s", success)
		} else {
			cliout.Error("%s failed", title)
		}
		printResolved(res)
		if out := strings.TrimSpace(result.Output); out != "" {
			cliout.Newline()
			cliout.Plain("%s", out)
		}
		if errors.Is(runErr, sharex.ErrNotFound) {
			cliout.Newline()
			cliout.Hint(pathutil.GetInstallSuggestion("sharex"))
		}
	})
	if err != nil {
		return err
	}
	return runErr
}

func newCaptureCmd(a *app) *cobra.Command {
	capture := &cobra.Command{
		Use:   "capture",
		Short: "Trigger a ShareX capture",
	}
	for _, action := range sharex.Actions {
		if action.Name == "open" {
			continue
		}
		capture.AddCommand(newActionCmd(a, action))
	}
	return capture
}

func newOpenCmd(a *app) *cobra.Command {
	action, _ := sharex.LookupAction("open")
	return newActionCmd(a, action)
}

func newActionCmd(a *app, action sharex.Action) *cobra.Command {
	return &cobra.Command{
		Use:   action.Name,
		Short: fmt.Sprintf("%s (ShareX %s)", action.Title, action.Flag),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.invoke(cmd, action.Title, action.Step, action.Success, []string{action.Flag})
		},
	}
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run -- <args...>",
		Short: "Run ShareX with arbitrary command-line arguments",
		Long: `Run ShareX with the given arguments. Arguments containing characters
other than letters, digits and _-.=/:\ are quoted.

See https://getsharex.com/docs/command-line-arguments for the list ShareX
accepts.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.invoke(cmd, "Run", "Run ShareX", "ShareX accepted the command", args)
		},
	}
}

// statusResult is the JSON shape of status.
type statusResult struct {
	Resolved  sharex.ResolvedPath `json:"resolved"`
	Running   bool                `json:"running"`
	Processes []procutil.Info     `json:"processes"`
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where ShareX is installed and whether it is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := a.resolver.Resolve(cmd.Context(), a.hint())
			procs, err := a.findProcesses(cmd.Context(), sharex.ExecutableName)
			if err != nil {
				return fmt.Errorf("failed to check whether ShareX is running: %w", err)
			}
			if procs == nil {
				procs = []procutil.Info{}
			}
			result := statusResult{Resolved: res, Running: len(procs) > 0, Processes: procs}

			return cliout.Print(result, func() {
				cliout.CommandHeader("status")
				printResolved(res)
				cliout.Newline()
				state := "stopped"
				if result.Running {
					state = "running"
				}
				cliout.Label("Process", cliout.Status(state))
				for _, p := range procs {
					where := p.Exe
					if where == "" {
						where = p.Name
					}
					cliout.Bullet("PID %d  %s", p.PID, where)
				}
			})
		},
	}
}

func newDocsCmd(a *app) *cobra.Command {
	var (
		website bool
		target  string
	)
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Open the ShareX command-line documentation in a browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !browser.IsValid(target) {
				return fmt.Errorf("invalid --browser %q (valid options: %s)", target, browser.FormatValidTargets())
			}
			t := browser.Target(target)

			url := sharex.DocsURL
			if website {
				url = sharex.WebsiteURL
			}

			if err := a.launch(browser.LaunchOptions{URL: url, Target: t}); err != nil {
				cliout.Warning("Could not open a browser: %v", err)
				cliout.Plain("Open %s manually", cliout.URL(url))
				return nil
			}

			opened := browser.ResolveTarget(t) != browser.TargetNone
			data := map[string]any{"url": url, "browser": browser.GetTargetDisplayName(t), "opened": opened}
			return cliout.Print(data, func() {
				if opened {
					cliout.Info("Opened %s in the %s", cliout.URL(url), browser.GetTargetDisplayName(t))
				} else {
					cliout.Plain("%s", url)
				}
			})
		},
	}
	cmd.Flags().BoolVar(&website, "website", false, "open the ShareX website instead")
	cmd.Flags().StringVar(&target, "browser", string(browser.TargetDefault),
		"where to open the page ("+browser.FormatValidTargets()+"); none only prints the URL")
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the sharex configuration",
	}
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cliout.IsJSON() {
				return cliout.PrintJSON(a.cfg.Settings())
			}
			if a.cfgPath != "" {
				cliout.Plain("# %s", a.cfgPath)
			}
			return config.Show(cmd.OutOrStdout(), a.cfg)
		},
	})
	return cfgCmd
}
