//go:build !windows

package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// runShell runs command with the embedded POSIX interpreter from mvdan.cc/sh.
// External programs go through execHandler.
func runShell(ctx context.Context, command string, stdout, stderr io.Writer) error {
	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "command")
	if err != nil {
		return fmt.Errorf("failed to parse command: %w", err)
	}

	runner, err := interp.New(
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.StdIO(nil, stdout, stderr),
		interp.ExecHandlers(execHandler),
	)
	if err != nil {
		return fmt.Errorf("failed to create interpreter: %w", err)
	}

	return runner.Run(ctx, prog)
}

// execHandler starts external programs itself instead of delegating to next.
// When ctx is done the program gets an interrupt, then a kill after
// waitDelay; Wait stops copying output waitDelay after that even if a
// grandchild still holds the pipes.
func execHandler(_ interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		hc := interp.HandlerCtx(ctx)
		path, err := interp.LookPathDir(hc.Dir, hc.Env, args[0])
		if err != nil {
			fmt.Fprintln(hc.Stderr, err)
			return interp.ExitStatus(127)
		}

		cmd := exec.CommandContext(ctx, path)
		cmd.Args = args
		cmd.Env = environ(hc.Env)
		cmd.Dir = hc.Dir
		cmd.Stdin = hc.Stdin
		cmd.Stdout = hc.Stdout
		cmd.Stderr = hc.Stderr
		cmd.Cancel = func() error {
			return cmd.Process.Signal(os.Interrupt)
		}
		cmd.WaitDelay = waitDelay

		err = cmd.Run()
		if err != nil && ctx.Err() != nil {
			return ctx.Err()
		}

		var exitErr *exec.ExitError
		var startErr *exec.Error
		switch {
		case err == nil:
			return nil
		case errors.As(err, &exitErr):
			if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
				return interp.ExitStatus(128 + int(status.Signal()))
			}
			return interp.ExitStatus(exitErr.ExitCode())
		case errors.As(err, &startErr):
			fmt.Fprintln(hc.Stderr, err)
			return interp.ExitStatus(127)
		default:
			return err
		}
	}
}

// environ lists the exported string variables of env as KEY=value pairs.
func environ(env expand.Environ) []string {
	var list []string
	env.Each(func(name string, vr expand.Variable) bool {
		if vr.IsSet() && vr.Exported && vr.Kind == expand.String {
			list = append(list, name+"="+vr.String())
		}
		return true
	})
	return list
}

func hideWindow(*exec.Cmd) {}

// shellExitCode reads the exit status reported by the interpreter.
func shellExitCode(err error) (int, bool) {
	var status interp.ExitStatus
	if errors.As(err, &status) {
		return int(status), true
	}
	return 0, false
}
