//go:build windows

package cmdutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// runShell runs command with cmd.exe /d /s /c. The command line is passed raw
// so quoting built by shellutil reaches cmd.exe untouched.
func runShell(ctx context.Context, command string, stdout, stderr io.Writer) error {
	comspec := os.Getenv("ComSpec")
	if comspec == "" {
		comspec = "cmd.exe"
	}

	cmd := exec.CommandContext(ctx, comspec)
	cmd.Env = os.Environ()
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine:    fmt.Sprintf(`%s /d /s /c "%s"`, syscall.EscapeArg(comspec), command),
		HideWindow: true,
	}

	return cmd.Run()
}

// hideWindow prevents a console window flash for direct program runs.
func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}

// shellExitCode has nothing to add on Windows; cmd.exe failures are *exec.ExitError.
func shellExitCode(error) (int, bool) {
	return 0, false
}
