package cmdutil

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestExecuteCommandEcho(t *testing.T) {
	out, err := ExecuteCommand(context.Background(), "echo hello", Options{Timeout: 5 * time.Second})
	if err != nil {
		t.Fatalf("ExecuteCommand() error = %v, want nil", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("ExecuteCommand() output = %q, want %q", out, "hello")
	}
}

func TestExecuteCommandNonZeroExit(t *testing.T) {
	out, err := ExecuteCommand(context.Background(), "exit 3", Options{Timeout: 5 * time.Second, SuppressErrorLog: true})
	if err == nil {
		t.Fatalf("ExecuteCommand() error = nil, want failure (output %q)", out)
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T: %v", err, err)
	}
	if cmdErr.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", cmdErr.ExitCode)
	}
	if !strings.Contains(cmdErr.Error(), "exit code 3") {
		t.Errorf("Error() = %q, want it to mention the exit code", cmdErr.Error())
	}
}

func TestExecuteCommandTimeout(t *testing.T) {
	command := "sleep 10"
	if runtime.GOOS == "windows" {
		command = "ping -n 11 127.0.0.1"
	}

	start := time.Now()
	_, err := ExecuteCommand(context.Background(), command, Options{Timeout: 200 * time.Millisecond, SuppressErrorLog: true})
	elapsed := time.Since(start)

	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("ExecuteCommand() error = %v, want ErrTimeout", err)
	}
	if elapsed > 5*time.Second {
		t.Errorf("ExecuteCommand() took %s, expected to stop shortly after the timeout", elapsed)
	}
}

func TestExecuteCommandTimeoutWithGrandchild(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell child")
	}

	// The child shell leaves sleep holding stdout after it is killed.
	start := time.Now()
	_, err := ExecuteCommand(context.Background(), `sh -c 'sleep 6; echo done'`, Options{Timeout: 200 * time.Millisecond, SuppressErrorLog: true})
	elapsed := time.Since(start)

	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("ExecuteCommand() error = %v, want ErrTimeout", err)
	}
	if elapsed > 4*time.Second {
		t.Errorf("ExecuteCommand() took %s, want it bounded by the timeout plus the wait delay", elapsed)
	}
}

func TestExecuteCommandNotFound(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("exit status 127 comes from the POSIX interpreter")
	}

	_, err := ExecuteCommand(context.Background(), "nonexistent-command-xyz-123", Options{Timeout: 5 * time.Second, SuppressErrorLog: true})

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T: %v", err, err)
	}
	if cmdErr.ExitCode != 127 {
		t.Errorf("ExitCode = %d, want 127", cmdErr.ExitCode)
	}
}

func TestExecuteCommandInvalidTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
	}{
		{"zero", 0},
		{"negative", -time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			_, err := ExecuteCommand(context.Background(), "echo never", Options{Timeout: tt.timeout})
			if !errors.Is(err, ErrInvalidTimeout) {
				t.Errorf("ExecuteCommand() error = %v, want ErrInvalidTimeout", err)
			}
			if time.Since(start) > time.Second {
				t.Error("invalid timeout should fail immediately")
			}
		})
	}
}

func TestExecuteCommandEmpty(t *testing.T) {
	_, err := ExecuteCommand(context.Background(), "   ", Options{Timeout: time.Second})
	if !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("ExecuteCommand() error = %v, want ErrEmptyCommand", err)
	}
}

func TestExecuteCommandCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := ExecuteCommand(ctx, "echo hello", Options{Timeout: 5 * time.Second, SuppressErrorLog: true})
	if err == nil {
		t.Error("ExecuteCommand() with canceled context should fail")
	}
}

func TestRunCommandWithOutput(t *testing.T) {
	// "go version" works cross-platform
	out, err := RunCommandWithOutput(context.Background(), "go", []string{"version"}, Options{Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("RunCommandWithOutput() error = %v, want nil", err)
	}
	if !strings.Contains(out, "go version") {
		t.Errorf("RunCommandWithOutput() output = %q, want it to contain 'go version'", out)
	}
}

func TestRunCommandWithOutputInvalidCommand(t *testing.T) {
	_, err := RunCommandWithOutput(context.Background(), "nonexistent-command-xyz-123", nil, Options{Timeout: 5 * time.Second, SuppressErrorLog: true})
	if err == nil {
		t.Fatal("RunCommandWithOutput() with invalid command should fail")
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		t.Errorf("a command that never started should not be a *CommandError, got %v", err)
	}
}

func TestRunCommandWithOutputInvalidTimeout(t *testing.T) {
	_, err := RunCommandWithOutput(context.Background(), "go", []string{"version"}, Options{})
	if !errors.Is(err, ErrInvalidTimeout) {
		t.Errorf("RunCommandWithOutput() error = %v, want ErrInvalidTimeout", err)
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &CommandError{Command: "x", ExitCode: 1, Stderr: " boom \n", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("CommandError should unwrap to its inner error")
	}
	if got := err.Error(); got != "command failed with exit code 1: boom" {
		t.Errorf("Error() = %q", got)
	}
}
