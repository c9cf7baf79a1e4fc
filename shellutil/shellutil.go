// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package shellutil

import (
	"runtime"
	"strings"
)

// Shell identifiers used for command execution.
const (
	// ShellCmd is the Windows Command Prompt.
	ShellCmd = "cmd"

	// ShellPowerShell is Windows PowerShell (5.1 and earlier).
	ShellPowerShell = "powershell"

	// ShellSh is the POSIX shell.
	ShellSh = "sh"
)

// Operating system identifiers.
const (
	// osWindows identifies the Windows operating system.
	osWindows = "windows"
)

// DefaultShell returns the shell used to run command lines on the current OS.
func DefaultShell() string {
	if runtime.GOOS == osWindows {
		return ShellCmd
	}
	return ShellSh
}

// isSafeRune reports whether r can appear in an argument without quoting.
func isSafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune(`_-.=/:\`, r)
}

// QuoteArg quotes a single argument for a shell command line.
// Arguments made only of safe characters are returned unchanged. Others are
// wrapped in double quotes with embedded double quotes backslash-escaped.
// An empty argument becomes "" so it is not dropped by the shell.
func QuoteArg(arg string) string {
	if arg != "" && strings.IndexFunc(arg, func(r rune) bool { return !isSafeRune(r) }) == -1 {
		return arg
	}
	return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
}

// QuoteArgs quotes each argument with QuoteArg.
func QuoteArgs(args []string) []string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = QuoteArg(arg)
	}
	return quoted
}

// BuildCommandLine returns the double-quoted executable followed by the quoted
// arguments, separated by single spaces.
func BuildCommandLine(executable string, args []string) string {
	line := `"` + executable + `" ` + strings.Join(QuoteArgs(args), " ")
	return strings.TrimSpace(line)
}
