// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// envPlaceholder matches Windows-style %NAME% environment variable references.
var envPlaceholder = regexp.MustCompile(`%([^%]+)%`)

// ExpandEnv replaces every %NAME% token with the value of the NAME environment
// variable. Tokens whose variable is unset or empty are left as the literal %NAME%.
func ExpandEnv(input string) string {
	return envPlaceholder.ReplaceAllStringFunc(input, func(token string) string {
		name := token[1 : len(token)-1]
		if value, ok := os.LookupEnv(name); ok && value != "" {
			return value
		}
		return token
	})
}

// SanitizePath trims whitespace, strips one layer of surrounding double quotes,
// converts both slash styles to the native separator and cleans the result.
// Returns an empty string for empty input.
func SanitizePath(p string) string {
	trimmed := strings.TrimSpace(p)
	trimmed = strings.TrimPrefix(trimmed, `"`)
	trimmed = strings.TrimSuffix(trimmed, `"`)
	if trimmed == "" {
		return ""
	}

	native := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' {
			return filepath.Separator
		}
		return r
	}, trimmed)

	return filepath.Clean(native)
}

// FileExists reports whether a filesystem entry exists at path.
// Any stat error, including permission and I/O errors, is reported as false.
func FileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// HasExecutableName reports whether path ends with the executable file name,
// ignoring case.
func HasExecutableName(path, executable string) bool {
	if executable == "" {
		return false
	}
	return strings.HasSuffix(strings.ToLower(path), strings.ToLower(executable))
}

// FindToolInPath searches for a tool executable in the system PATH.
// Returns the full path to the executable if found, empty string otherwise.
func FindToolInPath(toolName string) string {
	// Add .exe extension on Windows if not present
	searchName := toolName
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(toolName), ".exe") {
		searchName = toolName + ".exe"
	}

	path, err := exec.LookPath(searchName)
	if err != nil {
		return ""
	}

	return path
}

// GetInstallSuggestion returns a suggestion for how to install a missing tool.
func GetInstallSuggestion(toolName string) string {
	suggestions := map[string]string{
		"sharex":     "Install ShareX from https://getsharex.com/ or set its executable path with --path or SHAREX_PATH",
		"powershell": "PowerShell ships with Windows; check that powershell.exe is on PATH",
	}

	if suggestion, ok := suggestions[strings.ToLower(toolName)]; ok {
		return suggestion
	}
	return fmt.Sprintf("Please install %s manually", toolName)
}
