// Package cliout provides structured output formatting for the sharex CLI with
// cross-platform terminal support and two output formats.
//
// # Basic Usage
//
//	cliout.Success("Region capture triggered")
//	cliout.Error("Failed to resolve ShareX path: %s", err)
//	cliout.Label("Path", res.Path)
//
// # Output Formats
//
//   - default: human-readable text with colors and Unicode symbols
//   - json: structured JSON output for automation and scripting
//
// The Print function takes both the JSON payload and a formatter; only one of
// them is used depending on the format:
//
//	err := cliout.Print(res, func() {
//	    cliout.Label("Path", res.Path)
//	    cliout.Label("Method", res.MethodLabel)
//	})
//
// # Terminal Detection
//
// Color is disabled when stdout is not a terminal (checked with
// golang.org/x/term) or when NO_COLOR is set. ForceColor and NoColor override
// the detection.
//
// Unicode symbols fall back to ASCII on the legacy Windows console. Windows
// Terminal, VS Code, ConEmu, PowerShell hosts and any terminal setting TERM are
// assumed to render Unicode.
//
// # Redirecting Output
//
// All output goes to os.Stdout unless SetOutput installs another writer, which
// is how the CLI commands route output in tests.
package cliout
