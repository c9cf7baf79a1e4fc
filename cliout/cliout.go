package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols for modern CLI output
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolArrow   = "→"
	SymbolDot     = "•"
)

// ASCII fallback symbols for terminals that don't support Unicode
const (
	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
	ASCIIArrow   = "->"
	ASCIIDot     = "*"
)

var (
	// mu protects the settings below.
	mu sync.RWMutex

	globalFormat           = FormatDefault
	noColor                = !stdoutIsTerminal() || os.Getenv("NO_COLOR") != ""
	out          io.Writer = os.Stdout
)

// stdoutIsTerminal reports whether stdout is attached to a terminal.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) // #nosec G115 -- file descriptors fit in int
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// SetOutput redirects all output to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
}

// color returns code, or "" when color output is disabled.
func color(code string) string {
	mu.RLock()
	defer mu.RUnlock()
	if noColor {
		return ""
	}
	return code
}

// supportsUnicode detects if the terminal supports Unicode/emojis
var supportsUnicode = detectUnicodeSupport()

// detectUnicodeSupport checks if the terminal can display Unicode properly
func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	// Windows Terminal, VS Code, ConEmu and PowerShell hosts render Unicode;
	// the legacy console does not.
	switch {
	case os.Getenv("WT_SESSION") != "",
		os.Getenv("TERM_PROGRAM") == "vscode",
		os.Getenv("ConEmuPID") != "",
		os.Getenv("PSModulePath") != "",
		os.Getenv("TERM") != "":
		return true
	}
	return false
}

// getIcon returns the appropriate icon based on Unicode support
func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()
	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// PrintJSON prints data as indented JSON.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(writer())
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
// For JSON format, marshals the data object.
func Print(data any, formatter func()) error {
	if IsJSON() {
		return PrintJSON(data)
	}
	formatter()
	return nil
}

// CommandHeader prints a minimal command header: the command name with a
// short divider. Nothing is printed in JSON mode.
func CommandHeader(command string) {
	if IsJSON() {
		return
	}
	w := writer()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%ssharex %s%s\n", color(Bold), command, color(Reset))
	fmt.Fprintln(w, strings.Repeat("─", 30))
	fmt.Fprintln(w)
}

// Success prints a success message with green checkmark
func Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(writer(), "%s%s%s %s\n", color(BrightGreen), getIcon(SymbolCheck, ASCIICheck), color(Reset), msg)
}

// Error prints an error message with red X
func Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(writer(), "%s%s%s %s\n", color(BrightRed), getIcon(SymbolCross, ASCIICross), color(Reset), msg)
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(writer(), "%s%s%s  %s\n", color(BrightYellow), getIcon(SymbolWarning, ASCIIWarning), color(Reset), msg)
}

// Info prints an info message with blue info icon
func Info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(writer(), "%s%s%s  %s\n", color(BrightBlue), getIcon(SymbolInfo, ASCIIInfo), color(Reset), msg)
}

// Bullet prints a bulleted list item
func Bullet(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(writer(), "  %s %s\n", getIcon(SymbolDot, ASCIIDot), msg)
}

// Newline prints a blank line
func Newline() {
	fmt.Fprintln(writer())
}

// Hint prints compact hints on a single line with bullet separators.
// Example: Hint("Set --path", "Run sharex docs --website")
func Hint(hints ...string) {
	if len(hints) == 0 {
		return
	}
	fmt.Fprintf(writer(), "%s%s%s\n", color(Dim), strings.Join(hints, " • "), color(Reset))
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...any) {
	fmt.Fprintf(writer(), format+"\n", args...)
}

// Label prints a label and value pair
func Label(label, value string) {
	fmt.Fprintf(writer(), "   %s%-12s%s %s\n", color(Dim), label+":", color(Reset), value)
}

// URL returns a URL styled in bright blue
func URL(url string) string {
	return color(BrightBlue) + url + color(Reset)
}

// Status returns a status badge with appropriate color
func Status(status string) string {
	var c string
	switch strings.ToLower(status) {
	case "success", "ok", "running", "found", "triggered":
		c = BrightGreen
	case "warning", "pending", "stopped":
		c = BrightYellow
	case "error", "failed", "not found":
		c = BrightRed
	case "info", "unknown":
		c = BrightBlue
	default:
		return status
	}
	return color(c) + status + color(Reset)
}
