// Package shellutil builds shell command lines from an executable path and an
// argument list.
//
// Command lines produced here are handed to a shell (cmd.exe on Windows, a POSIX
// interpreter elsewhere) as a single string, so every piece must survive the
// shell's own parsing. The executable path is always double-quoted because install
// paths such as C:\Program Files\ShareX\ShareX.exe contain spaces. Arguments are
// quoted only when they contain characters outside a conservative safe set.
//
// # Key Features
//
//   - Shell identifier constants (ShellCmd, ShellSh, ShellPowerShell)
//   - OS-specific default shell (cmd on Windows, sh elsewhere)
//   - Minimal argument quoting with backslash-escaped embedded quotes
//   - Single-string command line assembly
//
// # Quoting Rules
//
// An argument made only of letters, digits and the characters _ - . = / : \ is
// passed through untouched:
//
//	shellutil.QuoteArg("-ActiveWindow")   // -ActiveWindow
//	shellutil.QuoteArg(`C:\shots\a.png`)  // C:\shots\a.png
//
// Anything else is wrapped in double quotes, with embedded quotes escaped:
//
//	shellutil.QuoteArg("my file.png")     // "my file.png"
//	shellutil.QuoteArg(`say "hi"`)        // "say \"hi\""
//
// # Example
//
//	line := shellutil.BuildCommandLine(`C:\Tools\ShareX.exe`, []string{"-ActiveWindow"})
//	// "C:\Tools\ShareX.exe" -ActiveWindow
package shellutil
