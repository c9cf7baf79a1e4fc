// Package pathutil provides path sanitizing, environment expansion and existence
// checks used when locating an executable on disk.
//
// Paths entered by users or reported by Windows tools arrive in many shapes: wrapped
// in double quotes, with forward or backward slashes, or with %NAME% placeholders
// such as %ProgramFiles% or %LocalAppData%. This package turns them into canonical
// native paths that can be checked with a single stat call.
//
// # Key Features
//
//   - Expand Windows-style %NAME% environment placeholders on every platform
//   - Strip surrounding quotes and normalize separators to the native separator
//   - Collapse redundant separators and . / .. segments
//   - Existence checks that never fail loudly (any stat error means "not found")
//   - Case-insensitive executable file name matching
//
// # Unset Variables
//
// ExpandEnv leaves placeholders whose variable is unset untouched:
//
//	pathutil.ExpandEnv(`%NOPE%\ShareX\ShareX.exe`) // `%NOPE%\ShareX\ShareX.exe`
//
// The unexpanded token keeps the path visibly wrong, so the existence check that
// follows fails instead of silently resolving somewhere unexpected.
//
// # Example: Validating a User Supplied Path
//
//	candidate := pathutil.SanitizePath(pathutil.ExpandEnv(hint))
//	if pathutil.HasExecutableName(candidate, "ShareX.exe") && pathutil.FileExists(candidate) {
//	    fmt.Printf("Using %s\n", candidate)
//	} else {
//	    fmt.Println(pathutil.GetInstallSuggestion("sharex"))
//	}
package pathutil
