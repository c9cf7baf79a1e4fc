// Package testutil provides testing helpers shared by the sharex-core packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Creating temporary directories with automatic cleanup (TempDir)
//   - Planting a stand-in ShareX executable on disk (WriteFakeExecutable,
//     WriteFakeFile)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestResolveFromPreference(t *testing.T) {
//	    dir := testutil.TempDir(t)
//	    exe := testutil.WriteFakeFile(t, dir, "ShareX.exe")
//
//	    got := sharex.ResolvePath(context.Background(), exe)
//	    if got != exe {
//	        t.Errorf("ResolvePath() = %q, want %q", got, exe)
//	    }
//	}
package testutil
