// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package shellutil

import (
	"runtime"
	"testing"
)

func TestDefaultShell(t *testing.T) {
	want := ShellSh
	if runtime.GOOS == osWindows {
		want = ShellCmd
	}
	if got := DefaultShell(); got != want {
		t.Errorf("DefaultShell() = %q, want %q", got, want)
	}
}

func TestQuoteArg(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{
			name: "flag only safe characters",
			arg:  "-ActiveWindow",
			want: "-ActiveWindow",
		},
		{
			name: "windows path",
			arg:  `C:\shots\a.png`,
			want: `C:\shots\a.png`,
		},
		{
			name: "key value",
			arg:  "-task=upload",
			want: "-task=upload",
		},
		{
			name: "url",
			arg:  "https://getsharex.com/docs",
			want: "https://getsharex.com/docs",
		},
		{
			name: "space",
			arg:  "my file.png",
			want: `"my file.png"`,
		},
		{
			name: "embedded quote",
			arg:  `say "hi"`,
			want: `"say \"hi\""`,
		},
		{
			name: "shell metacharacter",
			arg:  "a&b",
			want: `"a&b"`,
		},
		{
			name: "non ascii",
			arg:  "écran",
			want: `"écran"`,
		},
		{
			name: "empty",
			arg:  "",
			want: `""`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuoteArg(tt.arg); got != tt.want {
				t.Errorf("QuoteArg(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestQuoteArgs(t *testing.T) {
	got := QuoteArgs([]string{"-a", "b c"})
	if len(got) != 2 || got[0] != "-a" || got[1] != `"b c"` {
		t.Errorf("QuoteArgs() = %q", got)
	}

	if got := QuoteArgs(nil); len(got) != 0 {
		t.Errorf("QuoteArgs(nil) = %q, want empty", got)
	}
}

func TestBuildCommandLine(t *testing.T) {
	tests := []struct {
		name string
		exe  string
		args []string
		want string
	}{
		{
			name: "single flag",
			exe:  `C:\Tools\ShareX.exe`,
			args: []string{"-ActiveWindow"},
			want: `"C:\Tools\ShareX.exe" -ActiveWindow`,
		},
		{
			name: "no arguments",
			exe:  `C:\Program Files\ShareX\ShareX.exe`,
			args: nil,
			want: `"C:\Program Files\ShareX\ShareX.exe"`,
		},
		{
			name: "mixed arguments",
			exe:  `C:\Tools\ShareX.exe`,
			args: []string{"-ImageEditor", `C:\shots\my shot.png`},
			want: `"C:\Tools\ShareX.exe" -ImageEditor "C:\shots\my shot.png"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildCommandLine(tt.exe, tt.args); got != tt.want {
				t.Errorf("BuildCommandLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
