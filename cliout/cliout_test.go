package cliout

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// capture routes output to a buffer for the duration of the test with color
// disabled and the default format.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := SetOutput(&buf)

	mu.Lock()
	prevColor, prevFormat := noColor, globalFormat
	noColor, globalFormat = true, FormatDefault
	mu.Unlock()

	t.Cleanup(func() {
		SetOutput(prev)
		mu.Lock()
		noColor, globalFormat = prevColor, prevFormat
		mu.Unlock()
	})
	return &buf
}

func TestSetFormat(t *testing.T) {
	capture(t)

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "default", want: FormatDefault},
		{input: "", want: FormatDefault},
		{input: "json", want: FormatJSON},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := SetFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error for invalid format")
				}
				if !strings.Contains(err.Error(), "invalid output format: yaml") {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetFormat(%q) failed: %v", tt.input, err)
			}
			if GetFormat() != tt.want {
				t.Errorf("GetFormat() = %v, want %v", GetFormat(), tt.want)
			}
			if IsJSON() != (tt.want == FormatJSON) {
				t.Errorf("IsJSON() = %v", IsJSON())
			}
		})
	}
}

func TestPrint(t *testing.T) {
	data := map[string]string{"source": "path"}

	t.Run("default uses formatter", func(t *testing.T) {
		buf := capture(t)
		called := false
		if err := Print(data, func() { called = true; Plain("text") }); err != nil {
			t.Fatal(err)
		}
		if !called {
			t.Error("formatter not called")
		}
		if buf.String() != "text\n" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("json marshals data", func(t *testing.T) {
		buf := capture(t)
		if err := SetFormat("json"); err != nil {
			t.Fatal(err)
		}
		if err := Print(data, func() { t.Error("formatter called in JSON mode") }); err != nil {
			t.Fatal(err)
		}

		var got map[string]string
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON %q: %v", buf.String(), err)
		}
		if got["source"] != "path" {
			t.Errorf("unexpected JSON: %v", got)
		}
	})
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name    string
		print   func()
		unicode string
		ascii   string
		text    string
	}{
		{name: "success", print: func() { Success("done %d", 1) }, unicode: SymbolCheck, ascii: ASCIICheck, text: "done 1"},
		{name: "error", print: func() { Error("failed: %s", "boom") }, unicode: SymbolCross, ascii: ASCIICross, text: "failed: boom"},
		{name: "warning", print: func() { Warning("careful") }, unicode: SymbolWarning, ascii: ASCIIWarning, text: "careful"},
		{name: "info", print: func() { Info("note") }, unicode: SymbolInfo, ascii: ASCIIInfo, text: "note"},
		{name: "bullet", print: func() { Bullet("item") }, unicode: SymbolDot, ascii: ASCIIDot, text: "item"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			tt.print()

			got := buf.String()
			if !strings.Contains(got, tt.text) {
				t.Errorf("output %q missing %q", got, tt.text)
			}
			if !strings.Contains(got, tt.unicode) && !strings.Contains(got, tt.ascii) {
				t.Errorf("output %q missing symbol", got)
			}
			if strings.Contains(got, "\033[") {
				t.Errorf("color codes written with color disabled: %q", got)
			}
		})
	}
}

func TestColor(t *testing.T) {
	capture(t)

	if got := Status("running"); got != "running" {
		t.Errorf("Status without color = %q", got)
	}

	ForceColor()
	if got := Status("running"); got != BrightGreen+"running"+Reset {
		t.Errorf("Status with color = %q", got)
	}
	if got := Status("not found"); got != BrightRed+"not found"+Reset {
		t.Errorf("Status(not found) = %q", got)
	}
	if got := Status("custom"); got != "custom" {
		t.Errorf("unknown status should be unstyled, got %q", got)
	}
	if got := URL("https://getsharex.com/"); got != BrightBlue+"https://getsharex.com/"+Reset {
		t.Errorf("URL() = %q", got)
	}

	NoColor()
	if got := URL("x"); got != "x" {
		t.Errorf("URL without color = %q", got)
	}
}

func TestCommandHeader(t *testing.T) {
	buf := capture(t)
	CommandHeader("path")
	if !strings.Contains(buf.String(), "sharex path") {
		t.Errorf("header missing command: %q", buf.String())
	}

	buf.Reset()
	if err := SetFormat("json"); err != nil {
		t.Fatal(err)
	}
	CommandHeader("path")
	if buf.Len() != 0 {
		t.Errorf("header printed in JSON mode: %q", buf.String())
	}
}

func TestLabelAndHint(t *testing.T) {
	buf := capture(t)

	Label("Path", `C:\Tools\ShareX.exe`)
	Hint("Set --path", "Install ShareX")
	Hint()
	Newline()

	want := "   Path:        C:\\Tools\\ShareX.exe\nSet --path • Install ShareX\n\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestGetIcon(t *testing.T) {
	orig := supportsUnicode
	t.Cleanup(func() { supportsUnicode = orig })

	supportsUnicode = true
	if got := getIcon(SymbolArrow, ASCIIArrow); got != SymbolArrow {
		t.Errorf("getIcon() = %q, want unicode", got)
	}
	supportsUnicode = false
	if got := getIcon(SymbolArrow, ASCIIArrow); got != ASCIIArrow {
		t.Errorf("getIcon() = %q, want ascii", got)
	}
}
