package version

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/jongio/sharex-core/cliout"
)

func TestNew_Defaults(t *testing.T) {
	info := New("sharex")
	if info.Version != "0.0.0-dev" {
		t.Errorf("expected Version '0.0.0-dev', got %q", info.Version)
	}
	if info.BuildDate != "unknown" {
		t.Errorf("expected BuildDate 'unknown', got %q", info.BuildDate)
	}
	if info.GitCommit != "unknown" {
		t.Errorf("expected GitCommit 'unknown', got %q", info.GitCommit)
	}
	if info.Name != "sharex" {
		t.Errorf("expected Name 'sharex', got %q", info.Name)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("unexpected Platform %q", info.Platform)
	}
}

func TestNew_LinkTimeValues(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "1.4.0"
	if got := New("sharex").Version; got != "1.4.0" {
		t.Errorf("expected Version '1.4.0', got %q", got)
	}
}

func TestInfo_String(t *testing.T) {
	info := &Info{
		Version:   "1.2.3",
		BuildDate: "2026-01-01",
		GitCommit: "abc123",
		Name:      "sharex",
	}
	expected := "sharex version 1.2.3 (commit: abc123, built: 2026-01-01)"
	if got := info.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

// runCommand executes the version command with args and returns its output.
func runCommand(t *testing.T, format string, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	prev := cliout.SetOutput(&buf)
	t.Cleanup(func() {
		cliout.SetOutput(prev)
		_ = cliout.SetFormat("default")
	})
	if err := cliout.SetFormat(format); err != nil {
		t.Fatal(err)
	}

	cmd := NewCommand(New("sharex"))
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestNewCommand_HumanReadable(t *testing.T) {
	output := runCommand(t, "default")
	for _, want := range []string{"sharex version", "Version", "Build Date", "Git Commit", "Platform"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestNewCommand_JSON(t *testing.T) {
	output := runCommand(t, "json")

	var parsed Info
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("expected valid JSON, got error: %v\noutput: %s", err, output)
	}
	if parsed.Name != "sharex" {
		t.Errorf("expected name 'sharex', got %q", parsed.Name)
	}
	if parsed.Version != "0.0.0-dev" {
		t.Errorf("expected version '0.0.0-dev', got %q", parsed.Version)
	}
}

func TestNewCommand_Quiet(t *testing.T) {
	output := runCommand(t, "default", "--quiet")
	if trimmed := strings.TrimSpace(output); trimmed != "0.0.0-dev" {
		t.Errorf("expected '0.0.0-dev', got %q", trimmed)
	}
}
