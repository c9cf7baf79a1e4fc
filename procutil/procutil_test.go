// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"context"
	"os/exec"
	"runtime"
	"testing"
	"time"
)

func TestFindByName(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses the sleep binary")
	}

	cmd := exec.Command("sleep", "5")
	if err := cmd.Start(); err != nil {
		t.Fatalf("Failed to start test process: %v", err)
	}
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, name := range []string{"sleep", "SLEEP", "sleep.exe", "/usr/bin/sleep"} {
		procs, err := FindByName(ctx, name)
		if err != nil {
			t.Fatalf("FindByName(%q) error = %v", name, err)
		}
		found := false
		for _, p := range procs {
			if int(p.PID) == cmd.Process.Pid {
				found = true
			}
		}
		if !found {
			t.Errorf("FindByName(%q) did not include PID %d: %+v", name, cmd.Process.Pid, procs)
		}
	}
}

func TestFindByNameNoMatch(t *testing.T) {
	procs, err := FindByName(context.Background(), "definitely-not-a-real-process-4821.exe")
	if err != nil {
		t.Fatalf("FindByName() error = %v", err)
	}
	if len(procs) != 0 {
		t.Errorf("FindByName() = %+v for a made-up name, want none", procs)
	}
}

func TestFindByNameEmpty(t *testing.T) {
	if _, err := FindByName(context.Background(), ""); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"ShareX.exe":   "sharex",
		" ShareX.EXE ": "sharex",
		"sharex":       "sharex",
		"ShareX.exe.1": "sharex.exe.1",
	}
	for in, want := range tests {
		if got := normalizeName(in); got != want {
			t.Errorf("normalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}
