// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// Info describes a running process.
type Info struct {
	PID  int32  `json:"pid"`
	Name string `json:"name"`
	Exe  string `json:"exe,omitempty"`
}

// FindByName returns the running processes whose executable name matches name,
// ignoring case and a trailing ".exe". name may be a full path, in which case
// only its base name is compared. Processes that exit or cannot be inspected
// while the table is scanned are skipped.
func FindByName(ctx context.Context, name string) ([]Info, error) {
	want := normalizeName(filepath.Base(name))
	if want == "" || want == "." {
		return nil, fmt.Errorf("empty process name")
	}

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	var found []Info
	for _, p := range procs {
		procName, err := p.NameWithContext(ctx)
		if err != nil || normalizeName(procName) != want {
			continue
		}
		info := Info{PID: p.Pid, Name: procName}
		if exe, err := p.ExeWithContext(ctx); err == nil {
			info.Exe = exe
		}
		found = append(found, info)
	}
	return found, nil
}

func normalizeName(name string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".exe")
}
