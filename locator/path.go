// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package locator

import (
	"context"
	"strings"

	"github.com/jongio/sharex-core/cmdutil"
	"github.com/jongio/sharex-core/pathutil"
)

// FromPath searches the PATH. On Windows it runs `where <exe>` and accepts the
// first output line that names the executable and exists; elsewhere it falls
// back to exec.LookPath.
func (l *Locator) FromPath(ctx context.Context) (string, bool) {
	log := l.logger("path")

	var output string
	if l.goos == "windows" {
		out, err := l.run(ctx, "where", []string{l.target.Executable}, cmdutil.DefaultTimeout)
		if err != nil {
			log.WithError(err).Debug("where lookup failed")
			return "", false
		}
		output = out
	} else {
		output = l.lookPath(l.target.Executable)
	}

	for _, line := range splitLines(output) {
		candidate := pathutil.SanitizePath(line)
		if l.Accept(candidate) {
			log.Debug("found executable on PATH", "path", candidate)
			return candidate, true
		}
	}

	log.Debug("executable not on PATH")
	return "", false
}

// splitLines splits tool output into trimmed, non-empty lines.
func splitLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
