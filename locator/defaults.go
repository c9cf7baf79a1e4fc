// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package locator

import (
	"context"
	"path/filepath"

	"github.com/jongio/sharex-core/pathutil"
)

// Candidates returns the expanded, sanitized default locations followed by the
// extra search directories joined with the executable name.
func (l *Locator) Candidates() []string {
	candidates := make([]string, 0, len(l.target.DefaultLocations)+len(l.searchDirs))
	for _, location := range l.target.DefaultLocations {
		if c := pathutil.SanitizePath(pathutil.ExpandEnv(location)); c != "" {
			candidates = append(candidates, c)
		}
	}
	for _, dir := range l.searchDirs {
		if d := pathutil.SanitizePath(pathutil.ExpandEnv(dir)); d != "" {
			candidates = append(candidates, filepath.Join(d, l.target.Executable))
		}
	}
	return candidates
}

// FromDefaults returns the first candidate from Candidates that exists.
func (l *Locator) FromDefaults(ctx context.Context) (string, bool) {
	log := l.logger("defaults")

	for _, candidate := range l.Candidates() {
		if ctx.Err() != nil {
			log.WithError(ctx.Err()).Debug("default location scan stopped")
			return "", false
		}
		if l.Exists(candidate) {
			log.Debug("found executable in default location", "path", candidate)
			return candidate, true
		}
	}

	log.Debug("executable not in any default location")
	return "", false
}
