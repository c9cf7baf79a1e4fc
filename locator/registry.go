// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package locator

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/jongio/sharex-core/pathutil"
	"github.com/jongio/sharex-core/shellutil"
)

// uninstallKeys are the 64-bit and WOW6432Node uninstall hives.
var uninstallKeys = []string{
	`HKLM:\SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall\*`,
	`HKLM:\SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall\*`,
}

// iconIndexSuffix matches the ",<index>" some installers append to DisplayIcon.
var iconIndexSuffix = regexp.MustCompile(`"?\s*,\s*-?\d+\s*$`)

// FromRegistry reads the first uninstall entry whose DisplayName matches the
// target pattern and derives the executable from InstallLocation or DisplayIcon.
// It only runs on Windows.
func (l *Locator) FromRegistry(ctx context.Context) (string, bool) {
	log := l.logger("registry")

	if l.goos != "windows" {
		log.Debug("registry lookup skipped", "os", l.goos)
		return "", false
	}

	encoded, err := encodePowerShell(registryScript(l.target))
	if err != nil {
		log.WithError(err).Debug("failed to encode registry script")
		return "", false
	}

	args := []string{"-NoProfile", "-NonInteractive", "-EncodedCommand", encoded}
	output, err := l.run(ctx, shellutil.ShellPowerShell, args, l.registryTimeout)
	if err != nil {
		log.WithError(err).Debug("registry query failed")
		return "", false
	}

	lines := splitLines(output)
	if len(lines) == 0 {
		log.Debug("no matching uninstall entry")
		return "", false
	}

	candidate := l.registryCandidate(lines[0])
	if candidate == "" || !l.exists(candidate) {
		log.Debug("registry candidate does not exist", "path", candidate)
		return "", false
	}

	log.Debug("found executable in registry", "path", candidate)
	return candidate, true
}

// registryCandidate turns a registry value into an executable path. Values that
// do not end with the executable name are treated as directories.
func (l *Locator) registryCandidate(value string) string {
	value = iconIndexSuffix.ReplaceAllString(strings.TrimSpace(value), "")
	candidate := pathutil.SanitizePath(value)
	if candidate == "" {
		return ""
	}
	if !pathutil.HasExecutableName(candidate, l.target.Executable) {
		candidate = filepath.Join(candidate, l.target.Executable)
	}
	return candidate
}

// registryScript builds the PowerShell query for target.
func registryScript(target Target) string {
	keys := make([]string, len(uninstallKeys))
	for i, key := range uninstallKeys {
		keys[i] = psQuote(key)
	}

	return fmt.Sprintf(`$keys = @(%s)
$app = Get-ItemProperty -Path $keys -ErrorAction SilentlyContinue | Where-Object { $_.DisplayName -like %s } | Select-Object -First 1
$p = $null
if ($app) {
  if ($app.InstallLocation) { $p = Join-Path $app.InstallLocation %s }
  elseif ($app.DisplayIcon) { $p = $app.DisplayIcon -replace '^"|"$','' }
}
if ($p) { Write-Output $p }
`, strings.Join(keys, ","), psQuote(target.DisplayNamePattern), psQuote(target.Executable))
}

// psQuote returns s as a single-quoted PowerShell string literal.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// encodePowerShell encodes script for powershell -EncodedCommand, which expects
// base64 of the UTF-16LE text.
func encodePowerShell(script string) (string, error) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	utf16, err := encoder.String(script)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString([]byte(utf16)), nil
}
