// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	pkgbrowser "github.com/pkg/browser"

	"github.com/jongio/sharex-core/logutil"
)

// ErrInvalidURL indicates a URL that is not an absolute http or https URL.
var ErrInvalidURL = errors.New("invalid URL: must be an absolute http:// or https:// URL")

func init() {
	// pkg/browser forwards the launcher's output to os.Stdout by default.
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
}

// openURL is replaced in tests.
var openURL = pkgbrowser.OpenURL

// Target represents the browser target for launching URLs.
type Target string

const (
	// TargetDefault uses the system default browser
	TargetDefault Target = "default"
	// TargetSystem uses the system default browser (alias for TargetDefault)
	TargetSystem Target = "system"
	// TargetNone disables browser launching
	TargetNone Target = "none"
)

// ValidTargets returns all valid browser target values.
func ValidTargets() []Target {
	return []Target{TargetDefault, TargetSystem, TargetNone}
}

// IsValid checks if a target string is valid.
func IsValid(target string) bool {
	t := Target(target)
	for _, valid := range ValidTargets() {
		if t == valid {
			return true
		}
	}
	return false
}

// ResolveTarget converts "default" to "system" and respects "none".
func ResolveTarget(target Target) Target {
	if target == TargetNone {
		return TargetNone
	}
	return TargetSystem
}

// LaunchOptions contains options for launching a browser.
type LaunchOptions struct {
	// URL to open
	URL string
	// Target browser to use
	Target Target
}

// ValidateURL checks that raw is an absolute http or https URL with a host.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	scheme := strings.ToLower(u.Scheme)
	if (scheme != "http" && scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return nil
}

// Launch opens the URL in the browser selected by the target. It waits for the
// platform launcher (cmd /c start, open or xdg-open) to hand the URL off.
func Launch(opts LaunchOptions) error {
	if err := ValidateURL(opts.URL); err != nil {
		return err
	}

	if ResolveTarget(opts.Target) == TargetNone {
		logutil.Debug("browser launch disabled", "url", opts.URL)
		return nil
	}

	logutil.Info("opening browser", "url", opts.URL, "target", GetTargetDisplayName(opts.Target))
	if err := openURL(opts.URL); err != nil {
		return fmt.Errorf("could not open browser: %w", err)
	}
	return nil
}

// GetTargetDisplayName returns a human-readable name for the browser target.
func GetTargetDisplayName(target Target) string {
	if ResolveTarget(target) == TargetNone {
		return "none"
	}
	return "default browser"
}

// FormatValidTargets returns a comma-separated list of valid targets.
func FormatValidTargets() string {
	targets := ValidTargets()
	strs := make([]string, len(targets))
	for i, t := range targets {
		strs[i] = string(t)
	}
	return strings.Join(strs, ", ")
}
