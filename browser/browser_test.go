// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"errors"
	"testing"
)

// stubOpen replaces the launcher for the duration of the test and records the
// URLs it receives.
func stubOpen(t *testing.T, err error) *[]string {
	t.Helper()
	var opened []string
	orig := openURL
	openURL = func(u string) error {
		opened = append(opened, u)
		return err
	}
	t.Cleanup(func() { openURL = orig })
	return &opened
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"default", true},
		{"system", true},
		{"none", true},
		{"chrome", false},
		{"", false},
		{"DEFAULT", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValid(tt.input); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		input Target
		want  Target
	}{
		{TargetDefault, TargetSystem},
		{TargetSystem, TargetSystem},
		{TargetNone, TargetNone},
		{"", TargetSystem},
	}

	for _, tt := range tests {
		if got := ResolveTarget(tt.input); got != tt.want {
			t.Errorf("ResolveTarget(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://getsharex.com/", false},
		{"https://getsharex.com/docs/command-line-arguments", false},
		{"HTTP://example.com", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"getsharex.com", true},
		{"https://", true},
		{"", true},
		{"http://[::1", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidURL) {
				t.Errorf("expected ErrInvalidURL, got %v", err)
			}
		})
	}
}

func TestLaunch(t *testing.T) {
	t.Run("opens valid URL", func(t *testing.T) {
		opened := stubOpen(t, nil)
		if err := Launch(LaunchOptions{URL: "https://getsharex.com/", Target: TargetDefault}); err != nil {
			t.Fatalf("Launch() error = %v", err)
		}
		if len(*opened) != 1 || (*opened)[0] != "https://getsharex.com/" {
			t.Errorf("opened = %v", *opened)
		}
	})

	t.Run("none target does not open", func(t *testing.T) {
		opened := stubOpen(t, nil)
		if err := Launch(LaunchOptions{URL: "https://getsharex.com/", Target: TargetNone}); err != nil {
			t.Fatalf("Launch() error = %v", err)
		}
		if len(*opened) != 0 {
			t.Errorf("browser opened with TargetNone: %v", *opened)
		}
	})

	t.Run("invalid URL is rejected before launching", func(t *testing.T) {
		opened := stubOpen(t, nil)
		err := Launch(LaunchOptions{URL: "file:///C:/Windows", Target: TargetSystem})
		if !errors.Is(err, ErrInvalidURL) {
			t.Fatalf("expected ErrInvalidURL, got %v", err)
		}
		if len(*opened) != 0 {
			t.Errorf("browser opened for invalid URL: %v", *opened)
		}
	})

	t.Run("launcher failure is wrapped", func(t *testing.T) {
		launchErr := errors.New("xdg-open: not found")
		stubOpen(t, launchErr)
		err := Launch(LaunchOptions{URL: "https://getsharex.com/"})
		if !errors.Is(err, launchErr) {
			t.Fatalf("expected wrapped launcher error, got %v", err)
		}
	})
}

func TestGetTargetDisplayName(t *testing.T) {
	if got := GetTargetDisplayName(TargetDefault); got != "default browser" {
		t.Errorf("GetTargetDisplayName(default) = %q", got)
	}
	if got := GetTargetDisplayName(TargetNone); got != "none" {
		t.Errorf("GetTargetDisplayName(none) = %q", got)
	}
}

func TestFormatValidTargets(t *testing.T) {
	if got := FormatValidTargets(); got != "default, system, none" {
		t.Errorf("FormatValidTargets() = %q", got)
	}
}
