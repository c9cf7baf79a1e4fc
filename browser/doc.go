// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package browser opens the ShareX website and command-line documentation in
// the user's web browser.
//
// Launching is delegated to github.com/pkg/browser, which uses cmd /c start on
// Windows, open on macOS and xdg-open on Linux. This package adds URL
// validation and a target switch on top.
//
// # URL Validation
//
// Only absolute http:// and https:// URLs with a host are accepted. Anything
// else, such as file:// or javascript: URLs, fails with ErrInvalidURL before a
// process is started.
//
// # Browser Targets
//
//   - TargetDefault: the system default browser (alias for TargetSystem)
//   - TargetSystem: the system default browser
//   - TargetNone: validate only, never launch
//
// # Example Usage
//
//	err := browser.Launch(browser.LaunchOptions{
//	    URL:    sharex.DocsURL,
//	    Target: browser.TargetDefault,
//	})
//	if err != nil {
//	    cliout.Warning("Open %s manually", sharex.DocsURL)
//	}
package browser
