// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package sharex resolves the ShareX executable on a Windows host and runs it
// with command-line arguments.
//
// # Resolution
//
// A Resolver tries, in order:
//
//  1. the caller's path hint (a configured preference), after expanding
//     %NAME% environment references and normalizing the path;
//  2. the PATH, via `where ShareX.exe`;
//  3. the ShareX uninstall entry in the registry;
//  4. the well-known install directories under Program Files and Local AppData.
//
// The first candidate that ends with ShareX.exe and exists on disk wins. The
// result is a ResolvedPath that records which step produced it, with a short
// label and a longer description suitable for display:
//
//	res := sharex.Resolve(ctx, cfg.SharexPath)
//	if res.Source == sharex.SourceNone {
//	    return sharex.ErrNotFound
//	}
//	fmt.Printf("%s (%s)\n", res.Path, res.MethodLabel)
//
// Nothing is cached. Every call searches the system again so that installs,
// uninstalls and preference changes are picked up immediately.
//
// # Invocation
//
// Run resolves and then executes ShareX through the platform shell with each
// argument quoted as needed, failing after a timeout (15 seconds by default):
//
//	out, err := sharex.Run(ctx, []string{"-ActiveWindow"},
//	    sharex.WithPathHint(hint),
//	    sharex.WithTimeout(5*time.Second),
//	)
//	if errors.Is(err, sharex.ErrNotFound) {
//	    // ShareX is not installed and no valid hint was given
//	}
//
// The Actions catalog lists the capture and window commands ShareX accepts.
package sharex
