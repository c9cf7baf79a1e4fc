// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// This package provides a simple, consistent logging interface for the sharex
// library and CLI. It wraps the standard library's slog package with convenience
// functions and environment-aware configuration. Text output is rendered by
// github.com/charmbracelet/log acting as the slog handler.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("processing item", "id", itemID)
//	logutil.Info("operation completed", "duration", elapsed)
//	logutil.Warn("registry query failed", "error", err)
//
//	// Or narrow the level, e.g. from a --log-level flag
//	logutil.SetLevel(logutil.ParseLevel("warn"))
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set SHAREX_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"operation completed","duration":"1.5s"}
//
// Otherwise, logs use a human-readable text format:
//
//	INFO operation completed duration=1.5s
package logutil
