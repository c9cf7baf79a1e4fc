// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import "log/slog"

// ComponentLogger is a logger scoped to one component, such as "locator" or
// "sharex", optionally narrowed to the program being looked up and the
// strategy or operation in progress. Each With method returns a copy; the
// receiver is never modified.
type ComponentLogger struct {
	slogger *slog.Logger
}

// NewLogger creates a logger whose records carry component=<component>.
// It captures the global logger at call time, so create it after SetupLogger.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{slogger: Logger().With("component", component)}
}

func (l *ComponentLogger) with(args ...any) *ComponentLogger {
	return &ComponentLogger{slogger: l.slogger.With(args...)}
}

// WithTarget names the program being resolved or run, e.g. "ShareX".
func (l *ComponentLogger) WithTarget(name string) *ComponentLogger {
	return l.with("target", name)
}

// WithStrategy adds the discovery strategy: preference, path, registry or
// defaults.
func (l *ComponentLogger) WithStrategy(name string) *ComponentLogger {
	return l.with("strategy", name)
}

// WithOperation adds the operation, e.g. resolve or invoke.
func (l *ComponentLogger) WithOperation(name string) *ComponentLogger {
	return l.with("operation", name)
}

// WithFields adds alternating key-value pairs.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	return l.with(fields...)
}

// WithError adds err under "error". A nil err returns l unchanged.
func (l *ComponentLogger) WithError(err error) *ComponentLogger {
	if err == nil {
		return l
	}
	return l.with("error", err)
}

// Debug logs at debug level when debug logging is on.
func (l *ComponentLogger) Debug(msg string, args ...any) {
	if IsDebugEnabled() {
		l.slogger.Debug(msg, args...)
	}
}

func (l *ComponentLogger) Info(msg string, args ...any) {
	l.slogger.Info(msg, args...)
}

func (l *ComponentLogger) Warn(msg string, args ...any) {
	l.slogger.Warn(msg, args...)
}
