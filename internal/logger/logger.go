// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout
// go-safe-share.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain operation-scoped
// loggers via FromContext or FromRequest.
//
// Key material, nonces and plaintext are never passed to a logger.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultClientLogFile is the file name used by NewClientLogger when no
// explicit path is configured. It is created next to the executable.
const DefaultClientLogFile = "safeshare.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func configureGlobals(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)

	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewLogger constructs a JSON *Logger writing to os.Stdout for the given role
// label (e.g. "blob-server").
//
// The logger is configured with:
//   - global log level Debug;
//   - a "role" field set to role;
//   - a timestamp on every entry;
//   - a "func" caller field with the fully-qualified function name.
func NewLogger(role string) *Logger {
	configureGlobals("")
	return newLogger(os.Stdout, role)
}

// NewClientLogger constructs a *Logger for the command-line client. Entries
// go to logPath so they do not interleave with command output; an empty
// logPath selects DefaultClientLogFile next to the executable. level is a
// zerolog level name, empty means debug.
//
// If the file cannot be opened the logger falls back to os.Stderr.
func NewClientLogger(role, logPath, level string) *Logger {
	configureGlobals(level)

	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), DefaultClientLogFile)
	}

	var out io.Writer = os.Stderr
	if logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		out = logFile
	}

	return newLogger(out, role)
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's
// WithContext and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
