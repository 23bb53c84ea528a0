// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used across contactsync.
//
// Logger embeds zerolog.Logger so the whole zerolog API is available on
// *Logger. Components receive a *Logger at construction time; request and
// sync-cycle scoped loggers travel in the context and are obtained with
// FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs the daemon logger for the given role label
// (e.g. "daemon", "ctl"). Entries are JSON on os.Stdout with a "role"
// field, a timestamp and a "func" caller field holding the function name.
func NewLogger(role string) *Logger {
	return NewLoggerWithWriter(role, os.Stdout)
}

// NewLoggerWithWriter is NewLogger writing to w.
func NewLoggerWithWriter(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewConsoleLogger returns a human readable logger on os.Stderr for the
// control CLI, limited to warnings and errors unless verbose is set.
func NewConsoleLogger(role string, verbose bool) *Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithConnection returns a child logger carrying the connection_id field.
func (l *Logger) WithConnection(connectionID string) *Logger {
	return &Logger{l.With().Str("connection_id", connectionID).Logger()}
}

// ContextWithConnection returns a copy of ctx whose logger carries the
// connection_id field. The logger already attached to ctx is extended; l is
// used when ctx has none.
func (l *Logger) ContextWithConnection(ctx context.Context, connectionID string) context.Context {
	base := zerolog.Ctx(ctx)
	if base == zerolog.DefaultContextLogger || base.GetLevel() == zerolog.Disabled {
		base = &l.Logger
	}
	return base.With().Str("connection_id", connectionID).Logger().WithContext(ctx)
}

// FromRequest returns the logger attached to the request's context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx. When none is attached,
// zerolog's default context logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
