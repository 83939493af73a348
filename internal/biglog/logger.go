// Package biglog is the structured logging seam the library's dispatch
// layers use to report which algorithm they chose. It is never on the
// hot path of correctness — only Debug-level diagnostics flow through
// it — so the default Logger is a no-op and callers opt in explicitly.
package biglog

import (
	"fmt"
	"io"
	"log"

	"github.com/rs/zerolog"
)

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// String builds a string-valued Field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int builds an int-valued Field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 builds a uint64-valued Field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 builds a float64-valued Field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err builds an error-valued Field under the fixed key "error".
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err}
}

// Logger is the structured logging surface the library calls against.
// Info is unused by the library itself (no value type should narrate at
// that level) but is part of the interface so embedding applications can
// share one Logger implementation across their own code and this one.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// ZerologAdapter backs Logger with github.com/rs/zerolog.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: zl}
}

// NewLogger builds a ZerologAdapter writing JSON to w, tagging every
// entry with a "component" field.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// NewDefaultLogger builds a ZerologAdapter writing to a discarded
// sink — the library's silent-by-default Logger.
func NewDefaultLogger() *ZerologAdapter {
	return NewZerologAdapter(zerolog.New(io.Discard))
}

func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.logger.Info(), fields).Msg(msg)
}

func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	e := a.logger.Error().Err(err)
	applyFields(e, fields).Msg(msg)
}

func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.logger.Debug(), fields).Msg(msg)
}

func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.logger.Info().Msg(fmt.Sprintf(format, args...))
}

func (a *ZerologAdapter) Println(args ...any) {
	a.logger.Info().Msg(fmt.Sprintln(args...))
}

// StdLoggerAdapter backs Logger with the standard library's log.Logger,
// for hosts that don't want a zerolog dependency pulled into their own
// log stream.
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps an existing *log.Logger.
func NewStdLoggerAdapter(l *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: l}
}

func formatFields(fields []Field) string {
	s := ""
	for _, f := range fields {
		s += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	return s
}

func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.logger.Printf("[INFO] %s%s", msg, formatFields(fields))
}

func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	a.logger.Printf("[ERROR] %s: %v%s", msg, err, formatFields(fields))
}

func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.logger.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

func (a *StdLoggerAdapter) Printf(format string, args ...any) {
	a.logger.Printf(format, args...)
}

func (a *StdLoggerAdapter) Println(args ...any) {
	a.logger.Println(args...)
}
