// Package rlog is the assembler's leveled logger. Grounded on
// yoshiomiyamae-gones/pkg/logger (global logger instance, LogLevel enum,
// Initialize entry point, timestamped per-subsystem log lines), retargeted
// from emulator subsystems (CPU/PPU/APU/mapper) to assembler phases
// (scan, codegen, container).
package rlog

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Level selects how much the logger emits.
type Level int

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

// Logger writes leveled, timestamped lines to a single writer.
type Logger struct {
	level  Level
	writer io.Writer
}

var global *Logger

// Initialize sets up the package-level logger that the package-level
// Errorf/Warnf/.../Containerf functions write to. filename == "" logs to
// stderr.
func Initialize(level Level, filename string) error {
	var w io.Writer = os.Stderr
	if filename != "" {
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("rlog: create log file: %w", err)
		}
		w = f
	}
	global = &Logger{level: level, writer: w}
	return nil
}

// New builds a standalone Logger, for callers (tests, library users) that
// don't want to touch the package-level global.
func New(level Level, w io.Writer) *Logger {
	return &Logger{level: level, writer: w}
}

func (l *Logger) log(level Level, tag, format string, args ...interface{}) {
	if l == nil || l.level < level {
		return
	}
	ts := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(l.writer, "[%s] %s: %s\n", ts, tag, msg)
}

func (l *Logger) Errorf(format string, args ...interface{}) { l.log(LevelError, "ERROR", format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.log(LevelWarn, "WARN", format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.log(LevelInfo, "INFO", format, args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.log(LevelDebug, "DEBUG", format, args...) }

// Scanf logs a source-scan phase event.
func (l *Logger) Scanf(format string, args ...interface{}) { l.log(LevelDebug, "SCAN", format, args...) }

// Codegenf logs a code-generation phase event.
func (l *Logger) Codegenf(format string, args ...interface{}) {
	l.log(LevelDebug, "CODEGEN", format, args...)
}

// Containerf logs a container-build phase event.
func (l *Logger) Containerf(format string, args ...interface{}) {
	l.log(LevelDebug, "CONTAINER", format, args...)
}

func Errorf(format string, args ...interface{})    { global.Errorf(format, args...) }
func Warnf(format string, args ...interface{})     { global.Warnf(format, args...) }
func Infof(format string, args ...interface{})     { global.Infof(format, args...) }
func Debugf(format string, args ...interface{})    { global.Debugf(format, args...) }
func Scanf(format string, args ...interface{})     { global.Scanf(format, args...) }
func Codegenf(format string, args ...interface{})  { global.Codegenf(format, args...) }
func Containerf(format string, args ...interface{}) { global.Containerf(format, args...) }

// LevelFromString parses a CLI --log-level flag value.
func LevelFromString(s string) Level {
	switch s {
	case "error":
		return LevelError
	case "warn":
		return LevelWarn
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelOff
	}
}
