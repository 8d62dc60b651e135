// Package logging provides a small leveled logger for the game. Loggers are
// constructed explicitly and passed to the components that need them; there
// is no package-level default.
package logging

import (
	"fmt"
	"io"
	"log"
)

type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel parses a log level string into a Level.
// Valid log levels are: error, warn, info, debug.
func ParseLevel(level string) (Level, error) {
	switch level {
	case "error":
		return LevelError, nil
	case "warn":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelError, fmt.Errorf("unknown log level: %s", level)
	}
}

type Logger struct {
	logger *log.Logger
	level  Level
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "", log.Ldate|log.Ltime),
		level:  level,
	}
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *Logger {
	return New(io.Discard, LevelError)
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if level <= l.level {
		l.logger.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
	}
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}
