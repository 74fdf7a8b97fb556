package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps LOG_LEVEL values to a Level. Unknown values fall back to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

type Logger struct {
	level Level
	out   *log.Logger
}

func New(level string) *Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter is New with an explicit destination, mostly for tests.
func NewWithWriter(level string, w io.Writer) *Logger {
	return &Logger{
		level: ParseLevel(level),
		out:   log.New(w, "", log.LstdFlags),
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWithWriter("error", io.Discard)
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.logf(LevelDebug, "[DEBUG] ", msg, args...)
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.logf(LevelInfo, "[INFO] ", msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.logf(LevelWarn, "[WARN] ", msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.logf(LevelError, "[ERROR] ", msg, args...)
}

func (l *Logger) Fatal(msg string, args ...interface{}) {
	l.out.Printf("[FATAL] "+msg, args...)
	os.Exit(1)
}

func (l *Logger) logf(level Level, prefix, msg string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf(prefix+msg, args...)
}
