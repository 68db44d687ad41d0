package utils

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

type Logger struct {
	log *log.Logger
}

func NewLogger(level string) *Logger {
	return newLogger(os.Stderr, level)
}

func NewDiscardLogger() *Logger {
	return newLogger(io.Discard, string(LevelInfo))
}

func newLogger(w io.Writer, level string) *Logger {
	return &Logger{
		log: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			Level:           toCharmLevel(parseLogLevel(level)),
			Prefix:          "wordfreq",
		}),
	}
}

func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func toCharmLevel(level LogLevel) log.Level {
	switch level {
	case LevelDebug:
		return log.DebugLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// With returns a logger that prefixes every entry with keyvals.
func (l *Logger) With(keyvals ...any) *Logger {
	return &Logger{log: l.log.With(keyvals...)}
}

func (l *Logger) Debug(msg string, keyvals ...any) {
	l.log.Debug(msg, keyvals...)
}

func (l *Logger) Info(msg string, keyvals ...any) {
	l.log.Info(msg, keyvals...)
}

func (l *Logger) Warn(msg string, keyvals ...any) {
	l.log.Warn(msg, keyvals...)
}

func (l *Logger) Error(msg string, keyvals ...any) {
	l.log.Error(msg, keyvals...)
}

func (l *Logger) Fatal(msg string, keyvals ...any) {
	l.log.Fatal(msg, keyvals...)
}
