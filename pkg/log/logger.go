// Package log holds the process-wide structured logger. Records go to stderr
// so that stdout only carries command output.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Output formats accepted by ParseFormat.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	logger *slog.Logger
	mu     sync.RWMutex
)

// Options configures the logger. Zero values mean info level, text format
// and stderr.
type Options struct {
	Level  string
	Format string
	Writer io.Writer
}

// ParseLogLevel converts a string log level to a slog.Level.
// Valid values are "debug", "info", "warn", "error".
// If an invalid value is provided, it defaults to debug.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// ParseFormat returns FormatJSON for "json" and FormatText for anything else.
func ParseFormat(format string) string {
	if strings.EqualFold(format, FormatJSON) {
		return FormatJSON
	}
	return FormatText
}

func newLogger(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: ParseLogLevel(opts.Level)}

	if ParseFormat(opts.Format) == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// Configure replaces the logger. It may be called again, e.g. once flags
// are parsed.
func Configure(opts Options) {
	l := newLogger(opts)

	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// InitLog configures a text logger on stderr at logLevel.
func InitLog(logLevel string) {
	Configure(Options{Level: logLevel})
}

// GetLog returns the configured logger, creating the default one on first use.
func GetLog() *slog.Logger {
	mu.RLock()
	if logger != nil {
		defer mu.RUnlock()
		return logger
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if logger == nil {
		logger = newLogger(Options{})
	}
	return logger
}

// Debug logs a message at Debug level.
func Debug(msg string, args ...any) { GetLog().Debug(msg, args...) }

// Info logs a message at Info level.
func Info(msg string, args ...any) { GetLog().Info(msg, args...) }

// Warn logs a message at Warn level.
func Warn(msg string, args ...any) { GetLog().Warn(msg, args...) }

// Error logs a message at Error level.
func Error(msg string, args ...any) { GetLog().Error(msg, args...) }
