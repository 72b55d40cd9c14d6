// ABOUTME: Leveled logging with a global level and a swappable output writer
// ABOUTME: Output moves to a file while the TUI owns the terminal

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var level atomic.Int64

var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log output. Pass os.Stderr to restore the default.
// The previous writer is returned so callers can put it back.
func SetOutput(w io.Writer) io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	prev := out
	out = w
	return prev
}

func emit(prefix, format string, args ...any) {
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, prefix+format+"\n", args...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	if slog.Level(level.Load()) > LevelDebug {
		return
	}
	emit("[DEBUG] ", format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	if slog.Level(level.Load()) > LevelInfo {
		return
	}
	emit("[INFO] ", format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if slog.Level(level.Load()) > LevelWarn {
		return
	}
	emit("[WARN] ", format, args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	emit("[ERROR] ", format, args...)
}
