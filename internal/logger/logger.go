// Package logger configures the process-wide slog logger. Diagnostics go to
// stderr through a tint handler, colored only when stderr is a terminal, and
// stay quiet below the warn level unless --verbose or log_level asks for more.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// LevelVar allows dynamic changing of the log level.
var LevelVar = new(slog.LevelVar)

func init() {
	LevelVar.Set(slog.LevelWarn)
}

// SetLevel changes the minimum level that is written.
func SetLevel(level slog.Level) {
	LevelVar.Set(level)
}

// ParseLevel accepts debug, info, warn, or error (case-insensitive).
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// NewLogger returns a logger writing to stderr.
func NewLogger() *slog.Logger {
	return New(os.Stderr, !isTerminal(os.Stderr))
}

// New returns a logger writing to w.
func New(w io.Writer, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      LevelVar,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// log formats msg with args when it contains verbs, otherwise passes args as
// attributes.
func log(ctx context.Context, level slog.Level, msg string, args ...any) {
	l := slog.Default()
	if !l.Enabled(ctx, level) {
		return
	}
	if len(args) > 0 && strings.Contains(msg, "%") {
		msg = fmt.Sprintf(msg, args...)
		args = nil
	}
	l.Log(ctx, level, msg, args...)
}

// Debug logs a diagnostic shown only with --verbose or log_level debug.
func Debug(ctx context.Context, msg string, args ...any) {
	log(ctx, slog.LevelDebug, msg, args...)
}

// Warn logs a notice shown at the default level.
func Warn(ctx context.Context, msg string, args ...any) {
	log(ctx, slog.LevelWarn, msg, args...)
}
