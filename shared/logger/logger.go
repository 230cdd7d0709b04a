package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var Log *slog.Logger

func init() {
	// Until a command calls Initialize, log to stderr at info.
	Initialize("info", false, os.Stderr)
}

// Initialize replaces the global logger. Every record carries its source
// location; callers tag records with a "component" attribute.
func Initialize(level string, useJSON bool, w io.Writer) {
	opts := &slog.HandlerOptions{Level: parseLevel(level), AddSource: true}

	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if useJSON {
		handler = slog.NewJSONHandler(w, opts)
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
}

// InitializeFile points the global logger at path, appending to it. The
// terminal client uses it because the screen belongs to the UI.
// The returned file must be closed by the caller on exit.
func InitializeFile(level string, useJSON bool, path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	Initialize(level, useJSON, f)
	return f, nil
}

// parseLevel accepts slog's level names in any case, plus "warning".
// Anything else falls back to info.
func parseLevel(level string) slog.Level {
	level = strings.TrimSpace(level)
	if strings.EqualFold(level, "warning") {
		return slog.LevelWarn
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
