// Package logger builds the process logger. Unlike a package-global sink,
// Setup hands the logger and its cleanup back to the caller: the CLI
// entrypoint owns the lifecycle and passes the logger down explicitly.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	Dir   string // log directory, created if missing
	Debug bool
}

// Setup opens the log file and returns a JSON slog logger plus a cleanup
// closing the file. On failure it returns a discard logger and the error,
// so callers can keep running without log output.
func Setup(cfg Config) (*slog.Logger, func() error, error) {
	dir := filepath.Clean(cfg.Dir)
	if dir == "" || dir == "." {
		dir = filepath.Join(".metiswiz", "logs")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Discard(), noop, err
	}

	path := filepath.Join(dir, "metiswiz.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return Discard(), noop, err
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)
	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		return f.Close()
	}
	return l, cleanup, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func noop() error { return nil }
