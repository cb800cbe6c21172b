package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger creates the logger for the calculator. With a file name, logs are
// JSON written to a size-rotated file; otherwise they are text on stderr.
// The returned closer must be closed when logging is done.
func newLogger(name, level string) (*slog.Logger, io.Closer, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if name == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), io.NopCloser(nil), nil
	}
	w := &lumberjack.Logger{
		Filename:   name,
		MaxSize:    8, // MB
		MaxBackups: 2,
	}
	l := slog.New(slog.NewJSONHandler(w, opts))
	if bi, ok := debug.ReadBuildInfo(); ok {
		l.Info("Build",
			slog.String("Go version", bi.GoVersion),
			slog.String("Path", bi.Main.Path),
			slog.String("Version", bi.Main.Version))
	}
	return l, w, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%s: invalid log level", level)
	}
}
