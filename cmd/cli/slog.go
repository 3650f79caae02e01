package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// init configures the process-wide slog default before anything logs.
// LOG_LEVEL=debug switches from the quiet JSON handler to colorized
// tint output with source locations, useful when poking at the API.
func init() {
	logLevel := slog.LevelWarn
	if logLevelStr := os.Getenv("LOG_LEVEL"); logLevelStr != "" {
		if err := logLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
			panic(fmt.Sprintf("invalid log level: %s", logLevelStr))
		}
	}

	if logLevel <= slog.LevelDebug {
		handler := tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.TimeOnly,
			AddSource:  true,
		})
		slog.SetDefault(slog.New(handler))
		slog.Debug("debug logging enabled")
		return
	}

	// Keep the interactive prompt clean: structured logs go to stderr
	// as JSON and only at warn level and above.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}
