package logger

import (
	"log/slog"
	"os"
)

// Log is usable before Init; Init just rebuilds it with the production
// handler configuration.
var Log = newLogger()

func Init() {
	Log = newLogger()
}

func newLogger() *slog.Logger {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	return slog.New(handler)
}
