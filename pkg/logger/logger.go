package logger

import (
	"log/slog"
	"os"
)

// Log is usable before Init for early failures; Init swaps in the
// configured handler.
var Log = slog.Default()

func Init() {
	// JSON handler, written to stderr so command output stays clean
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
