package logger

import (
	"io"
	"log/slog"
)

// New returns a structured logger writing to w. format "json" selects the JSON
// handler; anything else uses the text handler.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("app", "patientdesk")
}
