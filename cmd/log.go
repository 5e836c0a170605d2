package cmd

import (
	"io"
	"log/slog"

	"fastcat.org/go/workshop/instance"
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}),
	).With("app", instance.AppName())
}
