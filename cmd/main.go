package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fastcat.org/go/workshop/internal"
)

// App describes one server binary: how it reads its settings and how it
// serves with them.
type App[S any] struct {
	Short string
	Load  func() (S, error)
	Serve func(ctx context.Context, settings S, log *slog.Logger) error
}

// Main runs the app's root command with a context that is cancelled on
// SIGINT or SIGTERM, and exits non-zero if it fails.
func Main[S any](app App[S]) {
	slog.SetDefault(newLogger(os.Stdout))
	internal.LockCustomizations()

	ctx, stop := signalContext()
	err := Root(app).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		ec := 1
		var ece ExitCodeErr
		if errors.As(err, &ece) {
			ec = ece.ExitCode()
		}
		os.Exit(ec)
	}
}

// signalContext is cancelled on the first SIGINT or SIGTERM. Once it is
// registered those signals no longer kill the process outright.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

type ExitCodeErr interface {
	ExitCode() int
}
