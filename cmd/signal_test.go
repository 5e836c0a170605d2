//go:build unix

package cmd

import (
	"context"
	"log/slog"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastcat.org/go/workshop/config"
	"fastcat.org/go/workshop/server"
)

func TestRoot_stopsOnSIGTERM(t *testing.T) {
	t.Setenv("NOTIFY_SOCKET", "")
	ctx, stop := signalContext()
	defer stop()

	listening := make(chan string, 1)
	app := App[config.Hello]{
		Short: "hello on a random port",
		Load: func() (config.Hello, error) {
			return config.Hello{Name: "sig"}, nil
		},
		Serve: func(ctx context.Context, cfg config.Hello, log *slog.Logger) error {
			h, err := server.NewHTTP("127.0.0.1:0", server.NewRouter(server.Greeting(cfg.Name), log), log)
			if err != nil {
				return err
			}
			listening <- h.Addr()
			return h.Run(ctx)
		},
	}
	root := Root(app)
	root.SetArgs([]string{})
	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	select {
	case <-listening:
	case err := <-done:
		t.Fatalf("server exited before listening: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server never started listening")
	}

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(server.DefaultShutdownTimeout + 5*time.Second):
		t.Fatal("server did not stop after SIGTERM")
	}
	assert.Error(t, ctx.Err(), "signal context should be cancelled")
}
