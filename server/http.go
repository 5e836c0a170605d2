package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"fastcat.org/go/workshop/lib/sys"
)

// DefaultShutdownTimeout bounds how long in-flight requests get to finish
// once a stop is requested.
const DefaultShutdownTimeout = 10 * time.Second

type HTTP struct {
	Server   *http.Server
	Listener net.Listener
	// ShutdownTimeout is the graceful stop window, after which remaining
	// connections are closed.
	ShutdownTimeout time.Duration

	log *slog.Logger
}

// NewHTTP binds addr right away, so a port that is in use is reported here
// rather than from Run.
func NewHTTP(addr string, handler http.Handler, log *slog.Logger) (*HTTP, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("cannot listen on %s: %w", addr, err)
	}
	s := &http.Server{
		Addr:     l.Addr().String(),
		Handler:  handler,
		ErrorLog: slog.NewLogLogger(log.Handler(), slog.LevelWarn),
	}
	return &HTTP{
		Server:          s,
		Listener:        l,
		ShutdownTimeout: DefaultShutdownTimeout,
		log:             log,
	}, nil
}

func (h *HTTP) Addr() string {
	return h.Listener.Addr().String()
}

// Run serves until ctx is done, then stops gracefully. A stop requested via
// ctx is not an error, even if the graceful window runs out.
func (h *HTTP) Run(ctx context.Context) error {
	serveDone := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-serveDone:
			return
		case <-ctx.Done():
		}
		h.log.Info("shutdown signal received, stopping server", "addr", h.Addr())
		if _, err := sys.NotifyStopping(); err != nil {
			h.log.Warn("notify failed", "err", err)
		}
		sdCtx, cancel := context.WithTimeout(context.Background(), h.ShutdownTimeout)
		defer cancel()
		if err := h.Server.Shutdown(sdCtx); err != nil {
			h.log.Warn("server forced to shutdown", "err", err)
			// force it to close harder
			_ = h.Server.Close()
		}
	}()

	h.log.Info("listening", "addr", h.Addr())
	if _, err := sys.NotifyReady(); err != nil {
		h.log.Warn("notify failed", "err", err)
	}
	err := h.Server.Serve(h.Listener)
	close(serveDone)
	<-stopped
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	} else if err != nil {
		err = fmt.Errorf("server on %s failed: %w", h.Addr(), err)
	}
	h.log.Info("server stopped", "addr", h.Addr())
	return err
}
