package server

import (
	"context"
	"log/slog"

	"fastcat.org/go/workshop/config"
)

// ServeHello runs the plain-text greeting server until ctx is done.
func ServeHello(ctx context.Context, cfg config.Hello, log *slog.Logger) error {
	h, err := NewHTTP(cfg.Addr(), NewRouter(Greeting(cfg.Name), log), log)
	if err != nil {
		return err
	}
	return h.Run(ctx)
}

// ServePage runs the html page server until ctx is done. The request counter
// lives as long as this call.
func ServePage(ctx context.Context, cfg config.Page, log *slog.Logger) error {
	page := NewPage(cfg, &Counter{}, log)
	h, err := NewHTTP(cfg.Addr(), NewRouter(page, log), log)
	if err != nil {
		return err
	}
	return h.Run(ctx)
}
