package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter sends every request, whatever the method or request target, to h.
// That includes CONNECT and OPTIONS *, whose URL.Path is not rooted. Paths are
// not cleaned, so there are no redirects either.
func NewRouter(h http.Handler, log *slog.Logger) *mux.Router {
	r := mux.NewRouter()
	r.SkipClean(true)
	r.Use(accessLog(log))
	r.NewRoute().MatcherFunc(matchAll).Handler(h)
	return r
}

func matchAll(*http.Request, *mux.RouteMatch) bool { return true }
