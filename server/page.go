package server

import (
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"
	"os"

	"fastcat.org/go/workshop/config"
	"fastcat.org/go/workshop/instance"
)

//go:embed page.html
var pageHTML string

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

type PageData struct {
	PodName      string
	GoVersion    string
	Path         string
	Hostname     string
	Subtitle     string
	RequestCount uint64
}

// Page renders the workshop info page, counting every request it serves.
type Page struct {
	cfg     config.Page
	counter *Counter
	log     *slog.Logger
	// Hostname is looked up per request
	Hostname func() (string, error)
}

func NewPage(cfg config.Page, counter *Counter, log *slog.Logger) *Page {
	return &Page{
		cfg:      cfg,
		counter:  counter,
		log:      log,
		Hostname: os.Hostname,
	}
}

// ServeHTTP implements http.Handler.
func (p *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count := p.counter.Next()

	hostname, err := p.Hostname()
	if err != nil || hostname == "" {
		hostname = "unknown"
	}
	data := PageData{
		PodName:      p.cfg.Name,
		GoVersion:    instance.GoVersion(),
		Path:         r.URL.Path,
		Hostname:     hostname,
		Subtitle:     p.cfg.Subtitle,
		RequestCount: count,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := pageTemplate.Execute(w, data); err != nil {
		p.log.Warn("page render failed",
			"path", r.URL.Path,
			"count", count,
			"err", err,
		)
	}
}
