package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dcmsstats/statsdash/frontend"
	"github.com/dcmsstats/statsdash/pkg/domain/interfaces"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Options holds the host router settings
type Options struct {
	Addr           string
	HomeURL        string
	AllowedOrigins []string
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates the host router: top-level redirects, health check and
// one sub-router per dashboard mounted at its prefix
func NewServer(ctx context.Context, opts Options, dashboards []interfaces.Dashboard) (*Server, error) {
	tmpl, err := frontend.PageTemplate()
	if err != nil {
		return nil, err
	}
	assets, err := frontend.GetHTTPFS()
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)

	if opts.HomeURL != "" {
		home := redirectTo(opts.HomeURL)
		router.Get("/", home)
		router.Get("/hello", home)
	}

	for _, d := range dashboards {
		cfg := d.Config()
		handler, err := NewDashboardHandler(d, tmpl, assets, opts.HomeURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create dashboard handler", goerr.V("dashboard", d.ID()))
		}

		for _, from := range cfg.RedirectFrom {
			router.Get(from, redirectTo(cfg.Prefix))
		}
		router.Mount(cfg.Prefix, handler.Routes(opts.AllowedOrigins))

		ctxlog.From(ctx).Info("Dashboard mounted",
			"id", d.ID(),
			"prefix", cfg.Prefix,
			"redirect_from", cfg.RedirectFrom,
		)
	}

	return &Server{
		Server: &http.Server{
			Addr:              opts.Addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}, nil
}

func redirectTo(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusFound)
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]string{
		"status":  "healthy",
		"service": "statsdash",
	})
}

// writeJSON writes v as a 200 JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		// Can't get context here, so use background context
		ctxlog.From(context.Background()).Error("Failed to encode error response", "error", err)
	}
}
