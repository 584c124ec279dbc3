package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
)

// DefaultHomeURL is where the top-level routes redirect to
const DefaultHomeURL = "https://www.gov.uk/government/organisations/department-for-digital-culture-media-sport/about/statistics"

// Server holds server configuration
type Server struct {
	Addr            string
	HomeURL         string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Category:    "Server",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("STATSDASH_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "home-url",
			Usage:       "Redirect target of / and /hello",
			Category:    "Server",
			Value:       DefaultHomeURL,
			Sources:     cli.EnvVars("STATSDASH_HOME_URL"),
			Destination: &s.HomeURL,
		},
		&cli.StringSliceFlag{
			Name:        "allowed-origin",
			Usage:       "CORS origin allowed to call the dashboard APIs (repeatable)",
			Category:    "Server",
			Value:       []string{"*"},
			Sources:     cli.EnvVars("STATSDASH_ALLOWED_ORIGINS"),
			Destination: &s.AllowedOrigins,
		},
		&cli.DurationFlag{
			Name:        "shutdown-timeout",
			Usage:       "Graceful shutdown timeout",
			Category:    "Server",
			Value:       10 * time.Second,
			Sources:     cli.EnvVars("STATSDASH_SHUTDOWN_TIMEOUT"),
			Destination: &s.ShutdownTimeout,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("home_url", s.HomeURL),
		slog.Any("allowed_origins", s.AllowedOrigins),
		slog.Duration("shutdown_timeout", s.ShutdownTimeout),
	)
}
