package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/dcmsstats/statsdash/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string
}

// Flags returns CLI flags for Logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("STATSDASH_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("STATSDASH_LOG_FORMAT"),
			Destination: &l.Format,
		},
	}
}

// Configure builds the logger. Logs go to stderr so command output on stdout
// stays clean.
func (l *Logger) Configure() (*slog.Logger, error) {
	return l.ConfigureWriter(os.Stderr)
}

// ConfigureWriter builds the logger writing to w
func (l *Logger) ConfigureWriter(w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(l.Format)
	if err != nil {
		return nil, err
	}

	return logging.New(level, w, format), nil
}

// LogValue returns structured log value
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
	)
}
