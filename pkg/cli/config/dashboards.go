package config

import (
	_ "embed"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/dcmsstats/statsdash/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

//go:embed dashboards.yaml
var defaultDashboards []byte

// DefaultDashboards returns the embedded dashboard definitions
func DefaultDashboards() []byte {
	return defaultDashboards
}

// Dashboards holds the dashboard definition source and data overrides
type Dashboards struct {
	Path string
	Data []string
}

// Flags returns CLI flags for Dashboards configuration
func (d *Dashboards) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Dashboards YAML file (built-in definitions if not set)",
			Category:    "Dashboards",
			Sources:     cli.EnvVars("STATSDASH_CONFIG"),
			Destination: &d.Path,
		},
		&cli.StringSliceFlag{
			Name:        "data",
			Usage:       "Dashboard data file as id=path, e.g. gva=gva.csv (repeatable; built-in definitions expect data/*.csv otherwise)",
			Category:    "Dashboards",
			Sources:     cli.EnvVars("STATSDASH_DATA"),
			Destination: &d.Data,
		},
	}
}

// Configure loads, overrides, defaults and validates the dashboards
func (d *Dashboards) Configure() (*model.DashboardsConfig, error) {
	var (
		raw     []byte
		baseDir string
	)
	if d.Path == "" {
		raw = defaultDashboards
	} else {
		data, err := os.ReadFile(d.Path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, goerr.Wrap(err, "configuration file not found",
					goerr.V("path", d.Path),
					goerr.T(model.ErrTagInvalidConfig))
			}
			return nil, goerr.Wrap(err, "failed to read configuration file",
				goerr.V("path", d.Path),
				goerr.T(model.ErrTagInvalidConfig))
		}
		raw = data
		baseDir = filepath.Dir(d.Path)
	}

	cfg, err := ParseDashboards(raw, baseDir)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid dashboards configuration", goerr.V("path", d.Path))
	}

	overrides, err := parseDataOverrides(d.Data)
	if err != nil {
		return nil, err
	}
	for id, path := range overrides {
		dash := cfg.FindDashboard(id)
		if dash == nil {
			return nil, goerr.New("data override for unknown dashboard",
				goerr.V("id", id),
				goerr.T(model.ErrTagInvalidConfig))
		}
		dash.Data.Path = path
	}

	return cfg, nil
}

// ParseDashboards decodes a dashboards YAML document. Relative data paths are
// resolved against baseDir when it is set.
func ParseDashboards(raw []byte, baseDir string) (*model.DashboardsConfig, error) {
	var cfg model.DashboardsConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration", goerr.T(model.ErrTagInvalidConfig))
	}

	for i := range cfg.Dashboards {
		dash := &cfg.Dashboards[i]
		dash.ApplyDefaults()
		if baseDir != "" && dash.Data.Path != "" && !filepath.IsAbs(dash.Data.Path) {
			dash.Data.Path = filepath.Join(baseDir, dash.Data.Path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseDataOverrides(values []string) (map[types.DashboardID]string, error) {
	overrides := make(map[types.DashboardID]string, len(values))
	for _, v := range values {
		id, path, ok := strings.Cut(v, "=")
		id, path = strings.TrimSpace(id), strings.TrimSpace(path)
		if !ok || id == "" || path == "" {
			return nil, goerr.New("data override must be id=path",
				goerr.V("value", v),
				goerr.T(model.ErrTagInvalidConfig))
		}
		overrides[types.DashboardID(id)] = path
	}
	return overrides, nil
}

// LogValue returns structured log value
func (d Dashboards) LogValue() slog.Value {
	path := d.Path
	if path == "" {
		path = "(built-in)"
	}
	return slog.GroupValue(
		slog.String("config", path),
		slog.Any("data", d.Data),
	)
}
