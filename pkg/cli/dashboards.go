package cli

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/dcmsstats/statsdash/pkg/repository"
	"github.com/dcmsstats/statsdash/pkg/usecase"
	"github.com/dcmsstats/statsdash/pkg/utils/apperr"
	"github.com/dcmsstats/statsdash/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// loadDashboards reads every dashboard's data concurrently and binds it to
// its configuration. Any load failure aborts.
func loadDashboards(ctx context.Context, cfg *model.DashboardsConfig) ([]*usecase.Dashboard, error) {
	dashboards := make([]*usecase.Dashboard, len(cfg.Dashboards))

	tasks := make([]async.Task, len(cfg.Dashboards))
	for i := range cfg.Dashboards {
		dash := &cfg.Dashboards[i]
		tasks[i] = func(ctx context.Context) error {
			d, err := loadDashboard(ctx, dash)
			if err != nil {
				return err
			}
			dashboards[i] = d
			return nil
		}
	}
	if err := async.First(async.All(ctx, tasks...)); err != nil {
		return nil, err
	}

	for _, d := range dashboards {
		ctxlog.From(ctx).Info("Dashboard data loaded",
			slog.String("id", d.ID().String()),
			slog.Int("latest_year", d.LatestYear()),
		)
	}

	return dashboards, nil
}

// loadDashboard reads one dashboard's data file. A missing file names the
// --data override that points the dashboard elsewhere.
func loadDashboard(ctx context.Context, dash *model.DashboardConfig) (*usecase.Dashboard, error) {
	if _, err := os.Stat(dash.Data.Path); errors.Is(err, fs.ErrNotExist) {
		return nil, goerr.Wrap(err, "dashboard data file not found, set it with --data "+dash.ID.String()+"=<path>",
			goerr.T(model.ErrTagInvalidConfig),
			goerr.V("dashboard", dash.ID),
			goerr.V("path", dash.Data.Path))
	}

	set, err := repository.Load(ctx, dash.Data.Path, repository.OptionsFromSource(dash.Data))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load dashboard data", goerr.V("dashboard", dash.ID))
	}
	return usecase.NewDashboard(dash, set), nil
}

// reportDrift logs a warning per breakdown whose row order disagrees with
// the data and returns how many there were
func reportDrift(ctx context.Context, d *usecase.Dashboard) (int, error) {
	drifts, err := d.Coverage()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to check row order coverage", goerr.V("dashboard", d.ID()))
	}
	for _, drift := range drifts {
		apperr.Warn(ctx, "Row order does not match data",
			slog.String("dashboard", d.ID().String()),
			slog.String("breakdown", drift.Breakdown.String()),
			slog.Any("dropped", drift.Dropped),
			slog.Any("missing", drift.Missing),
		)
	}
	return len(drifts), nil
}
