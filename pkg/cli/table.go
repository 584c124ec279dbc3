package cli

import (
	"context"
	"log/slog"

	"github.com/dcmsstats/statsdash/pkg/cli/config"
	"github.com/dcmsstats/statsdash/pkg/controller/text"
	"github.com/dcmsstats/statsdash/pkg/domain/model"
	"github.com/dcmsstats/statsdash/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"
)

func cmdTable() *cli.Command {
	var (
		dashboardsCfg config.Dashboards
		dashboardID   string
		breakdown     string
		mode          string
		locale        string
	)

	flags := joinFlags(
		dashboardsCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "dashboard",
				Aliases:     []string{"d"},
				Usage:       "Dashboard ID",
				Value:       "gva",
				Destination: &dashboardID,
			},
			&cli.StringFlag{
				Name:        "breakdown",
				Aliases:     []string{"b"},
				Usage:       "Breakdown value (dashboard default if not set)",
				Destination: &breakdown,
			},
			&cli.StringFlag{
				Name:        "mode",
				Aliases:     []string{"m"},
				Usage:       "Value or Indexed (dashboard default if not set)",
				Destination: &mode,
			},
			&cli.StringFlag{
				Name:        "locale",
				Usage:       "Locale used for number grouping",
				Value:       "en-GB",
				Sources:     cli.EnvVars("STATSDASH_LOCALE"),
				Destination: &locale,
			},
		},
	)

	return &cli.Command{
		Name:  "table",
		Usage: "Print a reshaped table",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			tag, err := language.Parse(locale)
			if err != nil {
				return goerr.Wrap(err, "invalid locale", goerr.V("locale", locale))
			}

			cfg, err := dashboardsCfg.Configure()
			if err != nil {
				return err
			}
			dash := cfg.FindDashboard(types.DashboardID(dashboardID))
			if dash == nil {
				return goerr.New("unknown dashboard",
					goerr.V("id", dashboardID),
					goerr.T(model.ErrTagInvalidConfig))
			}

			d, err := loadDashboard(ctx, dash)
			if err != nil {
				return err
			}

			b := types.Breakdown(breakdown)
			if b == "" {
				b = dash.DefaultBreakdown
			}
			m := types.Mode(mode)
			if m == "" {
				m = dash.DefaultMode
			}

			table, err := d.Table(b, m)
			if err != nil {
				return err
			}
			if table.HasDrift() {
				ctxlog.From(ctx).Warn("Row order does not match data",
					slog.Any("dropped", table.Dropped),
					slog.Any("missing", table.Missing),
				)
			}

			return text.NewTableWriter(tag, dash.Precision()).Write(c.Root().Writer, table, dash)
		},
	}
}
