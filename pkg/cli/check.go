package cli

import (
	"context"
	"fmt"

	"github.com/dcmsstats/statsdash/pkg/cli/config"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdCheck() *cli.Command {
	var (
		dashboardsCfg config.Dashboards
		strict        bool
	)

	flags := joinFlags(
		dashboardsCfg.Flags(),
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "Fail when a row order does not match the data",
				Destination: &strict,
			},
		},
	)

	return &cli.Command{
		Name:  "check",
		Usage: "Validate dashboard configuration and data",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := dashboardsCfg.Configure()
			if err != nil {
				return err
			}

			dashboards, err := loadDashboards(ctx, cfg)
			if err != nil {
				return err
			}

			total := 0
			for _, d := range dashboards {
				n, err := reportDrift(ctx, d)
				if err != nil {
					return err
				}
				total += n
				fmt.Fprintf(c.Root().Writer, "%s\t%s\t%d mismatched breakdown(s)\n", d.ID(), d.Config().Prefix, n)
			}

			if strict && total > 0 {
				return goerr.New("row orders do not match data", goerr.V("breakdowns", total))
			}
			return nil
		},
	}
}
