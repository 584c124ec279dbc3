package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dcmsstats/statsdash/pkg/cli/config"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout)
}

func run(ctx context.Context, args []string, w io.Writer) error {
	var loggerCfg config.Logger

	app := &cli.Command{
		Name:    "statsdash",
		Usage:   "Sector statistics dashboards",
		Version: "0.1.0",
		Writer:  w,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdTable(),
			cmdCheck(),
			cmdConvert(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		ctxlog.From(ctx).Error("command failed", slog.Any("error", err))
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
