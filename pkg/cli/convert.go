package cli

import (
	"context"
	"log/slog"

	"github.com/dcmsstats/statsdash/pkg/repository"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

func cmdConvert() *cli.Command {
	var (
		input  string
		output string
		opts   repository.Options
	)

	return &cli.Command{
		Name:  "convert",
		Usage: "Convert a CSV or XLSX aggregate table to parquet",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "Input table (.csv, .xlsx or .parquet)",
				Required:    true,
				Destination: &input,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output parquet file",
				Required:    true,
				Destination: &output,
			},
			&cli.StringFlag{
				Name:        "value-column",
				Usage:       "Header of the value column",
				Value:       "gva",
				Destination: &opts.ValueColumn,
			},
			&cli.StringFlag{
				Name:        "encoding",
				Usage:       "CSV character set",
				Destination: &opts.Encoding,
			},
			&cli.StringFlag{
				Name:        "sheet",
				Usage:       "XLSX sheet name",
				Destination: &opts.Sheet,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			set, err := repository.Load(ctx, input, opts)
			if err != nil {
				return err
			}

			if err := repository.WriteParquet(set, output); err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Converted table",
				slog.String("input", input),
				slog.String("output", output),
				slog.Int("rows", set.Len()),
			)
			return nil
		},
	}
}
