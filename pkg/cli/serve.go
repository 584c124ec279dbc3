package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dcmsstats/statsdash/pkg/cli/config"
	controller "github.com/dcmsstats/statsdash/pkg/controller/http"
	"github.com/dcmsstats/statsdash/pkg/domain/interfaces"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg     config.Server
		dashboardsCfg config.Dashboards
	)

	flags := joinFlags(
		serverCfg.Flags(),
		dashboardsCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting statsdash server",
				slog.Any("server", serverCfg),
				slog.Any("dashboards", dashboardsCfg),
			)

			cfg, err := dashboardsCfg.Configure()
			if err != nil {
				return err
			}

			loaded, err := loadDashboards(ctx, cfg)
			if err != nil {
				return err
			}
			dashboards := make([]interfaces.Dashboard, len(loaded))
			for i, d := range loaded {
				if _, err := reportDrift(ctx, d); err != nil {
					return err
				}
				dashboards[i] = d
			}

			server, err := controller.NewServer(ctx, controller.Options{
				Addr:           serverCfg.Addr,
				HomeURL:        serverCfg.HomeURL,
				AllowedOrigins: serverCfg.AllowedOrigins,
			}, dashboards)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			serverErr := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					serverErr <- err
				}
				close(serverErr)
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err, ok := <-serverErr:
				if ok {
					return goerr.Wrap(err, "HTTP server failed", goerr.V("addr", serverCfg.Addr))
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
