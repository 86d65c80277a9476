package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialgraph/analysis"
	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/converters"
	"github.com/katalvlaran/socialgraph/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API with hot reload of config and dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(a.svc, a.cfg.Server, a.log.Named("http"))

			if a.configPath != "" {
				loader, err := config.NewLoader(a.configPath, a.log.Named("config"))
				if err != nil {
					return err
				}
				loader.OnChange(func(cfg *config.Config) {
					a.svc.Configure(cfg)
					srv.SetRateLimit(cfg.Server.RateLimit, cfg.Server.Burst)
					if a.logLevel == "" {
						if err := a.log.SetLevel(cfg.Log.Level); err != nil {
							a.log.Warn("log level not applied", zap.Error(err))
						}
					}
				})
				stopCfg, err := loader.Watch()
				if err != nil {
					return err
				}
				defer stopCfg()
			}

			if a.cfg.Data.Watch && a.cfg.Data.Path != "" {
				stopData, err := watchDataset(ctx, a)
				if err != nil {
					return err
				}
				defer stopData()
			}

			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")

	return cmd
}

// watchDataset reloads the dataset into the service whenever its file changes.
func watchDataset(ctx context.Context, a *app) (func(), error) {
	path, format := a.cfg.Data.Path, a.format()
	log := a.log.Named("data")

	return config.WatchFile(path, log, func() {
		_ = reloadDataset(ctx, a.svc, log, path, format)
	})
}

// reloadDataset loads path into svc. A failed reload keeps the previous
// graph; the error is logged and returned.
func reloadDataset(ctx context.Context, svc *analysis.Service, log *zap.Logger, path string, format converters.Format) error {
	rep, err := svc.Load(ctx, path, format)
	if err != nil {
		log.Error("dataset reload rejected, keeping previous graph", zap.String("path", path), zap.Error(err))

		return err
	}
	log.Info("dataset reloaded",
		zap.String("path", path),
		zap.Int("nodes", rep.Nodes),
		zap.Int("edges", rep.Edges),
		zap.Int("skipped_edges", rep.SkippedEdges))

	return nil
}
