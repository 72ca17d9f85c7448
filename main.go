package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"personal-notes/config"
	"personal-notes/metrics"
	"personal-notes/repository"
	"personal-notes/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		port    string
		envFile string
	)

	cmd := &cobra.Command{
		Use:          "notes-api",
		Short:        "Personal notes API with an in-memory store",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := config.LoadConfig(files...)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			logger := newLogger(cfg)
			slog.SetDefault(logger)

			deps := server.Deps{
				Config: cfg,
				Logger: logger,
				Repo:   repository.NewMemoryRepository(),
			}
			if cfg.MetricsEnabled {
				deps.Metrics = metrics.New()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, cfg, logger, server.NewRouter(deps))
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides PORT)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "env file to load instead of .env")
	return cmd
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
