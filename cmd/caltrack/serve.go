package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/yourname/calorietracker/internal"
	"github.com/yourname/calorietracker/internal/config"
	"github.com/yourname/calorietracker/internal/server"
)

type serveOptions struct {
	addr    string
	backend string
	open    bool
	openSet bool
}

// serveConfig reads .env and the environment, applies the flag overrides,
// then validates the result.
func serveConfig(opts serveOptions) (*config.Config, error) {
	_ = godotenv.Load()
	cfg := config.Parse()
	if opts.addr != "" {
		cfg.HTTPAddr = opts.addr
	}
	if opts.backend != "" {
		cfg.DBType = opts.backend
	}
	if opts.openSet {
		cfg.OpenBrowser = opts.open
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newServeCmd() *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (reads .env and the environment)",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.openSet = cmd.Flags().Changed("open")
			cfg, err := serveConfig(opts)
			if err != nil {
				return err
			}

			logger, err := internal.NewLogger(cfg.LogLevel, cfg.Env)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, cfg, logger)
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address, overrides HTTP_ADDR")
	cmd.Flags().StringVar(&opts.backend, "storage", "", "Storage backend, overrides STORAGE_BACKEND")
	cmd.Flags().BoolVar(&opts.open, "open", false, "Open the dashboard in a browser")
	return cmd
}
