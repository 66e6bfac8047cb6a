package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/internal/config"
)

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "tripplanner",
		Short:        "Trip planner API server",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				return config.LoadDotenv(envFile)
			}
			return config.LoadDotenv()
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "path to a .env file (default: ./.env if present)")

	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

// loadConfig loads Config and installs the JSON logger as the slog default.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}
