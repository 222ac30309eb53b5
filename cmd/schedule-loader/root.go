package main

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/poolsapp/schedule-loader/internal/config"
	"github.com/poolsapp/schedule-loader/internal/importer"
	"github.com/poolsapp/schedule-loader/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "schedule-loader <schedule.csv>",
	Short: "Validate and load an NFL schedule export into the games table",
	Long: `schedule-loader reads a season schedule export (CSV), validates its
columns, game types, and team references against the team directory, derives
UTC kickoff instants from Eastern-time dates and times, and loads the rows
into the games table in a single transaction.

A run that completes exits 0, even when individual rows were skipped;
validation failures, connection failures, and transaction faults exit 1.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load .env file if it exists (Overload overwrites existing env vars)
		if err := godotenv.Overload(); err != nil {
			slog.Info("no .env file found, using environment variables")
		} else {
			slog.Info("loaded .env file (overwriting existing env vars)")
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}

		logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
		slog.Debug("configuration loaded", "config", cfg.String())

		return importer.Run(cmd.Context(), cfg, args[0])
	},
}
