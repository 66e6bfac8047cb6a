package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/pkordes/trip-planner/internal/config"
	"github.com/pkordes/trip-planner/migrations"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withProvider(func(ctx context.Context, cmd *cobra.Command, p *goose.Provider) error {
				results, err := p.Up(ctx)
				if err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
				}
				for _, res := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "applied %s (%s)\n", res.Source.Path, res.Duration.Round(time.Millisecond))
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: withProvider(func(ctx context.Context, cmd *cobra.Command, p *goose.Provider) error {
				res, err := p.Down(ctx)
				if err != nil {
					return fmt.Errorf("migrate down: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %s\n", res.Source.Path)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			RunE: withProvider(func(ctx context.Context, cmd *cobra.Command, p *goose.Provider) error {
				statuses, err := p.Status(ctx)
				if err != nil {
					return fmt.Errorf("migrate status: %w", err)
				}
				for _, s := range statuses {
					applied := "pending"
					if s.State == goose.StateApplied {
						applied = s.AppliedAt.Format(time.RFC3339)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%5d  %-40s  %s\n", s.Source.Version, s.Source.Path, applied)
				}
				return nil
			}),
		},
	)
	return cmd
}

// withProvider opens the database named by DATABASE_URL, builds a goose
// provider over the embedded migrations, and hands it to fn.
func withProvider(fn func(context.Context, *cobra.Command, *goose.Provider) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		db, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		p, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
		if err != nil {
			return fmt.Errorf("goose provider: %w", err)
		}
		return fn(cmd.Context(), cmd, p)
	}
}
