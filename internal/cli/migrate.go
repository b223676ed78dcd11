package cli

import (
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/canvas-backend/migrations"
)

type migrateOptions struct {
	DSN string
}

// NewMigrateCommand creates the migrate command with up, down and status
// subcommands. It only needs a database DSN, not the full configuration.
func NewMigrateCommand(_ *RootOptions) *cobra.Command {
	opts := &migrateOptions{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the embedded SQL migrations",
	}

	cmd.PersistentFlags().StringVar(&opts.DSN, "dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL DSN (default $DATABASE_DSN)")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProvider(opts, func(p *goose.Provider) error {
				results, err := p.Up(cmd.Context())
				if err != nil {
					return WrapExitError(ExitFailure, "migrate up", err)
				}
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
				}
				for _, r := range results {
					printResult(cmd.OutOrStdout(), r)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProvider(opts, func(p *goose.Provider) error {
				r, err := p.Down(cmd.Context())
				if err != nil {
					return WrapExitError(ExitFailure, "migrate down", err)
				}
				printResult(cmd.OutOrStdout(), r)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withProvider(opts, func(p *goose.Provider) error {
				statuses, err := p.Status(cmd.Context())
				if err != nil {
					return WrapExitError(ExitFailure, "migrate status", err)
				}
				for _, s := range statuses {
					applied := "-"
					if !s.AppliedAt.IsZero() {
						applied = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-20s %s\n", s.State, applied, s.Source.Path)
				}
				return nil
			})
		},
	})

	return cmd
}

func withProvider(opts *migrateOptions, fn func(p *goose.Provider) error) error {
	if opts.DSN == "" {
		return NewExitError(ExitCommandError, "--dsn or DATABASE_DSN is required")
	}

	db, err := sql.Open("pgx", opts.DSN)
	if err != nil {
		return WrapExitError(ExitCommandError, "open database", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return WrapExitError(ExitCommandError, "goose new provider", err)
	}

	return fn(provider)
}

func printResult(w io.Writer, r *goose.MigrationResult) {
	if r == nil {
		return
	}
	fmt.Fprintf(w, "OK   %s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
}
