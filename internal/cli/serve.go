package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/canvas-backend/internal/app"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server until SIGINT or SIGTERM.

Configuration is read from CONFIG_PATH (or --config) and environment
variables. Migrations are not applied; run "canvas migrate up" first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.loadConfig()
			if err != nil {
				return WrapExitError(ExitCommandError, "load config", err)
			}

			logger := app.NewLogger(cfg.Log)
			logger.Info("starting application",
				slog.String("version", app.BuildVersion()),
				slog.String("log_level", cfg.Log.Level),
			)

			return app.Run(cmd.Context(), cfg, logger)
		},
	}
}
