// Package cli implements the canvas command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/canvas-backend/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string

	// load reads the application configuration from ConfigPath; swapped in tests.
	load func(path string) (*config.Config, error)
}

// NewRootCommand creates the root command for the canvas binary.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{load: config.LoadFrom})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canvas",
		Short: "Canvas - topics and users API",
		Long:  "Canvas serves the topic and user upsert API and bundles its operator tooling.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to YAML config (overrides CONFIG_PATH)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))
	cmd.AddCommand(NewPromoteCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// loadConfig reads --config when given, CONFIG_PATH otherwise.
func (o *RootOptions) loadConfig() (*config.Config, error) {
	path := o.ConfigPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return o.load(path)
}
