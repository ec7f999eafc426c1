// Package commands implements the dirlist CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/akfite/dirlist/internal/cli/ui"
	"github.com/akfite/dirlist/internal/core/config"
)

var rootCmd = &cobra.Command{
	Use:   "dirlist",
	Short: "List directory contents with type classification",
	Long: `Dirlist enumerates the immediate contents of a directory and classifies
every entry (file, directory, symlink, device, fifo, socket) using a stable
numeric code table shared by all of its interfaces.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.DefaultLoader().Load()
		if err != nil {
			return err
		}
		cfg = loaded

		// The --format flag wins over the configured default.
		formatName := outputFormat
		if formatName == "" {
			formatName = cfg.Output.Format
		}
		format, err := ui.ParseFormat(formatName)
		if err != nil {
			return err
		}
		return ui.SetGlobalFormatter(format)
	},
}

var (
	// cfg holds the merged global and project configuration, loaded once
	// before any command runs.
	cfg = &config.Config{}

	outputFormat string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "Output format (pretty, json)")

	// Add subcommands
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("%v", err)
		return err
	}
	return nil
}
