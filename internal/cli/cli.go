// Package cli implements the medisync command line: the API server and a
// few operator tools around the demo-request form.
package cli

import (
	"fmt"
	"os"

	"medisync/internal/config"
	"medisync/internal/logging"
	"medisync/internal/version"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "medisync",
		Short: "MediSync marketing site API and tools",
		Long: `MediSync serves the marketing site's API (demo requests, plans, chat) and
offers operator tools to validate and submit "Book A Demo" forms from a terminal.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSubmitCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newPlansCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "MediSync %s\n", version.Info())
		},
	}
}

// loadConfig loads configuration and a logger writing to the command's stderr
func loadConfig(cmd *cobra.Command) (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.NewWriterLogger(cmd.ErrOrStderr(), cfg.LogLevel), nil
}
