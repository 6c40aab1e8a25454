// Package cmd provides the command-line interface for the podium server.
package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CLI output formatters
var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

// Global flags shared by all commands
var (
	basePath string
	envName  string
	noColor  bool
)

// NewRootCmd creates the podium root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "podium",
		Short: "Conference call-for-proposals platform server",
		Long: `Podium is the runtime for the conference call-for-proposals platform.

It loads environment-scoped configuration from {base}/config/{env}.yml,
binds the application's filesystem paths, registers the feature service
modules and serves the web application.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&basePath, "base", ".", "Application base path")
	rootCmd.PersistentFlags().StringVar(&envName, "env", "development", "Environment name (production, development, testing)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
