package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"podium/config"
	"podium/paths"
)

// newConfigCmd creates the 'config' command group.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect resolved configuration",
	}
	configCmd.AddCommand(newConfigCheckCmd())
	configCmd.AddCommand(newConfigDumpCmd())
	return configCmd
}

// newConfigCheckCmd creates the 'config check' subcommand. It walks the
// same resolution steps as a real bootstrap and reports each one.
func newConfigCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the environment's configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.ParseEnvironment(envName)
			if err != nil {
				errorColor.Printf("✗ environment: %v\n", err)
				return err
			}
			successColor.Printf("✓ environment: %s\n", env)

			resolved := paths.ResolveAll(basePath, env)
			for _, slug := range paths.Slugs() {
				infoColor.Printf("  %-24s %s\n", paths.Key(slug), resolved.Get(slug))
			}

			store := config.NewStore()
			configPath := resolved.Get(paths.Config)
			if err := store.Load(configPath); err != nil {
				errorColor.Printf("✗ config: %v\n", err)
				return err
			}
			successColor.Printf("✓ config: %s\n", configPath)

			if tz := store.GetString("application.date_timezone"); tz != "" {
				infoColor.Printf("  timezone: %s\n", tz)
			}
			infoColor.Printf("  debug: %v\n", !env.IsProduction())

			return nil
		},
	}
}

// newConfigDumpCmd creates the 'config dump' subcommand.
func newConfigDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the resolved configuration tree as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.ParseEnvironment(envName)
			if err != nil {
				return err
			}

			configPath, _ := paths.Resolve(basePath, env, paths.Config)
			store := config.NewStore()
			if err := store.Load(configPath); err != nil {
				return err
			}

			out, err := yaml.Marshal(store.Tree())
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = os.Stdout.Write(out)
			return err
		},
	}
}
