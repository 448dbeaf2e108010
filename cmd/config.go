package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/oaktree-lab/shytrace/internal/config"
	clierrors "github.com/oaktree-lab/shytrace/internal/errors"
	"github.com/oaktree-lab/shytrace/internal/logger"
	"github.com/spf13/cobra"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
	Example: `  shytrace config show      # Print the effective configuration
  shytrace config path      # Print the configuration file location
  shytrace config init      # Write a default configuration file`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(currentConfig(), "", "  ")
		if err != nil {
			return clierrors.NewError(err, "Failed to encode configuration")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFile())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetConfigFile()
		if _, err := os.Stat(path); err == nil && !configInitForce {
			return clierrors.NewUsageError(path + " already exists; use --force to replace it")
		}
		if err := config.DefaultConfig().Save(); err != nil {
			return clierrors.NewConfigError(err, "Failed to write "+path)
		}
		logger.Info("Wrote default configuration to %s", path)
		if !quietMode {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		}
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Replace an existing configuration file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
