/*
Copyright © 2025 Sun Asterisk Inc.

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/oaktree-lab/shytrace/internal/config"
	clierrors "github.com/oaktree-lab/shytrace/internal/errors"
	"github.com/oaktree-lab/shytrace/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	debugMode bool
	quietMode bool
	// Global context for graceful shutdown
	globalCtx context.Context
	// userConfig is loaded before any command runs
	userConfig *config.UserConfig
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shytrace",
	Short: "Shorten stack traces by hiding the folder prefix they share",
	Long: `shytrace rewrites .NET stack traces so that every "in <path>:line N" frame
drops the folder prefix common to all frames. Traces stay readable without
exposing machine-local absolute paths.`,
	Example: `  shytrace shorten crash.txt             # Shorten a trace saved to a file
  dotnet run 2>&1 | shytrace shorten      # Shorten a trace from stdin
  shytrace demo                           # Show raw and shy traces side by side`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return clierrors.NewConfigError(err, "Failed to read "+config.GetConfigFile())
		}
		if err := cfg.Validate(); err != nil {
			return clierrors.NewConfigError(err, "Invalid configuration in "+config.GetConfigFile())
		}
		userConfig = cfg

		// Logging is best effort; the tool works without a log file
		if err := logger.Init(cfg.LogLevel, debugMode); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
		return nil
	},
	SilenceErrors: true,
	SilenceUsage:  true,
	// Enable command suggestions for typos
	SuggestionsMinimumDistance: 2,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Suppress non-error output")

	// Initialize custom help formatting
	InitHelp()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(GetContext())
	if err == nil {
		logger.Close()
		return
	}
	logger.Error("Command failed", err)
	logger.Close()
	fmt.Fprintln(os.Stderr, "Error: "+clierrors.FormatError(err, debugMode))
	os.Exit(int(clierrors.CodeOf(err)))
}

// SetContext sets the global context for graceful shutdown support
func SetContext(ctx context.Context) {
	globalCtx = ctx
}

// GetContext returns the global context, or background context if not set
func GetContext() context.Context {
	if globalCtx != nil {
		return globalCtx
	}
	return context.Background()
}

// currentConfig returns the loaded configuration, or defaults when a command
// runs without the root pre-run hook
func currentConfig() *config.UserConfig {
	if userConfig != nil {
		return userConfig
	}
	return config.DefaultConfig()
}
