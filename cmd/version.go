package cmd

import (
	"fmt"
	"runtime"

	"github.com/oaktree-lab/shytrace/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Display version information",
	Example: "  shytrace version          # Show version info",
	Args:    cobra.NoArgs,
	Run:     runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "shytrace\n")
	fmt.Fprintf(out, "  Version:    %s\n", version.Version)
	fmt.Fprintf(out, "  Commit:     %s\n", version.CommitSHA)
	fmt.Fprintf(out, "  Built:      %s\n", version.BuildDate)
	fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
