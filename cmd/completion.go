package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long:  "Generate the autocompletion script for shytrace for the specified shell.",
	Example: `  source <(shytrace completion bash)
  shytrace completion zsh > "${fpath[1]}/_shytrace"
  shytrace completion fish > ~/.config/fish/completions/shytrace.fish
  shytrace completion powershell >> $PROFILE`,
	DisableFlagsInUseLine: true,
}

type shellCompletion struct {
	shell   string
	example string
	gen     func(w io.Writer) error
}

func shellCompletions() []shellCompletion {
	return []shellCompletion{
		{"bash", "  source <(shytrace completion bash)", func(w io.Writer) error {
			return rootCmd.GenBashCompletionV2(w, true)
		}},
		{"zsh", `  shytrace completion zsh > "${fpath[1]}/_shytrace"`, rootCmd.GenZshCompletion},
		{"fish", "  shytrace completion fish | source", func(w io.Writer) error {
			return rootCmd.GenFishCompletion(w, true)
		}},
		{"powershell", "  shytrace completion powershell | Out-String | Invoke-Expression", rootCmd.GenPowerShellCompletionWithDesc},
	}
}

func init() {
	for _, sc := range shellCompletions() {
		gen := sc.gen
		completionCmd.AddCommand(&cobra.Command{
			Use:                   sc.shell,
			Short:                 "Generate the autocompletion script for " + sc.shell,
			Example:               sc.example,
			DisableFlagsInUseLine: true,
			Args:                  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return gen(cmd.OutOrStdout())
			},
		})
	}
	rootCmd.AddCommand(completionCmd)
}
