package cmd

import (
	"fmt"

	"github.com/oaktree-lab/shytrace/internal/sample"
	"github.com/oaktree-lab/shytrace/internal/shytrace"
	"github.com/oaktree-lab/shytrace/internal/ui"
	"github.com/spf13/cobra"
)

const demoSeparator = "-------------------"

var demoRoot string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Throw sample exceptions and print raw and shy traces",
	Long: `Throw exceptions from nested sample namespaces and classes and print, for each,
the raw stack trace followed by its shy rendering.`,
	Example: `  shytrace demo
  shytrace demo --root 'D:\build\agent\_work\3\s\App'`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoRoot, "root", sample.DefaultRoot, "Project folder of the sample sources")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	out := cmd.OutOrStdout()
	h := ui.NewHighlighter(out, ui.ColorEnabled(cfg.Color, out))
	newline := cfg.Terminator()

	for i, s := range sample.Scenarios(demoRoot) {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, s.Name)

		err := s.Run()
		a, ok := shytrace.AnalyzeError(err)
		if !ok {
			return fmt.Errorf("%s: expected a thrown exception with a trace, got %v", s.Name, err)
		}

		fmt.Fprintln(out, demoSeparator)
		fmt.Fprintln(out, a.Raw(newline))
		fmt.Fprintln(out, demoSeparator)
		fmt.Fprintln(out, h.Render(a, newline))
		fmt.Fprintln(out, demoSeparator)
	}
	return nil
}
