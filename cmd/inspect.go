package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	clierrors "github.com/oaktree-lab/shytrace/internal/errors"
	"github.com/oaktree-lab/shytrace/internal/shytrace"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var inspectFormat = newChoiceValue("text", "text", "json", "yaml")

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Show how a trace is decomposed into frames",
	Long: `Print the analysis behind a shy trace: the folder set, the common prefix and,
for each line, whether it was recognised as a frame and its folder, file and
tail parts.`,
	Example: `  shytrace inspect crash.txt
  shytrace inspect crash.txt --format json | jq .prefix`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().VarP(inspectFormat, "format", "f", "Output format")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	input := stdinName
	if len(args) == 1 {
		input = args[0]
	}
	text, err := readTrace(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}

	a := &shytrace.Analysis{}
	if text != "" {
		a = shytrace.Analyze(text)
	}

	out := cmd.OutOrStdout()
	switch inspectFormat.String() {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(a)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		err = enc.Encode(a)
		if err == nil {
			err = enc.Close()
		}
	default:
		err = writeInspectText(out, a)
	}
	if err != nil {
		return clierrors.NewError(err, "Failed to write analysis")
	}
	return nil
}

func writeInspectText(w io.Writer, a *shytrace.Analysis) error {
	fmt.Fprintf(w, "Prefix:  %q\n", a.Prefix)
	fmt.Fprintf(w, "Folders: %d\n", len(a.Folders))
	for _, f := range a.Folders {
		fmt.Fprintf(w, "  %s\n", f)
	}
	fmt.Fprintf(w, "Lines:   %d (%d frames)\n\n", len(a.Lines), a.Matched())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKIND\tFOLDER\tFILE\tTAIL")
	for i, l := range a.Lines {
		if !l.Matched {
			fmt.Fprintf(tw, "%d\ttext\t\t\t%q\n", i+1, l.Raw)
			continue
		}
		fmt.Fprintf(tw, "%d\tframe\t%s\t%s\t%s\n", i+1, l.Frame.TrimFolder(a.Prefix), l.Frame.File, l.Frame.Tail)
	}
	return tw.Flush()
}
