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
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/oaktree-lab/shytrace/internal/config"
	clierrors "github.com/oaktree-lab/shytrace/internal/errors"
	"github.com/oaktree-lab/shytrace/internal/logger"
	"github.com/oaktree-lab/shytrace/internal/shytrace"
	"github.com/oaktree-lab/shytrace/internal/ui"
	"github.com/spf13/cobra"
)

var (
	shortenNewline    = newChoiceValue("auto", "auto", "lf", "crlf", "cr")
	shortenColor      = newChoiceValue(config.ColorAuto, config.ColorAuto, config.ColorAlways, config.ColorNever)
	shortenOutput     string
	shortenForce      bool
	shortenShowPrefix bool
)

var shortenCmd = &cobra.Command{
	Use:   "shorten [file...]",
	Short: "Strip the shared folder prefix from stack trace frames",
	Long: `Read one or more stack traces and print their shy rendering.

Every frame of the form "in C:\<folders>\<File>.cs:<tail>" is rewritten as
"  in <folders below the shared prefix>\<File>.cs:<tail>". Lines without a file
reference are printed unchanged. Each file is shortened independently; with no
file, or "-", the trace is read from standard input.`,
	Example: `  shytrace shorten crash.txt                 # Print the shy trace
  shytrace shorten crash.txt -o shy.txt      # Write it to a file
  shytrace shorten --show-prefix < crash.txt # Also report the stripped prefix
  shytrace shorten --newline crlf a.txt b.txt`,
	RunE: runShorten,
}

func init() {
	shortenCmd.Flags().Var(shortenNewline, "newline", "Output line terminator")
	shortenCmd.Flags().Var(shortenColor, "color", "Highlight frame parts")
	shortenCmd.Flags().StringVarP(&shortenOutput, "output", "o", "", "Write the result to a file instead of stdout")
	shortenCmd.Flags().BoolVar(&shortenForce, "force", false, "Overwrite the output file without asking")
	shortenCmd.Flags().BoolVar(&shortenShowPrefix, "show-prefix", false, "Print the stripped prefix to stderr")
	rootCmd.AddCommand(shortenCmd)
}

func runShorten(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	newline, err := shytrace.ParseNewline(valueOr(cmd.Flags(), "newline", cfg.Newline))
	if err != nil {
		return clierrors.NewUsageError(err.Error())
	}
	colorMode := valueOr(cmd.Flags(), "color", cfg.Color)
	showPrefix := shortenShowPrefix || cfg.ShowPrefix

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}

	var out io.Writer = cmd.OutOrStdout()
	var buf bytes.Buffer
	if shortenOutput != "" {
		if err := confirmOutput(cmd, inputs); err != nil {
			return err
		}
		out = &buf
	}
	h := ui.NewHighlighter(out, ui.ColorEnabled(colorMode, out))

	for _, input := range inputs {
		if err := cmd.Context().Err(); err != nil {
			return clierrors.NewError(err, "Interrupted")
		}
		text, err := readTrace(cmd.InOrStdin(), input)
		if err != nil {
			return err
		}
		if text == "" {
			logger.Debug("No trace in %s", input)
			continue
		}

		a := shytrace.Analyze(text)
		logger.Log.Debug().
			Str("input", input).
			Int("lines", len(a.Lines)).
			Int("frames", a.Matched()).
			Int("folders", len(a.Folders)).
			Str("prefix", a.Prefix).
			Msg("Shortened trace")

		if showPrefix {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: prefix %q\n", input, a.Prefix)
		}
		fmt.Fprint(out, h.Render(a, newline))
	}

	if shortenOutput == "" {
		return nil
	}
	if err := os.WriteFile(shortenOutput, buf.Bytes(), 0644); err != nil {
		return clierrors.NewInputError(err, "Cannot write "+shortenOutput)
	}
	logger.Info("Wrote shy trace to %s", shortenOutput)
	if !quietMode {
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %s\n", shortenOutput)
	}
	return nil
}

// confirmOutput asks before replacing an existing output file. The prompt
// reads stdin, so it is unavailable when the trace itself comes from stdin.
func confirmOutput(cmd *cobra.Command, inputs []string) error {
	if shortenForce {
		return nil
	}
	if _, err := os.Stat(shortenOutput); os.IsNotExist(err) {
		return nil
	}
	for _, in := range inputs {
		if in == stdinName {
			return clierrors.NewUsageError(fmt.Sprintf("%s already exists; use --force to overwrite it", shortenOutput))
		}
	}
	ok, err := ui.ConfirmOverwrite(cmd.InOrStdin(), cmd.ErrOrStderr(), shortenOutput)
	if err != nil {
		return clierrors.NewInputError(err, "Failed to read confirmation")
	}
	if !ok {
		return clierrors.NewUsageError("Output file exists; nothing written")
	}
	return nil
}
