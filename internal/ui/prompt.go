package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmOverwrite asks whether an existing output file may be replaced
func ConfirmOverwrite(in io.Reader, out io.Writer, path string) (bool, error) {
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, "⚠  Warning: File '%s' already exists.\n", path)
	fmt.Fprint(out, "Do you want to overwrite it? (y/N): ")

	input, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return false, err
	}

	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes", nil
}
