package cmd

import (
	"io"
	"os"
	"strings"

	clierrors "github.com/oaktree-lab/shytrace/internal/errors"
)

// stdinName selects standard input in place of a file
const stdinName = "-"

// readTrace reads a trace from path, or from stdin when path is "-". One
// final line terminator is dropped: saved traces end with one, and the shy
// rendering adds its own after the last line.
func readTrace(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinName {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		name := path
		if path == stdinName {
			name = "standard input"
		}
		return "", clierrors.NewInputError(err, "Cannot read trace from "+name)
	}
	return trimFinalNewline(string(data)), nil
}

func trimFinalNewline(s string) string {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		return s[:len(s)-1]
	}
	return s
}
