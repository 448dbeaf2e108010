package shytrace

import "strings"

// Rewrite renders each line with prefix removed from recognised frames.
// Unmatched lines are returned verbatim. A frame whose folder does not start
// with prefix keeps its folder as is.
func Rewrite(lines []Line, prefix string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if !l.Matched {
			out[i] = l.Raw
			continue
		}
		out[i] = formatFrame(l.Frame, prefix)
	}
	return out
}

func formatFrame(f Frame, prefix string) string {
	return FramePrefix + f.TrimFolder(prefix) + f.File + f.Tail
}

// FramePrefix starts every rewritten frame line.
const FramePrefix = "  in "

// TrimFolder returns the folder with prefix removed, or the whole folder when
// it does not start with prefix.
func (f Frame) TrimFolder(prefix string) string {
	if strings.HasPrefix(f.Folder, prefix) {
		return f.Folder[len(prefix):]
	}
	return f.Folder
}
