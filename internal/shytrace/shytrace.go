package shytrace

import (
	"errors"
	"fmt"
	"strings"
)

// Source is anything that may carry captured stack trace text. ok reports
// whether a trace was captured at all.
type Source interface {
	StackTrace() (trace string, ok bool)
}

// Analysis is the result of scanning one trace. Each line is recognised
// exactly once and the result is shared by prefix computation and rendering.
type Analysis struct {
	Lines []Line `json:"lines" yaml:"lines"`
	// Folders is the deduplicated set of folders, in first-seen order.
	Folders []string `json:"folders" yaml:"folders"`
	Prefix  string   `json:"prefix" yaml:"prefix"`
}

// Analyze splits text into lines, recognises frame references and computes
// the common folder prefix.
func Analyze(text string) *Analysis {
	raw := SplitLines(text)
	a := &Analysis{Lines: make([]Line, len(raw))}

	seen := make(map[string]struct{})
	for i, r := range raw {
		l := Extract(r)
		a.Lines[i] = l
		if !l.Matched {
			continue
		}
		if _, ok := seen[l.Frame.Folder]; !ok {
			seen[l.Frame.Folder] = struct{}{}
			a.Folders = append(a.Folders, l.Frame.Folder)
		}
	}
	a.Prefix = CommonPrefix(a.Folders)
	return a
}

// Matched returns the number of recognised frame lines.
func (a *Analysis) Matched() int {
	n := 0
	for _, l := range a.Lines {
		if l.Matched {
			n++
		}
	}
	return n
}

// Render joins the rewritten lines, writing newline after every line
// including the last one.
func (a *Analysis) Render(newline string) string {
	var sb strings.Builder
	for _, l := range Rewrite(a.Lines, a.Prefix) {
		sb.WriteString(l)
		sb.WriteString(newline)
	}
	return sb.String()
}

// Shorten returns the shy rendering of text using DefaultNewline. An empty
// text means no trace is available and yields "".
func Shorten(text string) string {
	if text == "" {
		return ""
	}
	return Analyze(text).Render(DefaultNewline)
}

// AnalyzeSource scans the trace carried by src. It reports false for a nil
// source, one without a captured trace, or an empty trace.
func AnalyzeSource(src Source) (*Analysis, bool) {
	if src == nil {
		return nil, false
	}
	trace, ok := src.StackTrace()
	if !ok || trace == "" {
		return nil, false
	}
	return Analyze(trace), true
}

// AnalyzeError is AnalyzeSource for the first error in err's chain that is
// a Source.
func AnalyzeError(err error) (*Analysis, bool) {
	var src Source
	if !errors.As(err, &src) {
		return nil, false
	}
	return AnalyzeSource(src)
}

// Generate returns the shy rendering of the trace carried by src. A nil
// source, or one without a captured trace, yields "".
func Generate(src Source) string {
	a, ok := AnalyzeSource(src)
	if !ok {
		return ""
	}
	return a.Render(DefaultNewline)
}

// FromError finds the first error in err's chain that is a Source and
// returns its shy trace.
func FromError(err error) string {
	a, ok := AnalyzeError(err)
	if !ok {
		return ""
	}
	return a.Render(DefaultNewline)
}

// Raw joins the lines as captured, writing newline between them.
func (a *Analysis) Raw(newline string) string {
	raw := make([]string, len(a.Lines))
	for i, l := range a.Lines {
		raw[i] = l.Raw
	}
	return strings.Join(raw, newline)
}

// ParseNewline maps a terminator name to its characters. "auto" and "" map
// to DefaultNewline.
func ParseNewline(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return DefaultNewline, nil
	case "lf":
		return "\n", nil
	case "crlf":
		return "\r\n", nil
	case "cr":
		return "\r", nil
	}
	return "", fmt.Errorf("unknown newline %q (valid: auto, lf, crlf, cr)", name)
}
