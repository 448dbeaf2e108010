package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/oaktree-lab/shytrace/internal/shytrace"
)

// ColorEnabled resolves a color mode (auto, always, never) for out.
func ColorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	// https://no-color.org/
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// Highlighter renders shortened trace lines, coloring frame parts when
// enabled.
type Highlighter struct {
	enabled bool
	folder  lipgloss.Style
	file    lipgloss.Style
	tail    lipgloss.Style
	other   lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for out that emits 256-color
// sequences when enabled and plain text otherwise.
func NewRenderer(out io.Writer, enabled bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(out)
	if enabled {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewHighlighter creates a Highlighter writing to out.
func NewHighlighter(out io.Writer, enabled bool) *Highlighter {
	r := NewRenderer(out, enabled)
	// Frame text is emitted as captured, tabs included.
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return &Highlighter{
		enabled: enabled,
		folder:  base.Copy().Foreground(lipgloss.Color("244")),
		file:    base.Copy().Foreground(lipgloss.Color("42")).Bold(true),
		tail:    base.Copy().Foreground(lipgloss.Color("214")),
		other:   base.Copy().Foreground(lipgloss.Color("245")),
	}
}

// Render is shytrace.Analysis.Render with frame parts colored when enabled.
func (h *Highlighter) Render(a *shytrace.Analysis, newline string) string {
	if !h.enabled {
		return a.Render(newline)
	}
	var sb strings.Builder
	for _, l := range a.Lines {
		sb.WriteString(h.line(l, a.Prefix))
		sb.WriteString(newline)
	}
	return sb.String()
}

func (h *Highlighter) line(l shytrace.Line, prefix string) string {
	if !l.Matched {
		if l.Raw == "" {
			return ""
		}
		return h.other.Render(l.Raw)
	}
	var sb strings.Builder
	sb.WriteString(shytrace.FramePrefix)
	if folder := l.Frame.TrimFolder(prefix); folder != "" {
		sb.WriteString(h.folder.Render(folder))
	}
	sb.WriteString(h.file.Render(l.Frame.File))
	sb.WriteString(h.tail.Render(l.Frame.Tail))
	return sb.String()
}
