package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/oaktree-lab/shytrace/internal/shytrace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trace = "System.Exception: boom\n" +
	`   at A.B() in C:\src\app\lib\B.cs:line 1` + "\n" +
	`   at A.C() in C:\src\app\C.cs:line 2`

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, ColorEnabled("always", &buf))
	assert.False(t, ColorEnabled("never", &buf))
	assert.False(t, ColorEnabled("auto", &buf), "non-file writers are never terminals")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled("auto", &buf))
}

func TestHighlighter_Disabled(t *testing.T) {
	var buf bytes.Buffer
	a := shytrace.Analyze(trace)
	h := NewHighlighter(&buf, false)
	assert.Equal(t, a.Render("\n"), h.Render(a, "\n"))
}

func TestHighlighter_Enabled(t *testing.T) {
	var buf bytes.Buffer
	a := shytrace.Analyze(trace)
	out := NewHighlighter(&buf, true).Render(a, "\n")

	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, `C:\src\app\`)
	assert.Contains(t, out, "B.cs")
	assert.Equal(t, 3, strings.Count(out, "\n"))
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n")[1:] {
		assert.True(t, strings.HasPrefix(line, shytrace.FramePrefix), line)
	}
}

func TestHighlighter_KeepsTabs(t *testing.T) {
	var buf bytes.Buffer
	a := shytrace.Analyze("   at A.B() in C:\\x\\B.cs:line 1\tx\n\tplain")
	out := NewHighlighter(&buf, true).Render(a, "\n")

	assert.Contains(t, out, ":line 1\tx")
	assert.Contains(t, out, "\tplain")
	assert.NotContains(t, out, "    ")
}

func TestConfirmOverwrite(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"y", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := ConfirmOverwrite(strings.NewReader(tt.input), &out, "shy.txt")
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
		assert.Contains(t, out.String(), "'shy.txt' already exists")
	}

	_, err := ConfirmOverwrite(strings.NewReader(""), &bytes.Buffer{}, "shy.txt")
	assert.Error(t, err)
}
