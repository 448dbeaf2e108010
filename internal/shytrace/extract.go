package shytrace

import "regexp"

// Separator is the path separator used by recognised frame references. It is
// fixed by the trace format, not by the host running the shortening.
const Separator = `\`

// framePattern captures folder, file and tail of a frame reference such as
// ` in C:\Projects\App\Program.cs:line 5`.
var framePattern = regexp.MustCompile(` in ([A-Z]:\\(?:[^\\]*\\)*)([^.\\]+\.cs)(:.+)`)

// Frame is the decomposition of a recognised frame reference.
type Frame struct {
	// Folder always ends with Separator.
	Folder string `json:"folder" yaml:"folder"`
	// File is the bare file name including its extension.
	File string `json:"file" yaml:"file"`
	// Tail is everything after File, starting with ':'.
	Tail string `json:"tail" yaml:"tail"`
}

// Line is one line of a trace. Frame is only meaningful when Matched is set.
type Line struct {
	Raw     string `json:"raw" yaml:"raw"`
	Matched bool   `json:"matched" yaml:"matched"`
	Frame   Frame  `json:"frame,omitzero" yaml:"frame,omitempty"`
}

// Extract recognises the frame reference in raw, if any.
func Extract(raw string) Line {
	m := framePattern.FindStringSubmatch(raw)
	if m == nil {
		return Line{Raw: raw}
	}
	return Line{
		Raw:     raw,
		Matched: true,
		Frame:   Frame{Folder: m[1], File: m[2], Tail: m[3]},
	}
}
