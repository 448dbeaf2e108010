package shytrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Line
	}{
		{
			name:  "frame with file info",
			input: `   at App.Sub.Class1.Test2() in C:\Projects\App\Sub\Class1.cs:line 10`,
			want: Line{
				Raw:     `   at App.Sub.Class1.Test2() in C:\Projects\App\Sub\Class1.cs:line 10`,
				Matched: true,
				Frame:   Frame{Folder: `C:\Projects\App\Sub\`, File: "Class1.cs", Tail: ":line 10"},
			},
		},
		{
			name:  "drive root folder",
			input: `   at Program.Main() in D:\Program.cs:line 1`,
			want: Line{
				Raw:     `   at Program.Main() in D:\Program.cs:line 1`,
				Matched: true,
				Frame:   Frame{Folder: `D:\`, File: "Program.cs", Tail: ":line 1"},
			},
		},
		{
			name:  "dotted folder segment",
			input: `   at X.Y() in C:\src\My.App\Y.cs:line 3`,
			want: Line{
				Raw:     `   at X.Y() in C:\src\My.App\Y.cs:line 3`,
				Matched: true,
				Frame:   Frame{Folder: `C:\src\My.App\`, File: "Y.cs", Tail: ":line 3"},
			},
		},
		{
			name:  "frame without file info",
			input: "   at System.Runtime.ExceptionServices.ExceptionDispatchInfo.Throw()",
			want:  Line{Raw: "   at System.Runtime.ExceptionServices.ExceptionDispatchInfo.Throw()"},
		},
		{
			name:  "trailer line",
			input: "--- End of stack trace from previous location ---",
			want:  Line{Raw: "--- End of stack trace from previous location ---"},
		},
		{
			name:  "lowercase drive",
			input: `   at A.B() in c:\src\B.cs:line 2`,
			want:  Line{Raw: `   at A.B() in c:\src\B.cs:line 2`},
		},
		{
			name:  "posix path",
			input: "   at A.B() in /home/dev/src/B.cs:line 2",
			want:  Line{Raw: "   at A.B() in /home/dev/src/B.cs:line 2"},
		},
		{
			name:  "other extension",
			input: `   at A.B() in C:\src\B.vb:line 2`,
			want:  Line{Raw: `   at A.B() in C:\src\B.vb:line 2`},
		},
		{
			name:  "missing tail",
			input: `   at A.B() in C:\src\B.cs`,
			want:  Line{Raw: `   at A.B() in C:\src\B.cs`},
		},
		{
			name:  "empty line",
			input: "",
			want:  Line{Raw: ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.input))
		})
	}
}
