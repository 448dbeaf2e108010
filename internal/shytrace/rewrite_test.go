package shytrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewrite(t *testing.T) {
	lines := []Line{
		Extract(`   at A.B() in C:\src\app\B.cs:line 2`),
		Extract("--- End of inner exception stack trace ---"),
		Extract(`   at A.C() in C:\src\app\sub\C.cs:line 7`),
		Extract("  "),
	}
	got := Rewrite(lines, `C:\src\app\`)
	assert.Equal(t, []string{
		"  in B.cs:line 2",
		"--- End of inner exception stack trace ---",
		`  in sub\C.cs:line 7`,
		"  ",
	}, got)
}

func TestRewrite_FolderOutsidePrefixIsKept(t *testing.T) {
	lines := []Line{Extract(`   at A.B() in D:\other\B.cs:line 2`)}
	got := Rewrite(lines, `C:\src\`)
	assert.Equal(t, []string{`  in D:\other\B.cs:line 2`}, got)
}

func TestRewrite_EmptyPrefix(t *testing.T) {
	lines := []Line{Extract(`   at A.B() in C:\src\B.cs:line 2`)}
	assert.Equal(t, []string{`  in C:\src\B.cs:line 2`}, Rewrite(lines, ""))
}

func TestFrame_TrimFolder(t *testing.T) {
	f := Frame{Folder: `C:\src\app\`, File: "A.cs", Tail: ":line 1"}
	assert.Equal(t, `app\`, f.TrimFolder(`C:\src\`))
	assert.Equal(t, "", f.TrimFolder(`C:\src\app\`))
	assert.Equal(t, `C:\src\app\`, f.TrimFolder(`D:\`))
}
