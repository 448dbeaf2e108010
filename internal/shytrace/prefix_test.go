package shytrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		name    string
		folders []string
		want    string
	}{
		{"empty set", nil, ""},
		{"single folder", []string{`C:\Projects\App\`}, `C:\Projects\App\`},
		{
			name:    "nested folders",
			folders: []string{`C:\Projects\App\Sub\`, `C:\Projects\App\`},
			want:    `C:\Projects\App\`,
		},
		{
			name:    "siblings",
			folders: []string{`C:\Projects\App\A\`, `C:\Projects\App\B\`, `C:\Projects\App\B\C\`},
			want:    `C:\Projects\App\`,
		},
		{
			name:    "different drives",
			folders: []string{`C:\src\`, `D:\src\`},
			want:    "",
		},
		{
			name:    "token boundary is respected",
			folders: []string{`C:\Proj\`, `C:\Project\`},
			want:    `C:\`,
		},
		{
			name:    "repeated folder",
			folders: []string{`C:\a\`, `C:\a\`},
			want:    `C:\a\`,
		},
		{
			name:    "repeated folders among others",
			folders: []string{`C:\a\b\`, `C:\a\b\`, `C:\a\c\`},
			want:    `C:\a\`,
		},
		{
			name:    "case sensitive",
			folders: []string{`C:\Src\App\`, `C:\src\App\`},
			want:    `C:\`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommonPrefix(tt.folders))
		})
	}
}

func TestCommonPrefix_OrderIndependent(t *testing.T) {
	a := []string{`C:\w\app\core\`, `C:\w\app\`, `C:\w\app\ui\`}
	b := []string{`C:\w\app\ui\`, `C:\w\app\core\`, `C:\w\app\`}
	assert.Equal(t, CommonPrefix(a), CommonPrefix(b))
	assert.Equal(t, `C:\w\app\`, CommonPrefix(a))
}

func TestCommonPrefix_NotCharacterWise(t *testing.T) {
	got := CommonPrefix([]string{`C:\Proj\`, `C:\Project\`})
	assert.NotEqual(t, `C:\Proj`, got)
	assert.NotContains(t, got, "Proj")
}
