package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewExtFilter_Active(t *testing.T) {
	t.Parallel()

	assert.False(t, NewExtFilter(nil).Active(), "nil list must be inactive")
	assert.False(t, NewExtFilter([]string{}).Active(), "empty list must be inactive")
	assert.False(t, NewExtFilter([]string{"", "  "}).Active(), "only-blank entries must be inactive")
	assert.True(t, NewExtFilter([]string{"go"}).Active())
}

func TestExtFilter_Matches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		exts []string
		path string
		want bool
	}{
		{name: "inactive filter passes everything", exts: nil, path: "main.rs", want: true},
		{name: "exact match", exts: []string{"go"}, path: "main.go", want: true},
		{name: "case insensitive extension entry", exts: []string{"RS"}, path: "lib.rs", want: true},
		{name: "case insensitive path extension", exts: []string{"go"}, path: "main.GO", want: true},
		{name: "leading dot stripped from entry", exts: []string{".ts"}, path: "index.ts", want: true},
		{name: "non-matching extension", exts: []string{"go"}, path: "main.py", want: false},
		{name: "no extension on path", exts: []string{"go"}, path: "Makefile", want: false},
		{name: "nested path matches by final extension", exts: []string{"tsx"}, path: "src/app/page.tsx", want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := NewExtFilter(tt.exts)
			assert.Equal(t, tt.want, f.Matches(tt.path))
		})
	}
}
