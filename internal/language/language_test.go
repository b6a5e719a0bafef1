package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want Language
	}{
		{name: "go file", path: "main.go", want: "Go"},
		{name: "nested go file", path: "internal/cli/root.go", want: "Go"},
		{name: "rust file", path: "src/lib.rs", want: "Rust"},
		{name: "tsx file", path: "App.tsx", want: "TypeScript"},
		{name: "jsx file", path: "App.jsx", want: "JavaScript"},
		{name: "c header maps to C", path: "include/foo.h", want: "C"},
		{name: "cpp header maps to C++", path: "include/foo.hpp", want: "C++"},
		{name: "uppercase extension", path: "Main.GO", want: "Go"},
		{name: "no extension", path: "Makefile", want: Other},
		{name: "dotfile with no real extension", path: ".gitignore", want: Other},
		{name: "unknown extension", path: "a.xyz123", want: Other},
		{name: "markdown", path: "README.md", want: "Markdown"},
		{name: "yaml", path: "ci/build.yml", want: "YAML"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FromPath(tt.path))
		})
	}
}
