package filestat

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loctok/loctok/internal/discovery"
	"github.com/loctok/loctok/internal/tokenizer"
)

// fakeSink collects Records and I/O errors without any language- or
// encoding-specific behavior, for isolating Run's own logic in tests.
type fakeSink struct {
	mu      sync.Mutex
	records []Record
	ioErrs  []string
}

func (f *fakeSink) Add(r Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, r)
}

func (f *fakeSink) RecordIOError(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ioErrs = append(f.ioErrs, path)
}

func writeFile(t *testing.T, dir, name, content string) discovery.Candidate {
	t.Helper()
	abs := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
	require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	return discovery.Candidate{Path: name, AbsPath: abs}
}

func newTestEncoding(t *testing.T) tokenizer.Encoding {
	t.Helper()
	enc, err := tokenizer.New(tokenizer.Default)
	require.NoError(t, err)
	return enc
}

func TestRun_CountsLinesAndTokens(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	candidates := []discovery.Candidate{
		writeFile(t, dir, "main.go", "package main\n\nfunc main() {}\n"),
		writeFile(t, dir, "empty.go", ""),
	}

	sink := &fakeSink{}
	err := Run(context.Background(), candidates, newTestEncoding(t), 0, sink)
	require.NoError(t, err)

	sort.Slice(sink.records, func(i, j int) bool { return sink.records[i].Path < sink.records[j].Path })
	require.Len(t, sink.records, 2)

	assert.Equal(t, "empty.go", sink.records[0].Path)
	assert.Zero(t, sink.records[0].Lines)
	assert.Zero(t, sink.records[0].Tokens)

	assert.Equal(t, "main.go", sink.records[1].Path)
	assert.Equal(t, uint32(2), sink.records[1].Lines)
	assert.Positive(t, sink.records[1].Tokens)
}

func TestRun_SkipsNonUTF8Silently(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	abs := filepath.Join(dir, "binary.dat")
	require.NoError(t, os.WriteFile(abs, []byte{0xff, 0xfe, 0x00, 0x01}, 0o644))
	candidates := []discovery.Candidate{{Path: "binary.dat", AbsPath: abs}}

	sink := &fakeSink{}
	err := Run(context.Background(), candidates, newTestEncoding(t), 0, sink)
	require.NoError(t, err)

	assert.Empty(t, sink.records)
	assert.Empty(t, sink.ioErrs)
}

func TestRun_RecordsIOErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	candidates := []discovery.Candidate{
		{Path: "missing.go", AbsPath: filepath.Join(dir, "missing.go")},
	}

	sink := &fakeSink{}
	err := Run(context.Background(), candidates, newTestEncoding(t), 0, sink)
	require.NoError(t, err)

	assert.Empty(t, sink.records)
	assert.Equal(t, []string{"missing.go"}, sink.ioErrs)
}

func TestCountNonEmptyLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want uint32
	}{
		{name: "empty", data: "", want: 0},
		{name: "single line no trailing newline", data: "hello", want: 1},
		{name: "single line with trailing newline", data: "hello\n", want: 1},
		{name: "blank lines ignored", data: "a\n\n\nb\n", want: 2},
		{name: "whitespace-only line ignored", data: "a\n   \nb\n", want: 2},
		{name: "trailing blank line not double counted", data: "a\nb\n\n", want: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, countNonEmptyLines([]byte(tt.data)))
		})
	}
}
