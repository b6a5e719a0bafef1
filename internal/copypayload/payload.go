// Package copypayload builds the textual bundle for the `copy` subcommand:
// a compact file tree followed by each file's content with a line-number
// gutter, suitable for pasting into a chat window.
package copypayload

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/loctok/loctok/internal/render"
	"github.com/loctok/loctok/internal/tokenizer"
)

const ruleWidth = 80

// Result is the built payload plus its own line/token counts, tokenized
// with the same encoding used for the scan.
type Result struct {
	Payload string
	Lines   int
	Tokens  int
}

// Build reads each of paths (relative to root) and assembles the payload:
// a compact tree of every included file, then per-file sections with
// 1-based line-number gutters. Section headers render the root-relative
// path with a leading slash (`/src/main.go:`).
func Build(root string, paths []string, enc tokenizer.Encoding) (Result, error) {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	var buf bytes.Buffer
	render.CompactTree(&buf, sorted)

	var lines int
	for _, rel := range sorted {
		data, err := os.ReadFile(filepath.Join(root, rel))
		if err != nil {
			return Result{}, fmt.Errorf("reading %s for copy payload: %w", rel, err)
		}
		buf.WriteString("\n/")
		buf.WriteString(rel)
		buf.WriteString(":\n")
		buf.WriteString(strings.Repeat("-", ruleWidth))
		buf.WriteString("\n")
		lines += writeGutteredLines(&buf, data)
	}

	payload := buf.String()
	return Result{
		Payload: payload,
		Lines:   lines,
		Tokens:  enc.Count(payload),
	}, nil
}

// writeGutteredLines writes data's lines each prefixed by "<n> | ", 1-based,
// with no leading zero padding, and returns how many lines it wrote. A
// trailing newline in data does not produce a phantom final empty line,
// but a file whose entire content is "\n" still has one (empty) line and
// gets its `1 | ` gutter; only a zero-byte file writes nothing.
// The return value, not the payload's total newline count (which also
// includes the tree header and per-file path/rule lines), is what "Copied
// N lines" in the copy subcommand's summary reports.
func writeGutteredLines(buf *bytes.Buffer, data []byte) int {
	if len(data) == 0 {
		return 0
	}
	text := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		fmt.Fprintf(buf, "%d | %s\n", i+1, line)
	}
	return len(lines)
}
