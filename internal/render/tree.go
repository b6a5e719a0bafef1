package render

import (
	"fmt"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/loctok/loctok/internal/aggregate"
	"github.com/loctok/loctok/internal/filestat"
)

// treeNode is the in-memory trie node used to lay out the tree renderer.
// A directory's lines/tokens are the sum of its descendants.
type treeNode struct {
	name     string
	isDir    bool
	lines    uint64
	tokens   uint64
	children map[string]*treeNode
}

func buildTree(files []filestat.Record) *treeNode {
	root := &treeNode{name: ".", isDir: true, children: map[string]*treeNode{}}
	for _, f := range files {
		parts := strings.Split(path.Clean(filepath.ToSlash(f.Path)), "/")
		cur := root
		for i, part := range parts {
			if part == "." || part == "" {
				continue
			}
			last := i == len(parts)-1
			child, ok := cur.children[part]
			if !ok {
				child = &treeNode{name: part, isDir: !last, children: map[string]*treeNode{}}
				cur.children[part] = child
			}
			if last {
				child.lines = uint64(f.Lines)
				child.tokens = f.Tokens
			}
			cur = child
		}
	}
	aggregateTree(root)
	return root
}

// aggregateTree sums lines/tokens bottom-up, returning this node's totals.
func aggregateTree(n *treeNode) (uint64, uint64) {
	if !n.isDir {
		return n.lines, n.tokens
	}
	var sumLines, sumTokens uint64
	for _, c := range n.children {
		l, t := aggregateTree(c)
		sumLines += l
		sumTokens += t
	}
	n.lines, n.tokens = sumLines, sumTokens
	return sumLines, sumTokens
}

// sortedChildren splits a node's children into files and subdirectories,
// each ascending by name.
func sortedChildren(n *treeNode) (files, dirs []*treeNode) {
	for _, c := range n.children {
		if c.isDir {
			dirs = append(dirs, c)
		} else {
			files = append(files, c)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].name < dirs[j].name })
	return files, dirs
}

// connector picks the box-drawing glyph for the idx-th of total siblings in
// a visual print block: the topmost sibling gets ┌──, the bottommost gets
// └──, everything in between gets ├──. A lone sibling gets └──.
func connector(idx, total int) string {
	switch {
	case total == 1:
		return "└── "
	case idx == 0:
		return "┌── "
	case idx == total-1:
		return "└── "
	default:
		return "├── "
	}
}

// barFor returns the continuation segment for a child column: a bar when
// the rows it decorates sit between their parent's sibling connectors,
// blank when they fall outside that span.
func barFor(inSpan bool) string {
	if inSpan {
		return "│   "
	}
	return "    "
}

type treeLine struct {
	prefix string
	label  string
	lines  uint64
	tokens uint64
}

// render lays out a directory's subtree: subdirectories first (each
// recursively printing its own children above its own directory line), then
// n's own line, then n's files. conn is the connector glyph for n's own
// anchor line. barAbove decorates the rows printed above that line (the
// subdirectory blocks) and barBelow the rows below it (the files): a
// subtree's rows above its anchor lie inside the parent's connector span
// only when an earlier sibling connector exists above them, and the rows
// below only when a later one follows beneath.
func render(n *treeNode, prefix, conn, barAbove, barBelow string) []treeLine {
	files, dirs := sortedChildren(n)
	total := len(dirs) + len(files)

	var out []treeLine
	idx := 0
	for _, d := range dirs {
		out = append(out, render(d, prefix+barAbove, connector(idx, total), barFor(idx > 0), barFor(idx < total-1))...)
		idx++
	}
	out = append(out, treeLine{prefix: prefix + conn, label: n.name + "/", lines: n.lines, tokens: n.tokens})
	for _, f := range files {
		out = append(out, treeLine{
			prefix: prefix + barBelow + connector(idx, total),
			label:  f.name,
			lines:  f.lines,
			tokens: f.tokens,
		})
		idx++
	}
	return out
}

// renderRoot lays out the whole tree. The root is a special case: its line
// (./) is always printed last, below both its subdirectories and its own
// direct files, carrying the overall totals.
func renderRoot(root *treeNode) []treeLine {
	files, dirs := sortedChildren(root)
	total := len(dirs) + len(files)

	var out []treeLine
	idx := 0
	for _, d := range dirs {
		out = append(out, render(d, "", connector(idx, total), barFor(idx > 0), barFor(idx < total-1))...)
		idx++
	}
	for _, f := range files {
		out = append(out, treeLine{prefix: connector(idx, total), label: f.name, lines: f.lines, tokens: f.tokens})
		idx++
	}
	out = append(out, treeLine{label: "./", lines: root.lines, tokens: root.tokens})
	return out
}

// Tree renders the hierarchical, upside-down directory tree: subdirectories
// above their parent's line, files below, with right-aligned LOC/TOK
// columns sized to the widest comma-formatted value in the report.
func Tree(w io.Writer, report aggregate.Report) {
	root := buildTree(report.Files)
	entries := renderRoot(root)

	labelWidth, locWidth, tokWidth := 0, 0, 0
	locStrs := make([]string, len(entries))
	tokStrs := make([]string, len(entries))
	for i, e := range entries {
		if w := utf8.RuneCountInString(e.prefix + e.label); w > labelWidth {
			labelWidth = w
		}
		locStrs[i] = comma(e.lines)
		tokStrs[i] = comma(e.tokens)
		if w := utf8.RuneCountInString(locStrs[i]); w > locWidth {
			locWidth = w
		}
		if w := utf8.RuneCountInString(tokStrs[i]); w > tokWidth {
			tokWidth = w
		}
	}

	header := fmt.Sprintf("%-*s  %*s  %*s", labelWidth, "", locWidth, "LOC", tokWidth, "TOK")
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("─", utf8.RuneCountInString(header)))

	for i, e := range entries {
		label := e.prefix + e.label
		pad := labelWidth - utf8.RuneCountInString(label)
		fmt.Fprintf(w, "%s%s  %*s  %*s\n", label, strings.Repeat(" ", pad), locWidth, locStrs[i], tokWidth, tokStrs[i])
	}
}
