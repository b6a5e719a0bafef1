package render

import (
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
)

// buildNameTree builds a treeNode trie from bare relative paths, with no
// lines/tokens aggregation, for the copy payload's compact listing.
func buildNameTree(paths []string) *treeNode {
	root := &treeNode{name: ".", isDir: true, children: map[string]*treeNode{}}
	for _, p := range paths {
		parts := strings.Split(path.Clean(filepath.ToSlash(p)), "/")
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
			cur = child
		}
	}
	return root
}

// renderRootNames lays out the same subdirectories-above/files-below order
// as renderRoot, but carries no numeric aggregates.
func renderRootNames(root *treeNode) []treeLine {
	files, dirs := sortedChildren(root)
	total := len(dirs) + len(files)

	var out []treeLine
	idx := 0
	for _, d := range dirs {
		out = append(out, render(d, "", connector(idx, total), barFor(idx > 0), barFor(idx < total-1))...)
		idx++
	}
	for _, f := range files {
		out = append(out, treeLine{prefix: connector(idx, total), label: f.name})
		idx++
	}
	out = append(out, treeLine{label: "./"})
	return out
}

// CompactTree writes a names-only box-drawing tree for paths, with no
// numeric columns, for use in the copy payload header.
func CompactTree(w io.Writer, paths []string) {
	root := buildNameTree(paths)
	for _, e := range renderRootNames(root) {
		fmt.Fprintln(w, e.prefix+e.label)
	}
}
