// Package render implements the three report renderers (table, tree, json)
// and shared numeric formatting helpers.
package render

import "github.com/dustin/go-humanize"

// comma formats n with thousands separators, matching the table and tree
// renderers' right-aligned numeric column convention.
func comma(n uint64) string {
	return humanize.Comma(int64(n))
}
