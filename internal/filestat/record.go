// Package filestat implements the per-file read/validate/count pipeline:
// given a candidate path from internal/discovery, it reads the file,
// validates UTF-8, counts non-empty lines, resolves the language, and
// counts tokens with the configured encoding.
package filestat

import "github.com/loctok/loctok/internal/language"

// Record is the immutable per-file result produced by Run. Once emitted
// to the aggregator it is never mutated. Field order matches the JSON
// renderer's alphabetical key order: language, lines, path, tokens.
type Record struct {
	Language language.Language `json:"language"`
	Lines    uint32            `json:"lines"`
	Path     string            `json:"path"`
	Tokens   uint64            `json:"tokens"`
}
