// Package aggregate merges per-file filestat.Records into language totals
// and a final, deterministically ordered Report.
package aggregate

import (
	"sort"

	"github.com/loctok/loctok/internal/filestat"
	"github.com/loctok/loctok/internal/language"
)

// LanguageTotal is the running total for one distinct language.
type LanguageTotal struct {
	Language language.Language `json:"language"`
	Lines    uint64            `json:"lines"`
	Tokens   uint64            `json:"tokens"`
}

// Report is the final, immutable result of a scan. Field order matches the
// JSON renderer's alphabetical key order: by_language, encoding, files,
// models, path, token_number, total.
type Report struct {
	ByLanguage  []LanguageTotal   `json:"by_language"`
	Encoding    string            `json:"encoding"`
	Files       []filestat.Record `json:"files"`
	Models      []string          `json:"models"`
	Path        string            `json:"path"`
	TokenNumber int               `json:"token_number"`
	Total       uint64            `json:"total"`
}

// sortFiles orders files descending by tokens, ties broken by path
// ascending.
func sortFiles(files []filestat.Record) {
	sort.Slice(files, func(i, j int) bool {
		if files[i].Tokens != files[j].Tokens {
			return files[i].Tokens > files[j].Tokens
		}
		return files[i].Path < files[j].Path
	})
}

// sortLanguageTotals orders totals descending by tokens, ties broken by
// language name ascending.
func sortLanguageTotals(totals []LanguageTotal) {
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Tokens != totals[j].Tokens {
			return totals[i].Tokens > totals[j].Tokens
		}
		return totals[i].Language < totals[j].Language
	})
}
