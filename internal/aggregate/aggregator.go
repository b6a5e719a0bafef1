package aggregate

import (
	"sync"

	"github.com/loctok/loctok/internal/filestat"
	"github.com/loctok/loctok/internal/language"
	"github.com/loctok/loctok/internal/tokenizer"
)

// Aggregator merges filestat.Records from many concurrent workers into
// per-language totals and a path-indexed file list. It implements
// filestat.Sink.
//
// The critical section guarding every write is a single mutex covering
// only a slice append, a handful of integer adds, and a map lookup+insert,
// short enough not to serialize the scan under the concurrency levels the
// file-stat pipeline runs at.
type Aggregator struct {
	mu sync.Mutex

	files       []filestat.Record
	byLanguage  map[language.Language]*LanguageTotal
	totalTokens uint64
	totalLines  uint64
	filesSeen   int
	ioErrors    int

	onProgress func(filesSeen int)
}

// New creates an empty Aggregator. onProgress, if non-nil, is invoked
// (holding no internal lock) after every Add with the current running
// files-seen count; it backs the Progress side-channel.
func New(onProgress func(filesSeen int)) *Aggregator {
	return &Aggregator{
		byLanguage: make(map[language.Language]*LanguageTotal),
		onProgress: onProgress,
	}
}

// Add merges one Record. Safe for concurrent use.
func (a *Aggregator) Add(rec filestat.Record) {
	a.mu.Lock()
	a.files = append(a.files, rec)

	tot, ok := a.byLanguage[rec.Language]
	if !ok {
		tot = &LanguageTotal{Language: rec.Language}
		a.byLanguage[rec.Language] = tot
	}
	tot.Lines += uint64(rec.Lines)
	tot.Tokens += rec.Tokens

	a.totalLines += uint64(rec.Lines)
	a.totalTokens += rec.Tokens
	a.filesSeen++
	seen := a.filesSeen
	a.mu.Unlock()

	if a.onProgress != nil {
		a.onProgress(seen)
	}
}

// RecordIOError counts a per-entry I/O error. Excluded from totals; not
// fatal.
func (a *Aggregator) RecordIOError(path string, err error) {
	a.mu.Lock()
	a.ioErrors++
	a.mu.Unlock()
}

// FilesSeen returns the number of Records added so far.
func (a *Aggregator) FilesSeen() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.filesSeen
}

// IOErrors returns the count of per-entry I/O errors recorded so far.
func (a *Aggregator) IOErrors() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ioErrors
}

// Report produces the immutable, sorted Report for the given user-supplied
// path argument and encoding. path is preserved verbatim, never
// canonicalized.
func (a *Aggregator) Report(path string, enc tokenizer.Encoding) Report {
	a.mu.Lock()
	defer a.mu.Unlock()

	files := make([]filestat.Record, len(a.files))
	copy(files, a.files)
	sortFiles(files)

	totals := make([]LanguageTotal, 0, len(a.byLanguage))
	for _, t := range a.byLanguage {
		totals = append(totals, *t)
	}
	sortLanguageTotals(totals)

	info := tokenizer.InfoFor(enc.Name())

	return Report{
		Path:        path,
		Encoding:    enc.Name(),
		TokenNumber: info.NominalContext,
		Models:      info.Models,
		Total:       a.totalTokens,
		Files:       files,
		ByLanguage:  totals,
	}
}
