package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loctok/loctok/internal/filestat"
	"github.com/loctok/loctok/internal/language"
	"github.com/loctok/loctok/internal/tokenizer"
)

func newTestEncoding(t *testing.T) tokenizer.Encoding {
	t.Helper()
	enc, err := tokenizer.New(tokenizer.Default)
	require.NoError(t, err)
	return enc
}

func TestAggregator_Add_MergesByLanguage(t *testing.T) {
	t.Parallel()

	a := New(nil)
	a.Add(filestat.Record{Path: "a.go", Lines: 10, Tokens: 100, Language: "Go"})
	a.Add(filestat.Record{Path: "b.go", Lines: 5, Tokens: 50, Language: "Go"})
	a.Add(filestat.Record{Path: "c.rs", Lines: 7, Tokens: 70, Language: "Rust"})

	assert.Equal(t, 3, a.FilesSeen())

	report := a.Report(".", newTestEncoding(t))
	assert.Equal(t, uint64(220), report.Total)
	require.Len(t, report.ByLanguage, 2)

	byLang := map[language.Language]LanguageTotal{}
	for _, lt := range report.ByLanguage {
		byLang[lt.Language] = lt
	}
	assert.Equal(t, uint64(15), byLang["Go"].Lines)
	assert.Equal(t, uint64(150), byLang["Go"].Tokens)
	assert.Equal(t, uint64(7), byLang["Rust"].Lines)
}

func TestAggregator_Report_PreservesPathVerbatim(t *testing.T) {
	t.Parallel()

	a := New(nil)
	report := a.Report("./some/dir", newTestEncoding(t))
	assert.Equal(t, "./some/dir", report.Path)
}

func TestAggregator_Report_SortedByTokensDescending(t *testing.T) {
	t.Parallel()

	a := New(nil)
	a.Add(filestat.Record{Path: "low.go", Tokens: 5, Language: "Go"})
	a.Add(filestat.Record{Path: "high.go", Tokens: 50, Language: "Go"})
	a.Add(filestat.Record{Path: "mid.go", Tokens: 20, Language: "Go"})

	report := a.Report(".", newTestEncoding(t))
	require.Len(t, report.Files, 3)
	assert.Equal(t, "high.go", report.Files[0].Path)
	assert.Equal(t, "mid.go", report.Files[1].Path)
	assert.Equal(t, "low.go", report.Files[2].Path)
}

func TestAggregator_Report_TieBreaksByPathAscending(t *testing.T) {
	t.Parallel()

	a := New(nil)
	a.Add(filestat.Record{Path: "zeta.go", Tokens: 10, Language: "Go"})
	a.Add(filestat.Record{Path: "alpha.go", Tokens: 10, Language: "Go"})

	report := a.Report(".", newTestEncoding(t))
	require.Len(t, report.Files, 2)
	assert.Equal(t, "alpha.go", report.Files[0].Path)
	assert.Equal(t, "zeta.go", report.Files[1].Path)
}

func TestAggregator_RecordIOError(t *testing.T) {
	t.Parallel()

	a := New(nil)
	a.RecordIOError("a.go", assert.AnError)
	a.RecordIOError("b.go", assert.AnError)
	assert.Equal(t, 2, a.IOErrors())
	assert.Equal(t, 0, a.FilesSeen())
}

func TestAggregator_OnProgress_CalledWithRunningCount(t *testing.T) {
	t.Parallel()

	var seen []int
	a := New(func(n int) { seen = append(seen, n) })

	a.Add(filestat.Record{Path: "a.go", Language: "Go"})
	a.Add(filestat.Record{Path: "b.go", Language: "Go"})

	assert.Equal(t, []int{1, 2}, seen)
}

func TestAggregator_Report_ModelsAndTokenNumberFromEncoding(t *testing.T) {
	t.Parallel()

	a := New(nil)
	enc := newTestEncoding(t)
	report := a.Report(".", enc)

	info := tokenizer.InfoFor(enc.Name())
	assert.Equal(t, info.Models, report.Models)
	assert.Equal(t, info.NominalContext, report.TokenNumber)
	assert.Equal(t, enc.Name(), report.Encoding)
}
