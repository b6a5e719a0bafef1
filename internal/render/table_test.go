package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loctok/loctok/internal/aggregate"
)

func TestTable_RendersHeaderRowsAndSum(t *testing.T) {
	t.Parallel()

	report := aggregate.Report{
		ByLanguage: []aggregate.LanguageTotal{
			{Language: "Go", Lines: 1000, Tokens: 20000},
			{Language: "Rust", Lines: 5, Tokens: 50},
		},
	}

	var buf bytes.Buffer
	Table(&buf, report)
	out := buf.String()

	assert.Contains(t, out, "Language")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "Rust")
	assert.Contains(t, out, "1,000")
	assert.Contains(t, out, "20,000")
	assert.Contains(t, out, "SUM:")
	assert.Contains(t, out, "1,005")
	assert.Contains(t, out, "20,050")

	goIdx := strings.Index(out, "Go")
	rustIdx := strings.Index(out, "Rust")
	sumIdx := strings.Index(out, "SUM:")
	assert.True(t, goIdx < rustIdx && rustIdx < sumIdx, "rows must appear in report order with SUM last")
}

func TestTable_EmptyReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	Table(&buf, aggregate.Report{})
	assert.Contains(t, buf.String(), "SUM:")
}
