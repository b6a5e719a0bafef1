package render

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/loctok/loctok/internal/aggregate"
)

// Table renders the per-language summary as a framed table: Language |
// lines of code | token count, rows descending by token count (ties broken
// by language name ascending), followed by a SUM row.
func Table(w io.Writer, report aggregate.Report) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.AppendHeader(table.Row{"Language", "lines of code", "token count"})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	var sumLines, sumTokens uint64
	for _, lt := range report.ByLanguage {
		tbl.AppendRow(table.Row{
			string(lt.Language),
			comma(lt.Lines),
			comma(lt.Tokens),
		})
		sumLines += lt.Lines
		sumTokens += lt.Tokens
	}

	tbl.AppendFooter(table.Row{"SUM:", comma(sumLines), comma(sumTokens)})
	tbl.Render()
}
