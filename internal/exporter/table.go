package exporter

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"txtcli/pkg/contracts/domain"
)

// TotalTimeLabel is the first cell of the trailing row of the report table
const TotalTimeLabel = "Total Time"

// StatisticsRows converts records into report rows, one cell per column of
// domain.StatisticsColumns.
func StatisticsRows(records []domain.StatisticsRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.File,
			formatInt(r.Count),
			formatInt(r.NonZeroCount),
			FormatNumber(r.Mean),
			FormatNumber(r.Median),
			FormatNumber(r.Mode),
			FormatNumber(r.Variance),
			FormatNumber(r.StandardDeviation),
			FormatElapsed(r.Elapsed),
		})
	}
	return rows
}

// StatisticsTable renders the console table: one row per record, no row
// separators.
func StatisticsTable(records []domain.StatisticsRecord) string {
	t := newStatisticsWriter(records)
	return t.Render()
}

// StatisticsGrid renders the report table written to the results file: a
// grid with a separator after every row and a trailing total-time row.
func StatisticsGrid(records []domain.StatisticsRecord, total time.Duration) string {
	t := newStatisticsWriter(records)
	t.Style().Options.SeparateRows = true
	t.AppendRow(table.Row{TotalTimeLabel, FormatNumber(total.Seconds())})
	return t.Render()
}

func newStatisticsWriter(records []domain.StatisticsRecord) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleDefault)
	t.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(domain.StatisticsColumns))
	for i, c := range domain.StatisticsColumns {
		header[i] = c
	}
	t.AppendHeader(header)

	for _, cells := range StatisticsRows(records) {
		row := make(table.Row, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		t.AppendRow(row)
	}
	return t
}
