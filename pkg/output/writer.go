package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ajxudir/tsvsort/pkg/constants"
	"github.com/ajxudir/tsvsort/pkg/table"
)

// previewColumnWidth caps preview cells so wide tables stay readable.
const previewColumnWidth = 32

// PreviewRows converts the first n rows of t into PreviewRows.
//
// Parameters:
//   - t: Sorted table
//   - n: Number of rows; values <= 0 return nil, values beyond t.Len() are clamped
//
// Returns:
//   - []PreviewRow: Rows with fields in header order
func PreviewRows(t *table.Table, n int) []PreviewRow {
	if t == nil || n <= 0 {
		return nil
	}
	if n > t.Len() {
		n = t.Len()
	}

	header := t.Header()
	rows := make([]PreviewRow, 0, n)
	for i := 0; i < n; i++ {
		values := t.Row(i)
		fields := make([]Field, len(header))
		for j, name := range header {
			fields[j] = Field{Name: name, Value: values[j]}
		}
		rows = append(rows, PreviewRow{Fields: fields})
	}
	return rows
}

// WriteSortResult renders result to w in the requested format.
//
// It performs the following operations:
//   - Step 1: JSON and XML encode the whole result, preview rows included
//   - Step 2: CSV writes one header line and one summary line
//   - Step 3: Table prints a status line, the counts and an aligned preview
//
// Parameters:
//   - w: Destination writer (usually stdout)
//   - format: Output format
//   - result: Run summary
//
// Returns:
//   - error: When encoding or writing fails
func WriteSortResult(w io.Writer, format Format, result *SortResult) error {
	f := NewFormatter(format, w)
	switch format {
	case FormatJSON:
		return f.WriteJSON(result)
	case FormatXML:
		return f.WriteXML(result)
	case FormatCSV:
		return f.WriteCSV(summaryHeaders, [][]string{summaryRecord(result.Summary)})
	default:
		return writeSummaryTable(w, result)
	}
}

func summaryRecord(s SortSummary) []string {
	return []string{
		s.Input,
		s.Output,
		s.Delimiter,
		s.SortColumn,
		s.FilterColumn,
		strconv.FormatFloat(s.Threshold, 'g', -1, 64),
		s.MissingPolicy,
		strconv.Itoa(s.TotalRows),
		strconv.Itoa(s.KeptRows),
		strconv.Itoa(s.ExcludedRows),
		strconv.Itoa(s.NonNumericRows),
		s.Status,
	}
}

func writeSummaryTable(w io.Writer, result *SortResult) error {
	s := result.Summary

	var status string
	if s.Status == constants.StatusDryRun {
		status = fmt.Sprintf("%s Dry run: %d of %d rows would be written to %s", constants.IconInfo, s.KeptRows, s.TotalRows, s.Output)
	} else {
		status = fmt.Sprintf("%s Wrote %d of %d rows to %s", constants.IconSuccess, s.KeptRows, s.TotalRows, s.Output)
	}
	if _, err := fmt.Fprintln(w, status); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "   sorted by |%s|, kept %s <= %s", s.SortColumn, s.FilterColumn, strconv.FormatFloat(s.Threshold, 'g', -1, 64))
	if s.NonNumericRows > 0 {
		_, _ = fmt.Fprintf(w, " (%d non-numeric excluded)", s.NonNumericRows)
	}
	_, _ = fmt.Fprintln(w)

	if len(result.Rows) == 0 {
		return nil
	}

	tbl := NewTable().WithMaxColumnWidth(previewColumnWidth)
	for _, name := range result.Columns {
		tbl.AddColumn(name)
	}
	records := make([][]string, 0, len(result.Rows))
	for _, row := range result.Rows {
		values := make([]string, len(row.Fields))
		for i, f := range row.Fields {
			values[i] = f.Value
		}
		tbl.UpdateWidths(values...)
		records = append(records, values)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, tbl.HeaderRow())
	_, _ = fmt.Fprintln(w, tbl.SeparatorRow())
	for _, values := range records {
		if _, err := fmt.Fprintln(w, tbl.FormatRow(values...)); err != nil {
			return err
		}
	}
	return nil
}
