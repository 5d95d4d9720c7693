package output

import (
	"encoding/xml"

	"github.com/iancoleman/orderedmap"
)

// SortResult is the summary of one tsvsort run, shaped for every --output format.
type SortResult struct {
	XMLName xml.Name     `json:"-" xml:"sortResult"`
	Summary SortSummary  `json:"summary" xml:"summary"`
	Columns []string     `json:"columns" xml:"columns>column"`
	Rows    []PreviewRow `json:"rows,omitempty" xml:"rows>row,omitempty"`
}

// SortSummary describes the input, the applied filter and the outcome.
type SortSummary struct {
	Input          string  `json:"input" xml:"input"`
	Output         string  `json:"output" xml:"output"`
	// Delimiter is the delimiter argument as given ("tab" for tabs).
	Delimiter      string  `json:"delimiter" xml:"delimiter"`
	SortColumn     string  `json:"sort_column" xml:"sort_column"`
	FilterColumn   string  `json:"filter_column" xml:"filter_column"`
	Threshold      float64 `json:"threshold" xml:"threshold"`
	MissingPolicy  string  `json:"missing_policy" xml:"missing_policy"`
	TotalRows      int     `json:"total_rows" xml:"total_rows"`
	KeptRows       int     `json:"kept_rows" xml:"kept_rows"`
	ExcludedRows   int     `json:"excluded_rows" xml:"excluded_rows"`
	NonNumericRows int     `json:"non_numeric_rows" xml:"non_numeric_rows"`
	Status         string  `json:"status" xml:"status"`
}

// PreviewRow is one sorted row, keyed by column name.
type PreviewRow struct {
	Fields []Field `xml:"field"`
}

// Field is a single named cell of a PreviewRow.
type Field struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// MarshalJSON encodes the row as an object whose keys follow the column order.
func (r PreviewRow) MarshalJSON() ([]byte, error) {
	m := orderedmap.New()
	m.SetEscapeHTML(false)
	for _, f := range r.Fields {
		m.Set(f.Name, f.Value)
	}
	return m.MarshalJSON()
}

// summaryHeaders are the CSV column names for SortSummary, in field order.
var summaryHeaders = []string{
	"input", "output", "delimiter", "sort_column", "filter_column", "threshold",
	"missing_policy", "total_rows", "kept_rows", "excluded_rows", "non_numeric_rows", "status",
}
