package output

import (
	"strings"
)

// Column represents a single table column with its header and current width.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in characters
type Column struct {
	Header string
	Width  int
}

// Table provides a terminal table formatter with dynamic column widths.
// It handles Unicode-aware width calculations and consistent formatting.
//
// Fields:
//   - columns: Columns with their headers and widths
//   - separator: String used to separate columns (default: "  ")
//   - maxWidth: Cap on a single column's width; 0 means unlimited
type Table struct {
	columns   []Column
	separator string
	maxWidth  int
}

// NewTable creates a new table formatter with a two-space separator.
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: "  ",
	}
}

// WithSeparator sets a custom column separator and returns the table.
func (t *Table) WithSeparator(sep string) *Table {
	t.separator = sep
	return t
}

// WithMaxColumnWidth caps every column's width and returns the table.
//
// Cells wider than the cap are truncated with "…". Values <= 0 remove the cap.
//
// Parameters:
//   - width: Maximum display width per column
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) WithMaxColumnWidth(width int) *Table {
	t.maxWidth = width
	for i := range t.columns {
		t.columns[i].Width = t.clamp(t.columns[i].Width)
	}
	return t
}

// AddColumn adds a column sized to its header and returns the table.
func (t *Table) AddColumn(header string) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  t.clamp(DisplayWidth(header)),
	})
	return t
}

// UpdateWidths widens columns to fit a row of values and returns the table.
//
// It performs the following operations:
//   - Step 1: Calculates display width for each value using Unicode-aware measurement
//   - Step 2: Keeps the larger of that width and the current column width
//   - Step 3: Applies the maximum column width, if any
//
// Parameters:
//   - values: Variable number of strings representing a data row
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) UpdateWidths(values ...string) *Table {
	for i, val := range values {
		if i < len(t.columns) {
			width := t.clamp(DisplayWidth(val))
			if width > t.columns[i].Width {
				t.columns[i].Width = width
			}
		}
	}
	return t
}

// HeaderRow returns the formatted header row string.
func (t *Table) HeaderRow() string {
	parts := make([]string, 0, len(t.columns))
	for _, col := range t.columns {
		parts = append(parts, t.cell(col.Header, col.Width))
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// SeparatorRow returns a separator row with dashes matching column widths.
func (t *Table) SeparatorRow() string {
	parts := make([]string, 0, len(t.columns))
	for _, col := range t.columns {
		parts = append(parts, strings.Repeat("-", col.Width))
	}
	return strings.Join(parts, t.separator)
}

// FormatRow formats a data row with proper padding for each column.
//
// Missing values (when fewer values than columns are provided) are treated
// as empty strings. Trailing padding is trimmed.
//
// Parameters:
//   - values: Variable number of strings representing the row data, one per column
//
// Returns:
//   - string: Formatted row with values separated by the separator
func (t *Table) FormatRow(values ...string) string {
	parts := make([]string, 0, len(t.columns))
	for i, col := range t.columns {
		val := ""
		if i < len(values) {
			val = values[i]
		}
		parts = append(parts, t.cell(val, col.Width))
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// GetColumnWidth returns the width of a column by index, or 0 when out of bounds.
func (t *Table) GetColumnWidth(index int) int {
	if index >= 0 && index < len(t.columns) {
		return t.columns[index].Width
	}
	return 0
}

func (t *Table) clamp(width int) int {
	if t.maxWidth > 0 && width > t.maxWidth {
		return t.maxWidth
	}
	return width
}

func (t *Table) cell(val string, width int) string {
	return ToWidth(Truncate(val, t.maxWidth), width)
}
