package table

import (
	"errors"
	"fmt"
)

// ErrTooManyFields is returned by Append when a record is wider than the header.
var ErrTooManyFields = errors.New("wrong number of fields")

// Table is an in-memory delimited table.
//
// Every row has exactly one cell per header column; short records are padded
// with empty strings when appended. Tables read by Decode remember the input
// name and the line each row started on, and filtered or sorted tables keep
// that provenance.
type Table struct {
	header []string
	index  map[string]int
	rows   [][]string
	lines  []int
	source string
}

// New creates an empty table with the given header.
//
// Parameters:
//   - header: Column names in file order; must be non-empty and unique
//
// Returns:
//   - *Table: Table with no rows
//   - error: When the header is empty or contains a duplicate name
func New(header []string) (*Table, error) {
	if len(header) == 0 {
		return nil, errors.New("header has no columns")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		index[name] = i
	}

	return &Table{
		header: append([]string(nil), header...),
		index:  index,
	}, nil
}

// Append adds a record as the last row.
//
// Records shorter than the header are padded with empty values. The record
// slice is copied.
//
// Returns:
//   - error: ErrTooManyFields (wrapped) when the record is wider than the header
func (t *Table) Append(record []string) error {
	return t.appendAt(record, 0)
}

// appendAt adds a record read from the given 1-based source line (0 if unknown).
func (t *Table) appendAt(record []string, line int) error {
	if len(record) > len(t.header) {
		return fmt.Errorf("%w: expected %d, got %d", ErrTooManyFields, len(t.header), len(record))
	}
	row := make([]string, len(t.header))
	copy(row, record)
	t.rows = append(t.rows, row)
	t.lines = append(t.lines, line)
	return nil
}

// Header returns a copy of the column names in order.
func (t *Table) Header() []string {
	return append([]string(nil), t.header...)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether name is a header column (case-sensitive).
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex returns the position of a column in the header.
//
// Returns:
//   - int: Zero-based index, or -1 when absent
//   - bool: true when the column exists
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	if !ok {
		return -1, false
	}
	return i, true
}

// Row returns a copy of the i-th data row. It panics if i is out of range.
func (t *Table) Row(i int) []string {
	return append([]string(nil), t.rows[i]...)
}

// Value returns the cell of row i in the named column.
//
// Returns:
//   - string: Cell text, empty for missing values
//   - bool: false when the column does not exist or i is out of range
func (t *Table) Value(i int, column string) (string, bool) {
	idx, ok := t.index[column]
	if !ok || i < 0 || i >= len(t.rows) {
		return "", false
	}
	return t.rows[i][idx], true
}

// Line returns the 1-based input line row i was read from, or 0 when the
// row was appended directly. It panics if i is out of range.
func (t *Table) Line(i int) int {
	return t.lines[i]
}

// Source returns the name the table was decoded from, empty for tables
// built with New.
func (t *Table) Source() string {
	return t.source
}

// derive returns a table sharing this table's header and source whose rows
// are the given rows of t, in the given order.
func (t *Table) derive(order []int) *Table {
	d := &Table{
		header: t.header,
		index:  t.index,
		rows:   make([][]string, len(order)),
		lines:  make([]int, len(order)),
		source: t.source,
	}
	for i, src := range order {
		d.rows[i] = t.rows[src]
		d.lines[i] = t.lines[src]
	}
	return d
}
