package table

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/tsvsort/pkg/errors"
)

// mustTable builds a table from a header and rows, failing the test on error.
func mustTable(t *testing.T, header []string, rows ...[]string) *Table {
	t.Helper()
	tbl, err := New(header)
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, tbl.Append(row))
	}
	return tbl
}

// column returns every value of a column in row order.
func column(t *testing.T, tbl *Table, name string) []string {
	t.Helper()
	values := make([]string, 0, tbl.Len())
	for i := 0; i < tbl.Len(); i++ {
		v, ok := tbl.Value(i, name)
		require.True(t, ok)
		values = append(values, v)
	}
	return values
}

// TestNew tests the behavior of New.
//
// It verifies:
//   - A unique header creates an empty table
//   - Empty and duplicate headers are rejected
//   - The header is copied
func TestNew(t *testing.T) {
	header := []string{"Gene", "FDR"}
	tbl, err := New(header)
	require.NoError(t, err)
	header[0] = "changed"

	assert.Equal(t, []string{"Gene", "FDR"}, tbl.Header())
	assert.Equal(t, 0, tbl.Len())

	_, err = New(nil)
	assert.Error(t, err)

	_, err = New([]string{"FDR", "Score", "FDR"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate column name "FDR"`)
}

// TestAppend tests the behavior of Append.
//
// It verifies:
//   - Short records are padded with empty values
//   - Records wider than the header are rejected with ErrTooManyFields
func TestAppend(t *testing.T) {
	tbl := mustTable(t, []string{"a", "b", "c"})

	require.NoError(t, tbl.Append([]string{"1"}))
	assert.Equal(t, []string{"1", "", ""}, tbl.Row(0))

	err := tbl.Append([]string{"1", "2", "3", "4"})
	require.ErrorIs(t, err, ErrTooManyFields)
	assert.Contains(t, err.Error(), "expected 3, got 4")
	assert.Equal(t, 1, tbl.Len())
}

// TestAccessors tests the column and value accessors.
//
// It verifies:
//   - HasColumn and ColumnIndex are case-sensitive
//   - Value reports unknown columns and out-of-range rows
//   - Row returns a copy
//   - Directly appended rows have no source line or name
func TestAccessors(t *testing.T) {
	tbl := mustTable(t, []string{"FDR", "Score"}, []string{"0.01", "-5"})

	assert.True(t, tbl.HasColumn("FDR"))
	assert.False(t, tbl.HasColumn("fdr"))

	idx, ok := tbl.ColumnIndex("Score")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	idx, ok = tbl.ColumnIndex("nope")
	assert.False(t, ok)
	assert.Equal(t, -1, idx)

	v, ok := tbl.Value(0, "Score")
	assert.True(t, ok)
	assert.Equal(t, "-5", v)
	_, ok = tbl.Value(1, "Score")
	assert.False(t, ok)
	_, ok = tbl.Value(0, "nope")
	assert.False(t, ok)

	row := tbl.Row(0)
	row[0] = "changed"
	assert.Equal(t, "0.01", tbl.Row(0)[0])

	assert.Equal(t, 0, tbl.Line(0))
	assert.Empty(t, tbl.Source())
}

// TestParseDelimiter tests the behavior of ParseDelimiter.
//
// It verifies:
//   - "tab" maps to a tab character
//   - Other values are used verbatim
//   - Empty delimiters and delimiters with quotes or newlines are rejected
//   - NUL, the replacement character and invalid UTF-8 are rejected
func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		arg     string
		want    string
		wantErr bool
	}{
		{"tab", "\t", false},
		{",", ",", false},
		{";", ";", false},
		{"||", "||", false},
		{"TAB", "TAB", false},
		{"", "", true},
		{`"`, "", true},
		{"a\nb", "", true},
		{"\x00", "", true},
		{"a\x00b", "", true},
		{"\xff", "", true},
		{"\uFFFD", "", true},
		{"§", "§", false},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.arg), func(t *testing.T) {
			got, err := ParseDelimiter(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				_, ok := errors.IsValidationError(err)
				assert.True(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestValidate tests the behavior of Validate.
//
// It verifies:
//   - A table with both columns passes
//   - A missing FDR column is reported even when the sort column is missing too
//   - A missing sort column is reported by name
func TestValidate(t *testing.T) {
	tbl := mustTable(t, []string{"FDR", "Score"})
	assert.NoError(t, Validate(tbl, "FDR", "Score"))

	noFDR := mustTable(t, []string{"Gene", "Score"})
	err := Validate(noFDR, "FDR", "NoSuchColumn")
	ce, ok := errors.IsInvalidColumnError(err)
	require.True(t, ok)
	assert.Equal(t, "FDR", ce.Column)
	assert.Equal(t, errors.ColumnRoleFilter, ce.Role)
	assert.Contains(t, err.Error(), "FDR")

	err = Validate(tbl, "FDR", "NoSuchColumn")
	ce, ok = errors.IsInvalidColumnError(err)
	require.True(t, ok)
	assert.Equal(t, "NoSuchColumn", ce.Column)
	assert.Equal(t, errors.ColumnRoleSort, ce.Role)
	assert.Contains(t, err.Error(), "NoSuchColumn")
	assert.Equal(t, []string{"FDR", "Score"}, ce.Available)
}
