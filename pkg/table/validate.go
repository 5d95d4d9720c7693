package table

import "github.com/ajxudir/tsvsort/pkg/errors"

// Validate checks that the filter column and the sort column are present.
//
// The filter column is checked first, so a table missing both reports the
// filter column.
//
// Returns:
//   - error: *errors.InvalidColumnError naming the first missing column
func Validate(t *Table, filterColumn, sortColumn string) error {
	if !t.HasColumn(filterColumn) {
		return &errors.InvalidColumnError{Column: filterColumn, Role: errors.ColumnRoleFilter, Available: t.Header()}
	}
	if !t.HasColumn(sortColumn) {
		return &errors.InvalidColumnError{Column: sortColumn, Role: errors.ColumnRoleSort, Available: t.Header()}
	}
	return nil
}
