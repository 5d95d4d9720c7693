package table

import (
	"math"

	"github.com/ajxudir/tsvsort/pkg/constants"
	"github.com/ajxudir/tsvsort/pkg/errors"
)

// FilterSpec selects the rows kept by Filter.
type FilterSpec struct {
	// Column holds the significance values.
	Column string

	// Threshold is the inclusive upper bound.
	Threshold float64
}

// DefaultFilter keeps rows with FDR <= 0.05.
func DefaultFilter() FilterSpec {
	return FilterSpec{Column: constants.DefaultFilterColumn, Threshold: constants.DefaultThreshold}
}

// FilterStats summarizes a Filter call.
type FilterStats struct {
	Total    int
	Kept     int
	Excluded int
	// NonNumeric counts excluded rows whose value was empty, NaN or not a number.
	NonNumeric int
}

// Filter returns a new table with the rows whose spec.Column value is a
// number at or below spec.Threshold, in their original order.
//
// Values that are empty, NaN or not numbers cannot be compared and are
// excluded; they are counted in FilterStats.NonNumeric.
//
// Returns:
//   - *Table: Filtered table sharing t's header
//   - FilterStats: Row counts
//   - error: *errors.InvalidColumnError when spec.Column is absent
func Filter(t *Table, spec FilterSpec) (*Table, FilterStats, error) {
	idx, ok := t.ColumnIndex(spec.Column)
	if !ok {
		return nil, FilterStats{}, &errors.InvalidColumnError{Column: spec.Column, Role: errors.ColumnRoleFilter, Available: t.Header()}
	}

	stats := FilterStats{Total: t.Len()}
	kept := make([]int, 0, t.Len())
	for i, row := range t.rows {
		v, numeric := parseNumber(row[idx])
		switch {
		case !numeric || math.IsNaN(v):
			stats.NonNumeric++
		case v <= spec.Threshold:
			kept = append(kept, i)
			continue
		}
		stats.Excluded++
	}
	stats.Kept = len(kept)

	return t.derive(kept), stats, nil
}
