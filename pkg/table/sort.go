package table

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/ajxudir/tsvsort/pkg/constants"
	"github.com/ajxudir/tsvsort/pkg/errors"
)

// MissingPolicy decides how missing sort values are handled. A value is
// missing when it is empty, an NA marker such as "NA" or "null", or NaN.
type MissingPolicy string

const (
	// MissingFail rejects missing sort values with a NumericConversionError.
	MissingFail MissingPolicy = constants.MissingError

	// MissingLast orders missing sort values after every numeric row.
	MissingLast MissingPolicy = constants.MissingLast
)

// ParseMissingPolicy parses a policy name ("error" or "last").
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch MissingPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case MissingFail:
		return MissingFail, nil
	case MissingLast:
		return MissingLast, nil
	}
	return "", fmt.Errorf("unknown missing-value policy %q", s)
}

type sortKey struct {
	abs     float64
	missing bool
}

// SortByAbsoluteValue returns a new table with rows ordered by the absolute
// value of column, ascending. Rows with equal keys keep their relative order.
//
// Values that are neither numbers nor missing always fail. Missing values
// fail under MissingFail and sort last under MissingLast. Errors carry the
// table's source and the input line of the offending row when known.
//
// Returns:
//   - *Table: Sorted table sharing t's header
//   - error: *errors.InvalidColumnError when column is absent,
//     *errors.NumericConversionError for unusable values
func SortByAbsoluteValue(t *Table, column string, policy MissingPolicy) (*Table, error) {
	idx, ok := t.ColumnIndex(column)
	if !ok {
		return nil, &errors.InvalidColumnError{Column: column, Role: errors.ColumnRoleSort, Available: t.Header()}
	}

	keys := make([]sortKey, t.Len())
	for i, row := range t.rows {
		raw := row[idx]
		v, numeric := parseNumber(raw)
		if isNA(raw) || (numeric && math.IsNaN(v)) {
			if policy != MissingLast {
				value := strings.TrimSpace(raw)
				return nil, t.conversionError(column, i, value, value != "")
			}
			keys[i] = sortKey{missing: true}
			continue
		}
		if !numeric {
			return nil, t.conversionError(column, i, raw, false)
		}
		keys[i] = sortKey{abs: math.Abs(v)}
	}

	order := make([]int, t.Len())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		ka, kb := keys[a], keys[b]
		if ka.missing || kb.missing {
			switch {
			case ka.missing && kb.missing:
				return 0
			case ka.missing:
				return 1
			default:
				return -1
			}
		}
		return cmp.Compare(ka.abs, kb.abs)
	})

	return t.derive(order), nil
}

func (t *Table) conversionError(column string, i int, value string, missing bool) error {
	return &errors.NumericConversionError{
		Path:    t.source,
		Line:    t.lines[i],
		Column:  column,
		Row:     i + 1,
		Value:   value,
		Missing: missing,
	}
}
