package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ColumnRole identifies why a column was required.
type ColumnRole string

const (
	// ColumnRoleFilter marks the significance column rows are filtered on.
	ColumnRoleFilter ColumnRole = "filter"

	// ColumnRoleSort marks the column rows are sorted by.
	ColumnRoleSort ColumnRole = "sort"
)

// FileNotFoundError reports an input file that does not exist, cannot be
// read, or is not a regular file.
//
// Fields:
//   - Path: The input path as given by the user
//   - Err: Underlying filesystem error, may be nil
type FileNotFoundError struct {
	Path string
	Err  error
}

// Error implements the error interface.
//
// Returns:
//   - string: Message naming the path and, if present, the underlying cause
func (e *FileNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot read input file %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot read input file %s", e.Path)
}

// Unwrap returns the underlying filesystem error.
func (e *FileNotFoundError) Unwrap() error { return e.Err }

// MalformedInputError reports a header or data row the parser could not accept.
//
// Fields:
//   - Path: The input path
//   - Line: 1-based line number of the offending record, 0 when unknown
//   - Reason: Short description of what is wrong
//   - Err: Underlying parser error, may be nil
type MalformedInputError struct {
	Path   string
	Line   int
	Reason string
	Err    error
}

// Error implements the error interface.
//
// Returns:
//   - string: Message in the form "malformed input <path>:<line>: <reason>"
func (e *MalformedInputError) Error() string {
	var sb strings.Builder
	sb.WriteString("malformed input ")
	sb.WriteString(e.Path)
	if e.Line > 0 {
		sb.WriteString(fmt.Sprintf(":%d", e.Line))
	}
	if e.Reason != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Reason)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying parser error.
func (e *MalformedInputError) Unwrap() error { return e.Err }

// InvalidColumnError reports a required column that is not in the header.
//
// Fields:
//   - Column: The missing column name
//   - Role: Whether the column was needed for filtering or sorting
//   - Available: Header columns of the table, used for hints
type InvalidColumnError struct {
	Column    string
	Role      ColumnRole
	Available []string
}

// Error implements the error interface.
//
// The filter column message states that filtering is impossible; the sort
// column message asks for a valid name. Both quote the column.
//
// Returns:
//   - string: Formatted error message
func (e *InvalidColumnError) Error() string {
	if e.Role == ColumnRoleFilter {
		return fmt.Sprintf("Invalid column name '%s' - could not filter.", e.Column)
	}
	return fmt.Sprintf("Invalid column name '%s'. Please provide a valid column name.", e.Column)
}

// NumericConversionError reports a sort value that cannot be read as a number.
//
// Fields:
//   - Path: Input file the table was read from, empty for in-memory tables
//   - Line: 1-based line of the cell in Path, 0 when unknown
//   - Column: The sort column
//   - Row: 1-based data row (header excluded) within the sorted table
//   - Value: The raw cell text
//   - Missing: true when Value is an NA marker such as "NA" or "null"
//   - Err: Underlying strconv error, may be nil
type NumericConversionError struct {
	Path    string
	Line    int
	Column  string
	Row     int
	Value   string
	Missing bool
	Err     error
}

// Error implements the error interface.
//
// Returns:
//   - string: "path:line: column 'c': ..." when the source line is known,
//     otherwise "column 'c' row N: ..."
func (e *NumericConversionError) Error() string {
	var where string
	switch {
	case e.Path != "" && e.Line > 0:
		where = fmt.Sprintf("%s:%d: column '%s':", e.Path, e.Line, e.Column)
	case e.Line > 0:
		where = fmt.Sprintf("line %d: column '%s':", e.Line, e.Column)
	default:
		where = fmt.Sprintf("column '%s' row %d:", e.Column, e.Row)
	}

	switch {
	case e.Value == "":
		return where + " missing value cannot be sorted by absolute value"
	case e.Missing:
		return fmt.Sprintf("%s missing value cannot be sorted by absolute value (%q)", where, e.Value)
	default:
		return fmt.Sprintf("%s value %q is not numeric", where, e.Value)
	}
}

// Unwrap returns the underlying conversion error.
func (e *NumericConversionError) Unwrap() error { return e.Err }

// IOError reports a failure to write the output file.
//
// Fields:
//   - Op: The failed operation ("create", "write", "rename", ...)
//   - Path: Destination path
//   - Err: Underlying filesystem error
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s %s", e.Op, e.Path)
}

// Unwrap returns the underlying filesystem error.
func (e *IOError) Unwrap() error { return e.Err }

// IsInputError reports whether err is one of the input error kinds:
// FileNotFoundError, MalformedInputError, InvalidColumnError or
// NumericConversionError.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if any error in the chain is an input error
func IsInputError(err error) bool {
	var (
		notFound  *FileNotFoundError
		malformed *MalformedInputError
		column    *InvalidColumnError
		numeric   *NumericConversionError
	)
	return errors.As(err, &notFound) ||
		errors.As(err, &malformed) ||
		errors.As(err, &column) ||
		errors.As(err, &numeric)
}

// IsInvalidColumnError checks if err is an InvalidColumnError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *InvalidColumnError: The error if found, nil otherwise
//   - bool: true if err is an InvalidColumnError
func IsInvalidColumnError(err error) (*InvalidColumnError, bool) {
	var ce *InvalidColumnError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsIOError checks if err is an IOError and returns it.
func IsIOError(err error) (*IOError, bool) {
	var ioe *IOError
	if errors.As(err, &ioe) {
		return ioe, true
	}
	return nil, false
}
