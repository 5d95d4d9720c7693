package errors

import (
	"fmt"
	"io"
	"strings"
)

// Flatten expands errors combined with errors.Join into their leaves.
//
// Nested joins are expanded depth first. An error that does not wrap
// several errors is returned as the only element; nil yields nil.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}

	var leaves []error
	for _, e := range joined.Unwrap() {
		leaves = append(leaves, Flatten(e)...)
	}
	return leaves
}

// PrintError prints a command error with an actionable hint to the writer.
//
// Validation errors are prefixed with "Validation Error:" and, in verbose
// mode, include expected values. Invalid column errors list the available
// columns in verbose mode. Everything else is printed as "Error:" with
// a hint lookup. Joined errors print one line per leaf.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - err: The error to print; nil prints nothing
//   - verbose: If true, includes additional details
func PrintError(w io.Writer, err error, verbose bool) {
	for _, e := range Flatten(err) {
		printOne(w, e, verbose)
	}
}

func printOne(w io.Writer, err error, verbose bool) {
	if ve, ok := IsValidationError(err); ok {
		if verbose {
			_, _ = fmt.Fprintf(w, "Validation Error: %s\n", ve.VerboseError())
		} else {
			_, _ = fmt.Fprintf(w, "Validation Error: %s\n", ve.Error())
		}
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))

	if ce, ok := IsInvalidColumnError(err); ok && verbose && len(ce.Available) > 0 {
		_, _ = fmt.Fprintf(w, "  Available columns: %s\n", strings.Join(ce.Available, ", "))
	}
}
