package errors

import (
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Action to resolve the issue
type ErrorHint struct {
	// Pattern is a substring to match in error messages (case-insensitive).
	Pattern string

	// Hint is a brief description of the problem.
	Hint string

	// Resolution is a command or action to fix the problem.
	Resolution string
}

// CommonErrorHints maps error patterns to actionable hints.
// These are used by EnhanceErrorWithHint to add context to errors.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "could not filter",
		Hint:       "The significance column is missing",
		Resolution: "Check the header row, or set filter.column in the config / --filter-column",
	},
	{
		Pattern:    "please provide a valid column name",
		Hint:       "The sort column is not in the header",
		Resolution: "Column names are case-sensitive; check the delimiter if the header was read as one column",
	},
	{
		Pattern:    "is not numeric",
		Hint:       "The sort column contains text",
		Resolution: "Pick a numeric column to sort by",
	},
	{
		Pattern:    "missing value cannot be sorted",
		Hint:       "The sort column has empty cells",
		Resolution: "Use --missing last to place empty values at the end",
	},
	{
		Pattern:    "wrong number of fields",
		Hint:       "A row has more fields than the header",
		Resolution: "Check that the delimiter argument matches the file (use 'tab' for TSV)",
	},
	{
		Pattern:    "failed to load config",
		Hint:       "Configuration file is invalid or not found",
		Resolution: "Run 'tsvsort config --validate <file>' to check it",
	},
	{
		Pattern:    "no such file or directory",
		Hint:       "File or directory not found",
		Resolution: "Verify the path exists and you have read permissions",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Check file and directory permissions",
	},
}

// GetHint returns an actionable hint for the given error.
//
// It searches the error message for known patterns in CommonErrorHints
// and returns a formatted hint if one matches.
//
// Parameters:
//   - err: The error to get a hint for
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// EnhanceErrorWithHint adds actionable hints to an error message if a matching pattern is found.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: Error message with hint appended if found, otherwise just the error message
//
// Example:
//
//	enhanced := errors.EnhanceErrorWithHint(err)
//	fmt.Fprintf(os.Stderr, "Error: %s\n", enhanced)
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	if hint := GetHint(err); hint != "" {
		return err.Error() + "\n  \U0001F4A1 " + hint
	}

	return err.Error()
}
