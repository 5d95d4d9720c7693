package table

import (
	"strings"
	"unicode/utf8"

	"github.com/ajxudir/tsvsort/pkg/constants"
	"github.com/ajxudir/tsvsort/pkg/errors"
)

// ParseDelimiter converts the delimiter argument into the field separator.
//
// The keyword "tab" stands for a tab character; any other value is used
// verbatim. Delimiters may not be empty, contain quotes, line breaks or NUL,
// and must be valid UTF-8.
//
// Parameters:
//   - arg: Delimiter as given on the command line
//
// Returns:
//   - string: The field separator
//   - error: *errors.ValidationError for unusable delimiters
func ParseDelimiter(arg string) (string, error) {
	if arg == constants.TabKeyword {
		return "\t", nil
	}
	if arg == "" {
		return "", errors.NewArgumentValidationError("delimiter", "must not be empty",
			"Use 'tab' for tab-separated files")
	}
	if strings.ContainsAny(arg, "\"\r\n") {
		return "", errors.NewArgumentValidationError("delimiter",
			"must not contain quotes or line breaks", "")
	}
	if !utf8.ValidString(arg) || strings.ContainsAny(arg, "\x00\uFFFD") {
		return "", errors.NewArgumentValidationError("delimiter",
			"must be valid UTF-8 text without NUL characters", "")
	}
	return arg, nil
}

// singleRune returns the delimiter as a rune when it is exactly one valid
// character. Such delimiters get RFC 4180 quoting; longer ones are literal.
func singleRune(delimiter string) (rune, bool) {
	if utf8.RuneCountInString(delimiter) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(delimiter)
	if r == utf8.RuneError {
		return 0, false
	}
	return r, true
}
