package table

import (
	stderrors "errors"
	"strconv"
	"strings"
)

// naTokens are the cell texts read as a missing value, the same set the
// common dataframe readers treat as NA by default.
var naTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// parseNumber interprets a cell as a float64. Surrounding whitespace is
// ignored; values beyond float64 range become ±Inf.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !stderrors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// isNA reports whether a cell, ignoring surrounding whitespace, is an NA marker.
func isNA(s string) bool {
	_, ok := naTokens[strings.TrimSpace(s)]
	return ok
}
