package output

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the terminal width of a string, counting wide
// characters (CJK, emoji) as two cells.
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads val with spaces to the given display width.
//
// Values already at or beyond width, and widths <= 0, are returned unchanged.
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// Truncate shortens val to at most width display cells, marking the cut
// with "…". Widths <= 0 disable truncation.
func Truncate(val string, width int) string {
	if width <= 0 || DisplayWidth(val) <= width {
		return val
	}
	return runewidth.Truncate(val, width, "…")
}
