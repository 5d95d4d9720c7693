// Package verbose provides debug logging for the sort pipeline.
package verbose

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	enabled bool
	writer  io.Writer = os.Stderr
)

// Enable turns on verbose logging and allows debug messages to be printed.
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose logging is currently enabled.
//
// Returns:
//   - bool: true if verbose logging is enabled, false otherwise
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetWriter sets the output writer for verbose messages.
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// output returns the writer when logging is enabled, nil otherwise.
func output() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return nil
	}
	return writer
}

// Printf prints a formatted verbose message if enabled.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
func Printf(format string, args ...any) {
	if w := output(); w != nil {
		_, _ = fmt.Fprintf(w, "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational verbose message if enabled.
//
// Parameters:
//   - msg: The message string to print
func Info(msg string) {
	if w := output(); w != nil {
		_, _ = fmt.Fprintf(w, "[DEBUG] %s\n", msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
func Infof(format string, args ...any) {
	Printf(format, args...)
}

// ConfigLoaded logs which config file was loaded if enabled.
//
// Parameters:
//   - path: Path of the loaded config file; empty means built-in defaults
func ConfigLoaded(path string) {
	w := output()
	if w == nil {
		return
	}
	if path == "" {
		_, _ = fmt.Fprintf(w, "[DEBUG] Using built-in default configuration\n")
		return
	}
	_, _ = fmt.Fprintf(w, "[DEBUG] Config loaded: %s\n", path)
}

// TableLoaded logs the shape of a freshly parsed input table if enabled.
//
// Parameters:
//   - path: Input file path
//   - delimiter: Field delimiter used to parse the file
//   - rows: Number of data rows (header excluded)
//   - columns: Header column names in file order
func TableLoaded(path, delimiter string, rows int, columns []string) {
	w := output()
	if w == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "[DEBUG] Loaded %s (delimiter %q): %d rows, %d columns\n", path, delimiter, rows, len(columns))
	_, _ = fmt.Fprintf(w, "        Columns: %v\n", columns)
}

// FilterApplied logs the outcome of the significance filter if enabled.
//
// Parameters:
//   - column: Filter column name
//   - threshold: Inclusive upper bound
//   - kept: Rows at or below the threshold
//   - excluded: Rows above the threshold or not comparable
//   - nonNumeric: Subset of excluded rows whose value was not a number
func FilterApplied(column string, threshold float64, kept, excluded, nonNumeric int) {
	w := output()
	if w == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "[DEBUG] Filter %s <= %g: kept %d, excluded %d\n", column, threshold, kept, excluded)
	if nonNumeric > 0 {
		_, _ = fmt.Fprintf(w, "        %d excluded rows had a non-numeric %s value\n", nonNumeric, column)
	}
}

// OutputWritten logs the destination of the sorted table if enabled.
func OutputWritten(path string, rows int) {
	Printf("Wrote %d rows to %s", rows, path)
}
