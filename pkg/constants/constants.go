// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for defaults and icons.
package constants

// Pipeline defaults used when no configuration overrides them.
const (
	// DefaultFilterColumn is the significance column rows are filtered on.
	DefaultFilterColumn = "FDR"

	// DefaultThreshold is the inclusive upper bound for the filter column.
	DefaultThreshold = 0.05

	// DefaultSuffix is inserted before the extension of the output file.
	DefaultSuffix = "-sorted"

	// TabKeyword is the delimiter argument that stands for a tab character.
	TabKeyword = "tab"
)

// Missing-value policies for the sort column.
const (
	// MissingError fails the run when a sort value is empty or NaN.
	MissingError = "error"

	// MissingLast places empty or NaN sort values after all numeric rows.
	MissingLast = "last"
)

// Result statuses reported in the run summary.
const (
	// StatusWritten indicates the sorted file was written.
	StatusWritten = "Written"

	// StatusDryRun indicates the pipeline ran without writing output.
	StatusDryRun = "DryRun"
)

// Icon constants for status display.
const (
	// IconSuccess indicates a successful run.
	IconSuccess = "✅"

	// IconWarn indicates a warning.
	IconWarn = "⚠️"

	// IconInfo indicates informational output such as dry runs.
	IconInfo = "🔵"
)
