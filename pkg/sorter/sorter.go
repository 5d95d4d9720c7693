package sorter

import (
	"github.com/ajxudir/tsvsort/pkg/constants"
	"github.com/ajxudir/tsvsort/pkg/table"
	"github.com/ajxudir/tsvsort/pkg/verbose"
	"github.com/ajxudir/tsvsort/pkg/warnings"
)

// writeTableFunc writes the sorted table; replaced in tests.
var writeTableFunc = table.Write

// Options configures a single pipeline run.
type Options struct {
	// InputPath is the delimited file to read.
	InputPath string

	// Delimiter is the resolved field delimiter (a tab, not "tab").
	Delimiter string

	// SortColumn is the column whose absolute value orders the output.
	SortColumn string

	// Filter selects the rows to keep. The zero value means DefaultFilter.
	Filter table.FilterSpec

	// Missing decides how empty sort values are handled. Empty means MissingFail.
	Missing table.MissingPolicy

	// Suffix is inserted before the extension of the output name. Empty means "-sorted".
	Suffix string

	// DryRun runs every step except the write.
	DryRun bool
}

// Result describes a completed run.
type Result struct {
	InputPath  string
	OutputPath string
	Stats      table.FilterStats

	// Table is the filtered and sorted table, as written.
	Table *table.Table

	// Written is false for dry runs.
	Written bool
}

// Run executes the pipeline described by opts.
//
// It performs the following operations:
//   - Step 1: Load the input file with the delimiter
//   - Step 2: Validate that the filter column and the sort column exist
//   - Step 3: Keep rows whose filter value is at or below the threshold
//   - Step 4: Stably sort the kept rows by |sort column|
//   - Step 5: Write them to the derived output path unless DryRun is set
//
// Parameters:
//   - opts: Input file, delimiter, column and policy settings
//
// Returns:
//   - *Result: Paths, filter counts and the sorted table
//   - error: FileNotFoundError, MalformedInputError, InvalidColumnError,
//     NumericConversionError or IOError from the failing step
func Run(opts Options) (*Result, error) {
	opts = opts.withDefaults()

	tbl, err := table.Load(opts.InputPath, opts.Delimiter)
	if err != nil {
		return nil, err
	}
	verbose.TableLoaded(opts.InputPath, opts.Delimiter, tbl.Len(), tbl.Header())

	if err := table.Validate(tbl, opts.Filter.Column, opts.SortColumn); err != nil {
		return nil, err
	}

	filtered, stats, err := table.Filter(tbl, opts.Filter)
	if err != nil {
		return nil, err
	}
	verbose.FilterApplied(opts.Filter.Column, opts.Filter.Threshold, stats.Kept, stats.Excluded, stats.NonNumeric)
	if stats.NonNumeric > 0 {
		warnings.Warnf("%d rows excluded: %s value is not a number", stats.NonNumeric, opts.Filter.Column)
	}

	sorted, err := table.SortByAbsoluteValue(filtered, opts.SortColumn, opts.Missing)
	if err != nil {
		return nil, err
	}

	result := &Result{
		InputPath:  opts.InputPath,
		OutputPath: table.DeriveOutputPath(opts.InputPath, opts.Suffix),
		Stats:      stats,
		Table:      sorted,
	}

	if opts.DryRun {
		verbose.Printf("Dry run: skipping write of %s", result.OutputPath)
		return result, nil
	}

	if err := writeTableFunc(sorted, result.OutputPath, opts.Delimiter); err != nil {
		return nil, err
	}
	result.Written = true
	verbose.OutputWritten(result.OutputPath, sorted.Len())

	return result, nil
}

func (o Options) withDefaults() Options {
	if o.Filter.Column == "" {
		o.Filter = table.DefaultFilter()
	}
	if o.Missing == "" {
		o.Missing = table.MissingFail
	}
	if o.Suffix == "" {
		o.Suffix = constants.DefaultSuffix
	}
	return o
}
