// Package cmd implements the command-line interface for tsvsort.
// The root command filters a delimited file on FDR and sorts the kept rows
// by the absolute value of a column; subcommands show version and config.
package cmd

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajxudir/tsvsort/pkg/config"
	"github.com/ajxudir/tsvsort/pkg/constants"
	"github.com/ajxudir/tsvsort/pkg/errors"
	"github.com/ajxudir/tsvsort/pkg/output"
	"github.com/ajxudir/tsvsort/pkg/sorter"
	"github.com/ajxudir/tsvsort/pkg/table"
	"github.com/ajxudir/tsvsort/pkg/verbose"
)

const usageHint = "usage: tsvsort <filename> <delimiter> <column>  (use \"tab\" for a tab delimiter)"

var exitFunc = os.Exit
var runSortFunc = sorter.Run

var (
	verboseFlag         bool
	versionFlag         bool
	skipBuildChecksFlag bool
	configFlag          string
	thresholdFlag       float64
	filterColumnFlag    string
	missingFlag         string
	dryRunFlag          bool
	outputFlag          string
	previewFlag         int
)

var rootCmd = &cobra.Command{
	Use:   "tsvsort <filename> <delimiter> <column>",
	Short: "Filter a delimited file on FDR and sort it by absolute value",
	Long: `Keep the rows of a delimited file whose FDR is at or below 0.05, sort them
by the absolute value of <column> (ties keep their original order) and write
the result next to the input as <name>-sorted<.ext>.

<delimiter> is the literal field separator, or "tab" for a tab character.`,
	Example: `  tsvsort results.tsv tab log2FoldChange
  tsvsort results.csv , Score --preview 10
  tsvsort results.txt ";" Score --threshold 0.01 --output json`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Args:          validateRootArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
		// Build warnings go to stderr.
		if !skipBuildChecksFlag {
			if warnings := GetBuildWarnings(); warnings != "" {
				fmt.Fprint(os.Stderr, warnings)
				fmt.Fprintln(os.Stderr)
			}
		}
	},
	RunE: runRoot,
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 1: Failure (I/O error while writing)
//   - 2: Input error (file not found, malformed input, invalid column, non-numeric value)
//   - 3: Configuration or argument error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(os.Stderr, err, verboseFlag)

		code := errors.GetExitCode(err)
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&skipBuildChecksFlag, "skip-build-checks", false, "Skip build validation warnings (dev build, arch mismatch)")

	// -v/--version is local so it only works on the root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Config file path (YAML)")
	rootCmd.Flags().Float64Var(&thresholdFlag, "threshold", constants.DefaultThreshold, "Keep rows whose filter value is <= this threshold")
	rootCmd.Flags().StringVar(&filterColumnFlag, "filter-column", constants.DefaultFilterColumn, "Column holding the significance values")
	rootCmd.Flags().StringVar(&missingFlag, "missing", constants.MissingError, "Empty or NaN sort values: error, last")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Filter and sort without writing the output file")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Summary format: table (default), json, csv, xml")
	rootCmd.Flags().IntVarP(&previewFlag, "preview", "p", 0, "Include the first N sorted rows in the summary")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// validateRootArgs requires exactly three positional arguments unless only
// --version was asked for.
func validateRootArgs(cmd *cobra.Command, args []string) error {
	if versionFlag && len(args) == 0 {
		return nil
	}
	if len(args) != 3 {
		return errors.NewArgumentValidationError("arguments",
			fmt.Sprintf("expected 3 arguments, got %d", len(args)), usageHint)
	}
	return nil
}

// runRoot executes the filter-then-sort pipeline for the root command.
//
// It performs the following operations:
//   - Step 1: Load the optional config file and apply flag overrides
//   - Step 2: Resolve the delimiter argument and the summary format
//   - Step 3: Run the pipeline
//   - Step 4: Print the summary in the requested format
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: filename, delimiter and column
//
// Returns:
//   - error: Argument, config, input or I/O error
func runRoot(cmd *cobra.Command, args []string) error {
	if versionFlag {
		printVersionOutput()
		return nil
	}

	opts, err := buildOptions(cmd, args)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(outputFlag)
	if err != nil {
		ve := errors.NewArgumentValidationError("output", err.Error(), "")
		ve.ValidKeys = output.ValidFormats
		return ve
	}
	if previewFlag < 0 {
		return errors.NewArgumentValidationError("preview", "must not be negative", "")
	}

	result, err := runSortFunc(opts)
	if err != nil {
		return err
	}

	return output.WriteSortResult(cmd.OutOrStdout(), format, newSortResult(args[1], opts, result))
}

// buildOptions merges config file values, flag overrides and positional
// arguments into pipeline options.
//
// Flags only override the config when set explicitly on the command line.
//
// Parameters:
//   - cmd: Cobra command, used to detect explicitly set flags
//   - args: filename, delimiter and column
//
// Returns:
//   - sorter.Options: Resolved pipeline options
//   - error: ValidationError for bad flags or arguments, ExitError for config load failures
func buildOptions(cmd *cobra.Command, args []string) (sorter.Options, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		if _, ok := errors.IsValidationError(err); ok {
			return sorter.Options{}, err
		}
		return sorter.Options{}, errors.NewExitError(errors.ExitConfigError, err)
	}

	delimiter, err := table.ParseDelimiter(args[1])
	if err != nil {
		return sorter.Options{}, err
	}

	filter := cfg.FilterSpec()
	if cmd.Flags().Changed("filter-column") {
		if filterColumnFlag == "" {
			return sorter.Options{}, errors.NewArgumentValidationError("filter-column", "must not be empty", "")
		}
		filter.Column = filterColumnFlag
	}
	if cmd.Flags().Changed("threshold") {
		if math.IsNaN(thresholdFlag) || math.IsInf(thresholdFlag, 0) {
			return sorter.Options{}, errors.NewArgumentValidationError("threshold", "must be a finite number", "")
		}
		filter.Threshold = thresholdFlag
	}

	missing := cfg.MissingPolicy()
	if cmd.Flags().Changed("missing") {
		missing, err = table.ParseMissingPolicy(missingFlag)
		if err != nil {
			ve := errors.NewArgumentValidationError("missing", err.Error(), "")
			ve.ValidKeys = []string{constants.MissingError, constants.MissingLast}
			return sorter.Options{}, ve
		}
	}

	return sorter.Options{
		InputPath:  args[0],
		Delimiter:  delimiter,
		SortColumn: args[2],
		Filter:     filter,
		Missing:    missing,
		Suffix:     cfg.Output.Suffix,
		DryRun:     dryRunFlag,
	}, nil
}

// newSortResult builds the printable summary of a run.
func newSortResult(delimiterArg string, opts sorter.Options, result *sorter.Result) *output.SortResult {
	status := constants.StatusWritten
	if !result.Written {
		status = constants.StatusDryRun
	}

	return &output.SortResult{
		Summary: output.SortSummary{
			Input:          result.InputPath,
			Output:         result.OutputPath,
			Delimiter:      delimiterArg,
			SortColumn:     opts.SortColumn,
			FilterColumn:   opts.Filter.Column,
			Threshold:      opts.Filter.Threshold,
			MissingPolicy:  string(opts.Missing),
			TotalRows:      result.Stats.Total,
			KeptRows:       result.Stats.Kept,
			ExcludedRows:   result.Stats.Excluded,
			NonNumericRows: result.Stats.NonNumeric,
			Status:         status,
		},
		Columns: result.Table.Header(),
		Rows:    output.PreviewRows(result.Table, previewFlag),
	}
}

// printVersionOutput prints version, build, and runtime information to stdout.
func printVersionOutput() {
	buildOS, buildArch := getBuildTarget()
	fmt.Printf("  Build:   %s/%s\n", buildOS, buildArch)

	if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
		fmt.Printf("  Runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}

	fmt.Printf("  Go:      %s\n", runtime.Version())
	if BuildTime != "" {
		fmt.Printf("  Date:    %s\n", BuildTime)
	}
	fmt.Println()
	if GitCommit != "" {
		fmt.Printf("  Git:     %s\n", GitCommit)
	}
	fmt.Printf("  Version: %s\n", Version)
}
