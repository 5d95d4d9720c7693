package sorter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/tsvsort/pkg/errors"
	"github.com/ajxudir/tsvsort/pkg/table"
	"github.com/ajxudir/tsvsort/pkg/testutil"
	"github.com/ajxudir/tsvsort/pkg/warnings"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	return testutil.WriteFile(t, t.TempDir(), name, content)
}

// TestRunEndToEnd tests the full pipeline on a three-row table.
//
// It verifies:
//   - The FDR 0.2 row is dropped
//   - The Score 2 row is written before the Score -5 row
//   - The output lands at <name>-sorted<.ext> with the input delimiter
func TestRunEndToEnd(t *testing.T) {
	input := writeInput(t, "results.tsv", "FDR\tScore\n0.01\t-5\n0.2\t1\n0.03\t2\n")

	result, err := Run(Options{InputPath: input, Delimiter: "\t", SortColumn: "Score"})
	require.NoError(t, err)

	want := filepath.Join(filepath.Dir(input), "results-sorted.tsv")
	assert.Equal(t, want, result.OutputPath)
	assert.True(t, result.Written)
	assert.Equal(t, table.FilterStats{Total: 3, Kept: 2, Excluded: 1}, result.Stats)

	assert.Equal(t, "FDR\tScore\n0.03\t2\n0.01\t-5\n", testutil.ReadFile(t, want))
	assert.Equal(t, "FDR\tScore\n0.01\t-5\n0.2\t1\n0.03\t2\n", testutil.ReadFile(t, input))
}

// TestRunRoundTrip tests that the written file loads back with the same shape.
func TestRunRoundTrip(t *testing.T) {
	input := writeInput(t, "genes.csv", "Gene,FDR,log2FC\n\"A,1\",0.001,-3.5\nB,0.04,1.25\nC,0.5,0\nD,0.02,-1.25\n")

	result, err := Run(Options{InputPath: input, Delimiter: ",", SortColumn: "log2FC"})
	require.NoError(t, err)

	loaded, err := table.Load(result.OutputPath, ",")
	require.NoError(t, err)
	assert.Equal(t, result.Table.Header(), loaded.Header())
	require.Equal(t, 3, loaded.Len())
	assert.Equal(t, []string{"B", "0.04", "1.25"}, loaded.Row(0))
	assert.Equal(t, []string{"D", "0.02", "-1.25"}, loaded.Row(1))
	assert.Equal(t, []string{"A,1", "0.001", "-3.5"}, loaded.Row(2))
}

// TestRunValidation tests the column checks of the pipeline.
//
// It verifies:
//   - A missing FDR column is reported first, even when the sort column is missing too
//   - A missing sort column names the column
//   - No output file is created on failure
func TestRunValidation(t *testing.T) {
	noFDR := writeInput(t, "a.tsv", "Gene\tScore\nX\t1\n")
	_, err := Run(Options{InputPath: noFDR, Delimiter: "\t", SortColumn: "NoSuchColumn"})
	ce, ok := errors.IsInvalidColumnError(err)
	require.True(t, ok, "got %v", err)
	assert.Equal(t, "FDR", ce.Column)
	assert.Equal(t, "Invalid column name 'FDR' - could not filter.", err.Error())

	input := writeInput(t, "b.tsv", "FDR\tScore\n0.01\t1\n")
	_, err = Run(Options{InputPath: input, Delimiter: "\t", SortColumn: "NoSuchColumn"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoSuchColumn")
	assert.Equal(t, errors.ExitInputError, errors.GetExitCode(err))

	_, statErr := os.Stat(table.DeriveOutputPath(input, "-sorted"))
	assert.True(t, os.IsNotExist(statErr))
}

// TestRunErrors tests errors surfaced from load and sort.
func TestRunErrors(t *testing.T) {
	_, err := Run(Options{InputPath: filepath.Join(t.TempDir(), "missing.tsv"), Delimiter: "\t", SortColumn: "Score"})
	var nf *errors.FileNotFoundError
	require.ErrorAs(t, err, &nf)

	input := writeInput(t, "c.tsv", "FDR\tScore\n0.01\tbig\n")
	_, err = Run(Options{InputPath: input, Delimiter: "\t", SortColumn: "Score"})
	var ne *errors.NumericConversionError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "big", ne.Value)
	assert.Equal(t, input, ne.Path)
	assert.Equal(t, 2, ne.Line)

	input = writeInput(t, "e.tsv", "g\tFDR\tScore\na\t0.9\t1\nb\t0.01\tNA\nc\t0.01\t-abc\n")
	_, err = Run(Options{InputPath: input, Delimiter: "\t", SortColumn: "Score", Missing: table.MissingLast})
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, 4, ne.Line)
	assert.Equal(t, 2, ne.Row)
	assert.Contains(t, err.Error(), input+":4: column 'Score'")
}

// TestRunOptions tests custom filter, missing policy, suffix and dry runs.
//
// It verifies:
//   - Non-numeric filter values are excluded with a warning
//   - MissingLast puts empty and NA sort values at the end
//   - DryRun writes nothing
//   - A custom suffix is used for the output name
func TestRunOptions(t *testing.T) {
	var warn bytes.Buffer
	restore := warnings.SetWarningWriter(&warn)
	defer restore()

	input := writeInput(t, "d.txt", "padj;Score\n0.001;\nNA;1\n0.002;NA\n0.005;-2\n")
	opts := Options{
		InputPath:  input,
		Delimiter:  ";",
		SortColumn: "Score",
		Filter:     table.FilterSpec{Column: "padj", Threshold: 0.01},
		Missing:    table.MissingLast,
		Suffix:     ".sig",
		DryRun:     true,
	}

	result, err := Run(opts)
	require.NoError(t, err)
	assert.False(t, result.Written)
	assert.Equal(t, filepath.Join(filepath.Dir(input), "d.sig.txt"), result.OutputPath)
	assert.Equal(t, 1, result.Stats.NonNumeric)
	assert.Contains(t, warn.String(), "1 rows excluded: padj value is not a number")
	require.Equal(t, 3, result.Table.Len())
	assert.Equal(t, []string{"0.005", "-2"}, result.Table.Row(0))
	assert.Equal(t, []string{"0.001", ""}, result.Table.Row(1))
	assert.Equal(t, []string{"0.002", "NA"}, result.Table.Row(2))

	_, statErr := os.Stat(result.OutputPath)
	assert.True(t, os.IsNotExist(statErr))

	opts.DryRun = false
	result, err = Run(opts)
	require.NoError(t, err)
	assert.FileExists(t, result.OutputPath)
}

// TestRunWriteFailure tests that a write error is returned unchanged.
func TestRunWriteFailure(t *testing.T) {
	old := writeTableFunc
	defer func() { writeTableFunc = old }()
	writeTableFunc = func(*table.Table, string, string) error {
		return &errors.IOError{Op: "write", Path: "x", Err: os.ErrPermission}
	}

	input := writeInput(t, "e.tsv", "FDR\tScore\n0.01\t1\n")
	result, err := Run(Options{InputPath: input, Delimiter: "\t", SortColumn: "Score"})
	assert.Nil(t, result)
	_, ok := errors.IsIOError(err)
	assert.True(t, ok)
	assert.Equal(t, errors.ExitFailure, errors.GetExitCode(err))
}
