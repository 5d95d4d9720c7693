package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/tsvsort/pkg/errors"
	"github.com/ajxudir/tsvsort/pkg/sorter"
	"github.com/ajxudir/tsvsort/pkg/table"
	"github.com/ajxudir/tsvsort/pkg/testutil"
	"github.com/ajxudir/tsvsort/pkg/verbose"
)

// resetFlags restores every flag to its default and clears Changed, since
// cobra keeps flag state between Execute calls on the same command tree.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, c := range []*cobra.Command{rootCmd, configCmd, versionCmd} {
		c.PersistentFlags().VisitAll(reset)
		c.Flags().VisitAll(reset)
	}
}

// executeRoot runs the CLI with args and returns what it wrote to stdout.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--skip-build-checks"))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		verbose.Disable()
		resetFlags()
	})

	err := ExecuteTest()
	return out.String(), err
}

func sampleInput(t *testing.T) string {
	t.Helper()
	return testutil.DelimitedFile(t, "results.tsv", "\t", []string{"Gene", "FDR", "Score"},
		[]string{"A", "0.01", "-5"},
		[]string{"B", "0.2", "1"},
		[]string{"C", "0.03", "2"},
	)
}

// TestRootSort tests the sort command end to end.
//
// It verifies:
//   - "tab" selects a tab delimiter
//   - The sorted file is written next to the input
//   - The table summary reports the counts and output path
func TestRootSort(t *testing.T) {
	input := sampleInput(t)

	out, err := executeRoot(t, input, "tab", "Score")
	require.NoError(t, err)

	want := filepath.Join(filepath.Dir(input), "results-sorted.tsv")
	assert.Contains(t, out, "Wrote 2 of 3 rows to "+want)
	assert.Equal(t, "Gene\tFDR\tScore\nC\t0.03\t2\nA\t0.01\t-5\n", testutil.ReadFile(t, want))
}

// TestRootStructuredOutput tests --output and --preview.
func TestRootStructuredOutput(t *testing.T) {
	input := sampleInput(t)

	out, err := executeRoot(t, input, "tab", "Score", "-o", "json", "-p", "1", "--dry-run")
	require.NoError(t, err)

	var decoded struct {
		Summary struct {
			Delimiter string `json:"delimiter"`
			KeptRows  int    `json:"kept_rows"`
			Status    string `json:"status"`
		} `json:"summary"`
		Columns []string            `json:"columns"`
		Rows    []map[string]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "tab", decoded.Summary.Delimiter)
	assert.Equal(t, 2, decoded.Summary.KeptRows)
	assert.Equal(t, "DryRun", decoded.Summary.Status)
	assert.Equal(t, []string{"Gene", "FDR", "Score"}, decoded.Columns)
	require.Len(t, decoded.Rows, 1)
	assert.Equal(t, "C", decoded.Rows[0]["Gene"])

	_, statErr := os.Stat(filepath.Join(filepath.Dir(input), "results-sorted.tsv"))
	assert.True(t, os.IsNotExist(statErr))
}

// TestRootOverrides tests config files and flag overrides.
//
// It verifies:
//   - Config values replace the defaults
//   - Explicit flags replace config values
func TestRootOverrides(t *testing.T) {
	input := sampleInput(t)
	cfgPath := testutil.WriteFile(t, t.TempDir(), "tsvsort.yml", "filter:\n  threshold: 0.02\noutput:\n  suffix: .sig\n")

	out, err := executeRoot(t, input, "tab", "Score", "-c", cfgPath, "-o", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, ",FDR,0.02,error,3,1,2,0,Written")
	assert.FileExists(t, filepath.Join(filepath.Dir(input), "results.sig.tsv"))

	out, err = executeRoot(t, input, "tab", "Score", "-c", cfgPath, "--threshold", "0.5", "--dry-run", "-o", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, ",FDR,0.5,error,3,3,0,0,DryRun")
}

// TestRootErrors tests the exit codes of failing runs.
func TestRootErrors(t *testing.T) {
	input := sampleInput(t)
	missingCfg := filepath.Join(t.TempDir(), "none.yml")

	tests := []struct {
		name     string
		args     []string
		code     int
		contains string
	}{
		{"no arguments", nil, errors.ExitConfigError, "expected 3 arguments, got 0"},
		{"two arguments", []string{input, "tab"}, errors.ExitConfigError, "expected 3 arguments"},
		{"missing file", []string{filepath.Join(t.TempDir(), "nope.tsv"), "tab", "Score"}, errors.ExitInputError, "nope.tsv"},
		{"missing sort column", []string{input, "tab", "NoSuchColumn"}, errors.ExitInputError, "Invalid column name 'NoSuchColumn'"},
		{"missing filter column", []string{input, "tab", "Score", "--filter-column", "padj"}, errors.ExitInputError, "Invalid column name 'padj' - could not filter."},
		{"wrong delimiter", []string{input, ",", "Score"}, errors.ExitInputError, "could not filter"},
		{"empty delimiter", []string{input, "", "Score"}, errors.ExitConfigError, "delimiter"},
		{"nul delimiter", []string{input, "\x00", "Score"}, errors.ExitConfigError, "without NUL"},
		{"invalid utf-8 delimiter", []string{input, "\xff", "Score"}, errors.ExitConfigError, "valid UTF-8"},
		{"bad output format", []string{input, "tab", "Score", "-o", "yaml"}, errors.ExitConfigError, "yaml"},
		{"bad missing policy", []string{input, "tab", "Score", "--missing", "skip"}, errors.ExitConfigError, "skip"},
		{"negative preview", []string{input, "tab", "Score", "-p", "-1"}, errors.ExitConfigError, "preview"},
		{"missing config", []string{input, "tab", "Score", "-c", missingCfg}, errors.ExitConfigError, "failed to load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeRoot(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetExitCode(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

// TestExecuteExitCodes tests Execute's error reporting and exit codes.
//
// It verifies:
//   - Successful runs do not call exitFunc
//   - Failures print the error with a hint and exit with the mapped code
//   - Write failures exit with ExitFailure
//   - Every problem of an invalid config file is printed
func TestExecuteExitCodes(t *testing.T) {
	oldExit := exitFunc
	defer func() { exitFunc = oldExit }()

	input := sampleInput(t)
	run := func(args ...string) (int, string) {
		resetFlags()
		code := -1
		exitFunc = func(c int) { code = c }
		rootCmd.SetArgs(append(args, "--skip-build-checks"))
		defer rootCmd.SetArgs(nil)

		stderr := testutil.CaptureStderr(t, func() {
			_ = testutil.CaptureStdout(t, Execute)
		})
		return code, stderr
	}

	code, _ := run(input, "tab", "Score", "--dry-run")
	assert.Equal(t, -1, code)

	code, stderr := run(input, "tab", "Nope")
	assert.Equal(t, errors.ExitInputError, code)
	assert.Contains(t, stderr, "Error: Invalid column name 'Nope'. Please provide a valid column name.")
	assert.Contains(t, stderr, "💡")

	badCfg := testutil.WriteFile(t, t.TempDir(), "bad.yml", "filter:\n  column: \"\"\nsort:\n  missing: skip\n")
	code, stderr = run(input, "tab", "Score", "-c", badCfg)
	assert.Equal(t, errors.ExitConfigError, code)
	assert.Contains(t, stderr, "Validation Error: filter.column: must not be empty")
	assert.Contains(t, stderr, "Validation Error: sort.missing:")

	oldRun := runSortFunc
	defer func() { runSortFunc = oldRun }()
	runSortFunc = func(sorter.Options) (*sorter.Result, error) {
		return nil, &errors.IOError{Op: "rename", Path: "out.tsv", Err: os.ErrPermission}
	}
	code, stderr = run(input, "tab", "Score")
	assert.Equal(t, errors.ExitFailure, code)
	assert.Contains(t, stderr, "failed to rename out.tsv")
	resetFlags()
}

// TestRootVersionFlag tests -v on the root command.
func TestRootVersionFlag(t *testing.T) {
	var err error
	out := testutil.CaptureStdout(t, func() {
		_, err = executeRoot(t, "-v")
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Version:")
}

// TestRootExampleData runs the bundled example file.
//
// It verifies:
//   - Rows with FDR above 0.05 or NA are dropped
//   - Equal |log2FoldChange| values keep their input order
func TestRootExampleData(t *testing.T) {
	data := testutil.ReadFile(t, filepath.Join("..", "examples", "deseq2_results.tsv"))
	input := testutil.WriteFile(t, t.TempDir(), "deseq2_results.tsv", data)

	out, err := executeRoot(t, input, "tab", "log2FoldChange", "-o", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, ",8,5,3,1,Written")

	sorted, err := table.Load(filepath.Join(filepath.Dir(input), "deseq2_results-sorted.tsv"), "\t")
	require.NoError(t, err)

	var genes []string
	for i := 0; i < sorted.Len(); i++ {
		gene, _ := sorted.Value(i, "gene_id")
		genes = append(genes, gene)
	}
	assert.Equal(t, []string{
		"ENSG00000171862",
		"ENSG00000146648",
		"ENSG00000105810",
		"ENSG00000141510",
		"ENSG00000136997",
	}, genes)
}
