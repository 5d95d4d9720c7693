package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
	return path
}

// DelimitedFile writes a header and rows joined by delimiter into a new
// temporary directory and returns the file path.
//
// Cells are joined verbatim, so callers quote cells themselves when needed.
//
// Parameters:
//   - t: Testing instance; the directory is removed when the test ends
//   - name: File name, e.g. "results.tsv"
//   - delimiter: Field separator
//   - header: Column names
//   - rows: Data rows
//
// Returns:
//   - string: Path of the written file
func DelimitedFile(t *testing.T, name, delimiter string, header []string, rows ...[]string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString(strings.Join(header, delimiter))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row, delimiter))
		b.WriteString("\n")
	}

	return WriteFile(t, t.TempDir(), name, b.String())
}

// ReadFile returns the content of path, failing the test when it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
