package table

import (
	"bufio"
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajxudir/tsvsort/pkg/errors"
	"github.com/ajxudir/tsvsort/pkg/warnings"
)

// outputMode is the permission of newly written tables.
const outputMode os.FileMode = 0o644

var errReadOnly = stderrors.New("file is read-only")

var (
	statFileFunc = os.Stat
	renameFunc   = os.Rename
)

// Write serializes t to path: the header line, then one line per row, with
// no index column.
//
// The table is written to a temporary file in the destination directory and
// renamed into place, so a failed write leaves no partial output. An
// existing read-only destination is refused up front because rename would
// bypass its permissions.
//
// Parameters:
//   - t: Table to write
//   - path: Destination file; its directory must exist
//   - delimiter: Field separator, the same one the table was read with
//
// Returns:
//   - error: *errors.IOError describing the failed step
func Write(t *Table, path, delimiter string) error {
	if info, err := statFileFunc(path); err == nil {
		if info.IsDir() {
			return &errors.IOError{Op: "write", Path: path, Err: errNotRegularFile}
		}
		if info.Mode().Perm()&0o200 == 0 {
			return &errors.IOError{Op: "write", Path: path, Err: errReadOnly}
		}
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return &errors.IOError{Op: "create", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if committed {
			return
		}
		_ = tmp.Close()
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			warnings.Warnf("failed to clean up temp file %s: %v", tmpPath, err)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := Encode(bw, t, delimiter); err != nil {
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Chmod(outputMode); err != nil {
		return &errors.IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}
	if err := renameFunc(tmpPath, path); err != nil {
		return &errors.IOError{Op: "rename", Path: path, Err: err}
	}

	committed = true
	return nil
}

// Encode writes t to w as delimited text.
//
// Single-character delimiters use RFC 4180 quoting, so cells containing the
// delimiter, quotes or line breaks survive a round trip. Longer delimiters
// join cells literally.
func Encode(w io.Writer, t *Table, delimiter string) error {
	if comma, ok := singleRune(delimiter); ok {
		cw := csv.NewWriter(w)
		cw.Comma = comma
		if err := cw.Write(t.header); err != nil {
			return err
		}
		for _, row := range t.rows {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	if delimiter == "" {
		return stderrors.New("empty delimiter")
	}
	if _, err := io.WriteString(w, strings.Join(t.header, delimiter)+"\n"); err != nil {
		return err
	}
	for _, row := range t.rows {
		if _, err := io.WriteString(w, strings.Join(row, delimiter)+"\n"); err != nil {
			return err
		}
	}
	return nil
}
