package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ajxudir/tsvsort/pkg/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// errNotRegularFile marks an input path that exists but cannot hold a table.
var errNotRegularFile = stderrors.New("not a regular file")

// Load reads a header-first delimited file into a Table.
//
// It performs the following operations:
//   - Step 1: Opens the file and rejects directories
//   - Step 2: Decodes the header and every data row with the delimiter
//
// Parameters:
//   - path: Input file path
//   - delimiter: Field separator (see ParseDelimiter)
//
// Returns:
//   - *Table: The parsed table
//   - error: *errors.FileNotFoundError when the file cannot be opened or read,
//     *errors.MalformedInputError when the content cannot be parsed
func Load(path, delimiter string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.FileNotFoundError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, &errors.FileNotFoundError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &errors.FileNotFoundError{Path: path, Err: errNotRegularFile}
	}

	return Decode(f, path, delimiter)
}

// Decode parses delimited text from r.
//
// The first non-blank record is the header. A leading UTF-8 byte order mark
// is dropped. Blank lines are skipped. Records shorter than the header are
// padded with empty values; longer records are malformed.
//
// Single-character delimiters are parsed with RFC 4180 quoting; a quote
// inside an unquoted field is kept as text. Longer delimiters split each
// line literally.
//
// Parameters:
//   - r: Source of the delimited text
//   - name: Name used in error messages (usually the file path)
//   - delimiter: Field separator
//
// Returns:
//   - *Table: The parsed table
//   - error: *errors.MalformedInputError on parse failures,
//     *errors.FileNotFoundError when reading r fails
func Decode(r io.Reader, name, delimiter string) (*Table, error) {
	if delimiter == "" {
		return nil, &errors.MalformedInputError{Path: name, Reason: "empty delimiter"}
	}

	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	next := literalRecords(br, delimiter)
	if comma, ok := singleRune(delimiter); ok {
		next = csvRecords(br, comma)
	}

	return decodeRecords(next, name)
}

// recordFunc yields the next record and its 1-based line number, or io.EOF.
type recordFunc func() ([]string, int, error)

func decodeRecords(next recordFunc, name string) (*Table, error) {
	header, line, err := next()
	if err == io.EOF {
		return nil, &errors.MalformedInputError{Path: name, Reason: "missing header row"}
	}
	if err != nil {
		return nil, readError(name, err)
	}

	t, err := New(header)
	if err != nil {
		return nil, &errors.MalformedInputError{Path: name, Line: line, Reason: err.Error()}
	}
	t.source = name

	for {
		record, line, err := next()
		if err == io.EOF {
			return t, nil
		}
		if err != nil {
			return nil, readError(name, err)
		}
		if err := t.appendAt(record, line); err != nil {
			return nil, &errors.MalformedInputError{Path: name, Line: line, Reason: err.Error()}
		}
	}
}

func readError(name string, err error) error {
	var pe *csv.ParseError
	if stderrors.As(err, &pe) {
		return &errors.MalformedInputError{Path: name, Line: pe.Line, Reason: "invalid quoting", Err: pe.Err}
	}
	return &errors.FileNotFoundError{Path: name, Err: err}
}

func csvRecords(r io.Reader, comma rune) recordFunc {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	return func() ([]string, int, error) {
		record, err := cr.Read()
		if err != nil {
			return nil, 0, err
		}
		line, _ := cr.FieldPos(0)
		return record, line, nil
	}
}

func literalRecords(r io.Reader, delimiter string) recordFunc {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0

	return func() ([]string, int, error) {
		for scanner.Scan() {
			line++
			text := strings.TrimSuffix(scanner.Text(), "\r")
			if text == "" {
				continue
			}
			return strings.Split(text, delimiter), line, nil
		}
		if err := scanner.Err(); err != nil {
			return nil, 0, fmt.Errorf("line %d: %w", line+1, err)
		}
		return nil, 0, io.EOF
	}
}
