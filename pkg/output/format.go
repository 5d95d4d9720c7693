// Package output provides formatters for the run summary of tsvsort.
// It supports a terminal table (default) and CSV, JSON and XML for scripting.
package output

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal output.
	FormatTable Format = "table"
	// FormatCSV outputs the summary as comma-separated values.
	FormatCSV Format = "csv"
	// FormatJSON outputs the summary as JSON.
	FormatJSON Format = "json"
	// FormatXML outputs the summary as XML.
	FormatXML Format = "xml"
)

// ValidFormats lists the accepted --output values.
var ValidFormats = []string{string(FormatTable), string(FormatJSON), string(FormatCSV), string(FormatXML)}

// ParseFormat parses a format string into a Format type.
//
// The parsing is case-insensitive. An empty string selects FormatTable.
//
// Parameters:
//   - s: Format string to parse (e.g., "csv", "JSON", "XmL")
//
// Returns:
//   - Format: The parsed format
//   - error: When s names no known format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Formatter handles writing data in a specific format.
//
// Fields:
//   - format: The output format
//   - writer: Destination for formatted output
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter for the given format and writer.
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// WriteCSV writes data as CSV to the output writer.
//
// Note: csv.Writer buffers all writes and only reports errors via Error() after Flush().
//
// Parameters:
//   - headers: Column headers for the CSV
//   - rows: Data rows, each row should have the same number of columns as headers
//
// Returns:
//   - error: When write or flush fails, returns the underlying error; otherwise returns nil
func (f *Formatter) WriteCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.writer)

	_ = w.Write(headers)
	for _, row := range rows {
		_ = w.Write(row)
	}

	w.Flush()
	return w.Error()
}

// WriteJSON writes data as compact JSON without HTML escaping.
func (f *Formatter) WriteJSON(data interface{}) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// WriteXML writes data as indented XML preceded by the XML header.
func (f *Formatter) WriteXML(data interface{}) error {
	_, _ = fmt.Fprint(f.writer, xml.Header)
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(f.writer)
	return nil
}
