// Package table holds a delimited text table in memory and implements the
// operations the sort pipeline is built from.
//
// A Table is an ordered header plus ordered rows of string cells. Values are
// kept exactly as read; numeric interpretation happens only where an
// operation needs it (Filter, SortByAbsoluteValue), so Write reproduces the
// input text of every kept cell.
//
// File-level entry points:
//   - Load: read a header-first delimited file
//   - Write: atomically write a table to a file
//
// Stream-level entry points:
//   - Decode / Encode: the same formats over io.Reader / io.Writer
//
// Pipeline operations:
//   - Validate: check the filter and sort columns exist
//   - Filter: keep rows whose filter value is at or below a threshold
//   - SortByAbsoluteValue: stable ascending sort by |value|
//   - DeriveOutputPath: name the output file
package table
