// Package main is the entry point for the tsvsort CLI application.
//
// tsvsort keeps the rows of a delimited file whose FDR is at or below 0.05
// and writes them sorted by the absolute value of a chosen column.
package main

import "github.com/ajxudir/tsvsort/cmd"

// main delegates all command parsing and execution to the cmd package.
func main() {
	cmd.Execute()
}
