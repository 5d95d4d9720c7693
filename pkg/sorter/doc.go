// Package sorter runs the tsvsort pipeline: load a delimited file, keep the
// rows whose FDR is at or below the threshold, stably sort them by the
// absolute value of a chosen column and write them next to the input as
// <name>-sorted<.ext>.
//
// The pipeline stops at the first error. Nothing is written unless every
// step before the write succeeded, and the write itself is atomic.
package sorter
