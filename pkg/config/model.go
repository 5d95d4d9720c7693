// Package config handles configuration loading and validation for tsvsort.
// Configuration is optional YAML; every key has a built-in default so a run
// without a config file filters on FDR <= 0.05 and writes <name>-sorted<.ext>.
package config

import (
	"github.com/ajxudir/tsvsort/pkg/table"
)

// Config is the root configuration.
//
// Fields:
//   - Filter: Which rows are kept
//   - Sort: How the sort column is interpreted
//   - Output: How the output file is named
type Config struct {
	Filter FilterCfg `yaml:"filter"`
	Sort   SortCfg   `yaml:"sort"`
	Output OutputCfg `yaml:"output"`

	// path is the file the config was loaded from, empty for defaults.
	path string
}

// FilterCfg configures the significance filter.
type FilterCfg struct {
	// Column is the header name of the significance column.
	Column string `yaml:"column"`

	// Threshold is the inclusive upper bound for kept rows.
	Threshold float64 `yaml:"threshold"`
}

// SortCfg configures the absolute-value sort.
type SortCfg struct {
	// Missing is the policy for empty or NaN sort values: "error" or "last".
	Missing string `yaml:"missing"`
}

// OutputCfg configures the output file.
type OutputCfg struct {
	// Suffix is inserted between the input file stem and its extension.
	Suffix string `yaml:"suffix"`
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// FilterSpec returns the filter settings in the form the table package uses.
func (c *Config) FilterSpec() table.FilterSpec {
	return table.FilterSpec{Column: c.Filter.Column, Threshold: c.Filter.Threshold}
}

// MissingPolicy returns the parsed missing-value policy.
//
// Validate guarantees the value parses; unknown values fall back to
// table.MissingFail.
func (c *Config) MissingPolicy() table.MissingPolicy {
	p, err := table.ParseMissingPolicy(c.Sort.Missing)
	if err != nil {
		return table.MissingFail
	}
	return p
}
