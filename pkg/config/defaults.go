package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/tsvsort/pkg/constants"
)

//go:embed default.yml
var defaultConfigYAML string

//go:embed template.yml
var templateConfigYAML string

// Default returns the built-in configuration.
//
// This unmarshals the embedded default.yml file. If unmarshaling fails,
// the equivalent values from the constants package are used.
//
// Returns:
//   - *Config: A fresh default configuration
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err == nil {
		return &cfg
	}
	return &Config{
		Filter: FilterCfg{Column: constants.DefaultFilterColumn, Threshold: constants.DefaultThreshold},
		Sort:   SortCfg{Missing: constants.MissingError},
		Output: OutputCfg{Suffix: constants.DefaultSuffix},
	}
}

// GetDefaultConfig returns the embedded default configuration YAML.
func GetDefaultConfig() string {
	return defaultConfigYAML
}

// GetTemplateConfig returns the commented starter configuration YAML
// written by 'tsvsort config --init'.
func GetTemplateConfig() string {
	return templateConfigYAML
}
