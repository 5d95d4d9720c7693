package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/tsvsort/pkg/errors"
	"github.com/ajxudir/tsvsort/pkg/verbose"
)

// DefaultMaxConfigFileSize is the largest config file Load accepts (1 MiB).
const DefaultMaxConfigFileSize int64 = 1 << 20

// Load loads configuration from path, or the defaults when path is empty.
//
// It performs the following operations:
//   - Step 1: Returns Default() when no path is given
//   - Step 2: Rejects files larger than DefaultMaxConfigFileSize
//   - Step 3: Decodes the YAML over the defaults, rejecting unknown keys
//   - Step 4: Validates the merged values
//
// Parameters:
//   - path: Config file path, or "" for built-in defaults
//
// Returns:
//   - *Config: The merged configuration
//   - error: Read failures wrapped as "failed to load config", or
//     *errors.ValidationError for invalid YAML and invalid values
func Load(path string) (*Config, error) {
	if path == "" {
		verbose.ConfigLoaded("")
		return Default(), nil
	}

	data, err := readConfigFile(path, DefaultMaxConfigFileSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.path = path

	verbose.ConfigLoaded(path)
	return cfg, nil
}

// Parse decodes YAML config data over the defaults and validates it.
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults. An empty document yields the defaults.
//
// Returns:
//   - *Config: The merged configuration
//   - error: *errors.ValidationError (possibly joined) on failure
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, &errors.ValidationError{
			Category: errors.ValidationCategoryConfig,
			Message:  fmt.Sprintf("invalid YAML: %v", err),
			Hint:     "Run 'tsvsort config --show-defaults' to see the expected layout",
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readConfigFile reads a config file after checking its size.
func readConfigFile(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), maxSize)
	}
	return os.ReadFile(path)
}
