package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/tsvsort/pkg/config"
	"github.com/ajxudir/tsvsort/pkg/constants"
	"github.com/ajxudir/tsvsort/pkg/errors"
	"github.com/ajxudir/tsvsort/pkg/verbose"
)

// defaultConfigName is the file created by "config --init" without an argument.
const defaultConfigName = "tsvsort.yml"

var (
	configShowDefaultsFlag bool
	configInitFlag         bool
	configValidateFlag     string
)

var (
	loadConfigFunc = config.Load
	writeFileFunc  = os.WriteFile
	statFileFunc   = os.Stat
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, validate or create configuration",
	Long: `Show the built-in defaults, validate a config file, or write a commented
template. Pass the file to the sort command with --config.`,
	Example: `  tsvsort config --show-defaults
  tsvsort config --validate tsvsort.yml
  tsvsort config --init my-settings.yml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().StringVar(&configValidateFlag, "validate", "", "Validate a configuration file (rejects unknown fields)")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create a config template (default "+defaultConfigName+")")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init [FILE]: Creates a commented template
//   - --validate FILE: Validates a configuration file
//   - --show-defaults: Displays the default configuration
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Optional template path for --init
//
// Returns:
//   - error: Returns error on validation or file operation failure
func runConfig(cmd *cobra.Command, args []string) error {
	if len(args) > 0 && !configInitFlag {
		return errors.NewArgumentValidationError("config", "a file argument is only accepted with --init", "use --validate FILE to check a file")
	}

	if configInitFlag {
		path := defaultConfigName
		if len(args) == 1 {
			path = args[0]
		}
		return createConfigTemplate(cmd, path)
	}

	if configValidateFlag != "" {
		return validateConfigFile(cmd, configValidateFlag)
	}

	if configShowDefaultsFlag {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Default configuration:")
		fmt.Fprintln(out)
		fmt.Fprintln(out, config.GetDefaultConfig())
		return nil
	}

	return cmd.Help()
}

// validateConfigFile loads and validates the configuration file at path.
//
// Every validation problem is listed; with --verbose the expected values are
// included.
//
// Returns:
//   - error: ExitError with ExitConfigError code on any failure
func validateConfigFile(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()

	cfg, err := loadConfigFunc(path)
	if err != nil {
		fmt.Fprintf(out, "%s Configuration validation failed for: %s\n\n", constants.IconWarn, path)
		fmt.Fprintf(out, "  ERROR: %s\n", describeConfigError(err))
		verbose.Infof("Exit code %d (config error): configuration validation failed for %s", errors.ExitConfigError, path)
		return errors.NewExitError(errors.ExitConfigError, fmt.Errorf("configuration validation failed"))
	}

	fmt.Fprintf(out, "%s Configuration valid: %s\n", constants.IconSuccess, path)
	fmt.Fprintf(out, "   filter: %s <= %g, missing sort values: %s, suffix: %s\n",
		cfg.Filter.Column, cfg.Filter.Threshold, cfg.Sort.Missing, cfg.Output.Suffix)
	return nil
}

// describeConfigError renders a config error, listing every validation
// problem when several were joined.
func describeConfigError(err error) string {
	lines := make([]string, 0, 1)
	for _, e := range errors.Flatten(err) {
		if ve, ok := errors.IsValidationError(e); ok && verbose.IsEnabled() {
			lines = append(lines, ve.VerboseError())
			continue
		}
		lines = append(lines, e.Error())
	}
	return strings.Join(lines, "\n  ERROR: ")
}

// createConfigTemplate writes the commented template to path.
//
// Fails if a file already exists at that location.
//
// Returns:
//   - error: Returns error if file exists or cannot be created
func createConfigTemplate(cmd *cobra.Command, path string) error {
	if _, err := statFileFunc(path); err == nil {
		return errors.NewExitErrorf(errors.ExitConfigError, "config file already exists: %s", path)
	}

	if err := writeFileFunc(path, []byte(config.GetTemplateConfig()), 0o644); err != nil {
		return &errors.IOError{Op: "create", Path: path, Err: err}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration template: %s\n", path)
	return nil
}
