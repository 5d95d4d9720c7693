package config

import (
	stderrors "errors"
	"fmt"
	"math"
	"strings"

	"github.com/ajxudir/tsvsort/pkg/constants"
	"github.com/ajxudir/tsvsort/pkg/errors"
	"github.com/ajxudir/tsvsort/pkg/table"
)

// ValidationErrors checks every setting and returns one error per problem.
//
// Returns:
//   - []*errors.ValidationError: Problems found, nil when the config is valid
func (c *Config) ValidationErrors() []*errors.ValidationError {
	var errs []*errors.ValidationError

	if strings.TrimSpace(c.Filter.Column) == "" {
		errs = append(errs, errors.NewConfigValidationError("filter.column", "must not be empty"))
	}

	if math.IsNaN(c.Filter.Threshold) || math.IsInf(c.Filter.Threshold, 0) {
		e := errors.NewConfigValidationError("filter.threshold", "must be a finite number")
		e.Expected = "a number such as 0.05"
		errs = append(errs, e)
	}

	if _, err := table.ParseMissingPolicy(c.Sort.Missing); err != nil {
		e := errors.NewConfigValidationError("sort.missing", err.Error())
		e.ValidKeys = []string{constants.MissingError, constants.MissingLast}
		errs = append(errs, e)
	}

	switch {
	case c.Output.Suffix == "":
		e := errors.NewConfigValidationError("output.suffix", "must not be empty")
		e.Hint = "An empty suffix would overwrite the input file"
		errs = append(errs, e)
	case strings.ContainsAny(c.Output.Suffix, `/\`):
		errs = append(errs, errors.NewConfigValidationError("output.suffix",
			fmt.Sprintf("%q must not contain path separators", c.Output.Suffix)))
	}

	return errs
}

// Validate returns all validation problems joined into one error, or nil.
func (c *Config) Validate() error {
	errs := c.ValidationErrors()
	if len(errs) == 0 {
		return nil
	}
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return stderrors.Join(joined...)
}
