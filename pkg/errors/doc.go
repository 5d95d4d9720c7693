// Package errors provides the error types and exit-code mapping for tsvsort.
//
// Every failure of the sort pipeline is reported as one of the typed errors
// below so that callers can match it with errors.As and build a message:
//   - FileNotFoundError: The input file is missing, unreadable, or a directory
//   - MalformedInputError: The header or a data row could not be parsed
//   - InvalidColumnError: The filter column or the sort column is absent
//   - NumericConversionError: A sort value is not a number
//   - IOError: The output file could not be written
//   - ValidationError: A configuration value or argument is invalid
//   - ExitError: Command exit with a specific exit code
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): The sorted file was written
//   - ExitFailure (1): Unexpected or I/O failure
//   - ExitInputError (2): The input file or requested columns are unusable
//   - ExitConfigError (3): Configuration or argument validation error
package errors
