package svgrn

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	report, err := service.Run(ctx, config)
//	if errors.Is(err, svgrn.ErrOutputExists) {
//	    // Suggest --force
//	}
var (
	// ErrUsage indicates the command line was used incorrectly.
	ErrUsage = errors.New("usage error")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSourceNotFound indicates the source file or directory does not exist.
	ErrSourceNotFound = errors.New("source not found")

	// ErrParseFailed indicates the markup could not be parsed.
	ErrParseFailed = errors.New("failed to parse markup")

	// ErrNoRootElement indicates the document has no element to convert.
	ErrNoRootElement = errors.New("no root element found")

	// ErrMalformedViewBox indicates a viewBox without exactly four numbers.
	ErrMalformedViewBox = errors.New("malformed viewBox")

	// ErrInvalidStyle indicates an inline style attribute could not be parsed.
	ErrInvalidStyle = errors.New("invalid inline style")

	// ErrOutputExists indicates the destination exists and overwriting was not requested.
	ErrOutputExists = errors.New("output file already exists")

	// ErrOutputNotWritable indicates the destination could not be written.
	ErrOutputNotWritable = errors.New("output file not writable")

	// ErrOutputCollision indicates two sources resolve to the same output file.
	ErrOutputCollision = errors.New("output path collision")

	// ErrConversionFailed indicates one or more documents in a batch failed.
	ErrConversionFailed = errors.New("conversion failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrSourceNotFound):
		return ExitSourceNotFound
	case errors.Is(err, ErrOutputExists):
		return ExitOutputConflict
	case errors.Is(err, ErrConversionFailed),
		errors.Is(err, ErrParseFailed),
		errors.Is(err, ErrNoRootElement),
		errors.Is(err, ErrMalformedViewBox),
		errors.Is(err, ErrInvalidStyle),
		errors.Is(err, ErrOutputNotWritable),
		errors.Is(err, ErrOutputCollision):
		return ExitConversionFailed
	}

	// cobra reports flag problems as plain errors
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "invalid argument") ||
		strings.Contains(errStr, "flag needs an argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
