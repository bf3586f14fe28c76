package currseed

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := generator.Generate(ctx, cfg)
//	if errors.Is(err, currseed.ErrMissingFile) {
//	    // point the user at --csv
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingFile indicates a provider's CSV export does not exist.
	ErrMissingFile = errors.New("missing CSV file")

	// ErrMalformedCSV indicates a CSV export could not be tokenized.
	ErrMalformedCSV = errors.New("malformed CSV")

	// ErrStaleSeed indicates the seed script on disk does not match a fresh generation.
	ErrStaleSeed = errors.New("seed script is stale")
)

// MissingFileError reports a provider CSV that was absent before parsing began.
// It matches ErrMissingFile under errors.Is.
type MissingFileError struct {
	Provider string
	Path     string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing CSV for provider %s: %s", e.Provider, e.Path)
}

func (e *MissingFileError) Unwrap() error {
	return ErrMissingFile
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMissingFile):
		return ExitMissingFile
	case errors.Is(err, ErrMalformedCSV):
		return ExitMalformedCSV
	case errors.Is(err, ErrStaleSeed):
		return ExitStaleSeed
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, prefix := range usageErrorPrefixes {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPrefixes = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}
