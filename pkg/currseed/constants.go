package currseed

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Seed generated or verified
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration
	ExitMissingFile  = 14 // Input CSV not found
	ExitMalformedCSV = 15 // Input CSV could not be tokenized
	ExitStaleSeed    = 16 // Seed on disk differs from a fresh generation
)

const (
	// DefaultOutputPath is where the seed script is written when nothing overrides it.
	DefaultOutputPath = "data/seed/curriculum_seed.sql"

	// DefaultNamespace is the UUID namespace all entity identifiers are derived from.
	// Changing it changes every id in the generated script.
	DefaultNamespace = "9ebfc7a0-37e2-4f72-a121-beb6f4ca9de1"

	// StdoutPath as an output path sends the script to standard output.
	StdoutPath = "-"

	// ScriptHeader is the first line of every generated script.
	ScriptHeader = "-- generated by currseed"

	// PlaceholderStandard is the value vendors put in empty standards cells.
	PlaceholderStandard = "-"
)

// Column suffixes appended to a class code to form a CSV header,
// e.g. "A1 Lesson", "A1 Objective", "A1 Standards".
const (
	LessonColumnSuffix    = " Lesson"
	ObjectiveColumnSuffix = " Objective"
	StandardsColumnSuffix = " Standards"
)
