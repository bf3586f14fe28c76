package currseed

import "context"

// Result is a generated seed script held in memory.
type Result struct {
	Script  string
	Summary Summary
}

// Generator runs the CSV-to-seed pipeline.
type Generator interface {
	// Build reads every provider export and renders the script without writing it.
	Build(ctx context.Context, cfg GenerateConfig) (*Result, error)

	// Generate builds the script and atomically writes it to cfg.OutputPath.
	// Nothing is written when any stage fails.
	Generate(ctx context.Context, cfg GenerateConfig) (*Summary, error)

	// Check builds the script and compares it with the file at cfg.OutputPath.
	Check(ctx context.Context, cfg GenerateConfig) (*CheckResult, error)
}
