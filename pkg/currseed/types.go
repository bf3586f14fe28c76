package currseed

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Provider describes one curriculum vendor and the CSV export it publishes.
type Provider struct {
	// Code is the stable machine identifier, e.g. "math_medic".
	Code string

	// Name is the display name written to curriculum_providers.name.
	Name string

	// CSVPath locates the vendor's export.
	CSVPath string

	// Classes lists the class codes whose column triples the export carries,
	// in the order they are scanned within each row.
	Classes []string
}

// LessonRow is one lesson extracted from a provider export.
type LessonRow struct {
	ProviderCode  string
	ClassCode     string
	SequenceIndex int

	// SourceLessonCode is the vendor's own lesson number recovered from the
	// title ("3.2", "Review 1.1-1.3"). Empty when the title carries none.
	SourceLessonCode string

	Title     string
	Objective string
	Standards []string
}

// GenerateConfig contains everything one pipeline run needs.
type GenerateConfig struct {
	// Providers are emitted in this order.
	Providers []Provider

	// Classes maps class code to course name, e.g. "A1" -> "Algebra I".
	Classes map[string]string

	// Namespace seeds every derived identifier.
	Namespace uuid.UUID

	// OutputPath is the script destination; StdoutPath writes to standard output.
	OutputPath string

	Verbose bool
}

// Validate checks if the GenerateConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *GenerateConfig) Validate() error {
	var errs []error

	if len(c.Providers) == 0 {
		errs = append(errs, fmt.Errorf("at least one provider is required: %w", ErrInvalidConfig))
	}

	seen := make(map[string]bool, len(c.Providers))
	for i, p := range c.Providers {
		if p.Code == "" {
			errs = append(errs, fmt.Errorf("provider #%d: code is required: %w", i+1, ErrInvalidConfig))
			continue
		}
		if seen[p.Code] {
			errs = append(errs, fmt.Errorf("provider %s: duplicate code: %w", p.Code, ErrInvalidConfig))
		}
		seen[p.Code] = true

		if p.Name == "" {
			errs = append(errs, fmt.Errorf("provider %s: name is required: %w", p.Code, ErrInvalidConfig))
		}
		if p.CSVPath == "" {
			errs = append(errs, fmt.Errorf("provider %s: csv path is required: %w", p.Code, ErrInvalidConfig))
		}
		if len(p.Classes) == 0 {
			errs = append(errs, fmt.Errorf("provider %s: at least one class is required: %w", p.Code, ErrInvalidConfig))
		}
		for _, class := range p.Classes {
			if _, ok := c.Classes[class]; !ok {
				errs = append(errs, fmt.Errorf("provider %s: unknown class code %q: %w", p.Code, class, ErrInvalidConfig))
			}
		}
	}

	if c.Namespace == uuid.Nil {
		errs = append(errs, fmt.Errorf("namespace must not be the nil UUID: %w", ErrInvalidConfig))
	}

	if c.OutputPath == "" {
		errs = append(errs, fmt.Errorf("output path is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Summary reports what a pipeline run produced.
type Summary struct {
	OutputPath string
	Providers  int
	Libraries  int
	Lessons    int
	Standards  int
	Links      int

	// Checksum is the SHA-256 of the script, hex encoded.
	Checksum string
}

// CheckResult compares a seed script on disk with a fresh generation.
type CheckResult struct {
	Path             string
	ExpectedChecksum string

	// ActualChecksum is empty when the file does not exist.
	ActualChecksum string
}

// UpToDate reports whether the file on disk matches the fresh generation.
func (r *CheckResult) UpToDate() bool {
	return r.ActualChecksum != "" && r.ActualChecksum == r.ExpectedChecksum
}
