// Package services wires the pipeline stages into the Generator used by the CLI.
package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/mathclaw/currseed/internal/checksum"
	"github.com/mathclaw/currseed/internal/files/filesystem"
	"github.com/mathclaw/currseed/internal/identity"
	"github.com/mathclaw/currseed/internal/lessons"
	"github.com/mathclaw/currseed/internal/seed"
	"github.com/mathclaw/currseed/pkg/currseed"
)

const outputPerm fs.FileMode = 0644

// GeneratorService implements the Generator interface.
// Each call is a self-contained run; the service keeps no state between calls.
type GeneratorService struct {
	fs         filesystem.FileSystemProvider
	logger     currseed.Logger
	reader     *lessons.Reader
	calculator checksum.Calculator
}

// NewGeneratorService creates a GeneratorService. Panics on nil dependencies.
func NewGeneratorService(fsProvider filesystem.FileSystemProvider, logger currseed.Logger) *GeneratorService {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &GeneratorService{
		fs:         fsProvider,
		logger:     logger,
		reader:     lessons.NewReader(fsProvider, logger),
		calculator: checksum.New(),
	}
}

// Build runs the read, identify and render stages.
func (s *GeneratorService) Build(ctx context.Context, cfg currseed.GenerateConfig) (*currseed.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var rows []currseed.LessonRow
	for _, provider := range cfg.Providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generation cancelled: %w", err)
		}

		providerRows, err := s.reader.Read(provider)
		if err != nil {
			return nil, err
		}
		rows = append(rows, providerRows...)
	}

	catalog, err := seed.Build(cfg.Providers, cfg.Classes, rows, identity.New(cfg.Namespace))
	if err != nil {
		return nil, fmt.Errorf("failed to assemble catalog: %w", err)
	}

	script := seed.Render(catalog)
	summary := currseed.Summary{
		OutputPath: cfg.OutputPath,
		Providers:  len(catalog.Providers),
		Libraries:  len(catalog.Libraries),
		Lessons:    len(catalog.Lessons),
		Standards:  len(catalog.Standards),
		Links:      len(catalog.Links),
		Checksum:   s.calculator.CalculateRaw([]byte(script)),
	}

	s.logger.Verbose("Catalog: %d providers, %d libraries, %d lessons, %d standards, %d links",
		summary.Providers, summary.Libraries, summary.Lessons, summary.Standards, summary.Links)

	return &currseed.Result{Script: script, Summary: summary}, nil
}

// Generate builds the script and replaces cfg.OutputPath with it.
func (s *GeneratorService) Generate(ctx context.Context, cfg currseed.GenerateConfig) (*currseed.Summary, error) {
	if cfg.OutputPath == currseed.StdoutPath {
		return nil, fmt.Errorf("output %q is not a file path: %w", currseed.StdoutPath, currseed.ErrInvalidConfig)
	}

	result, err := s.Build(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := s.fs.WriteFileAtomic(cfg.OutputPath, []byte(result.Script), outputPerm); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", cfg.OutputPath, err)
	}

	s.logger.Verbose("Wrote %d bytes to %s (sha256 %s)", len(result.Script), cfg.OutputPath, result.Summary.Checksum)
	return &result.Summary, nil
}

// Check builds the script and compares its checksum with the file on disk.
// A missing file is reported through an empty ActualChecksum, not an error.
func (s *GeneratorService) Check(ctx context.Context, cfg currseed.GenerateConfig) (*currseed.CheckResult, error) {
	result, err := s.Build(ctx, cfg)
	if err != nil {
		return nil, err
	}

	check := &currseed.CheckResult{
		Path:             cfg.OutputPath,
		ExpectedChecksum: result.Summary.Checksum,
	}

	existing, err := s.fs.ReadFile(cfg.OutputPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Verbose("%s does not exist", cfg.OutputPath)
		return check, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", cfg.OutputPath, err)
	}

	check.ActualChecksum = s.calculator.CalculateRaw(existing)
	s.logger.Verbose("Expected sha256 %s, found %s", check.ExpectedChecksum, check.ActualChecksum)
	return check, nil
}

var _ currseed.Generator = (*GeneratorService)(nil)
