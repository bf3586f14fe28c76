// Package lessons reads provider CSV exports into lesson rows.
//
// An export is a wide sheet: each class a provider offers owns three columns,
// "<class> Lesson", "<class> Objective" and "<class> Standards", and every
// data row may carry one lesson per class. Rows are scanned top to bottom and
// classes in the provider's configured order; a blank title skips that cell
// without consuming a sequence number.
package lessons

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/mathclaw/currseed/internal/files/filesystem"
	"github.com/mathclaw/currseed/internal/normalize"
	"github.com/mathclaw/currseed/pkg/currseed"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader extracts lessons from provider exports.
type Reader struct {
	fs     filesystem.FileSystemProvider
	logger currseed.Logger
}

// NewReader creates a Reader. Panics on nil dependencies.
func NewReader(fsProvider filesystem.FileSystemProvider, logger currseed.Logger) *Reader {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Reader{fs: fsProvider, logger: logger}
}

// Read returns the provider's lessons in discovery order.
// A missing export fails with *currseed.MissingFileError before anything is parsed.
func (r *Reader) Read(provider currseed.Provider) ([]currseed.LessonRow, error) {
	if _, err := r.fs.Stat(provider.CSVPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &currseed.MissingFileError{Provider: provider.Code, Path: provider.CSVPath}
		}
		return nil, fmt.Errorf("failed to access %s: %w", provider.CSVPath, err)
	}

	content, err := r.fs.ReadFile(provider.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", provider.CSVPath, err)
	}

	r.logger.Verbose("Reading %s export: %s", provider.Code, provider.CSVPath)

	rows, dataRows, err := parse(provider, bytes.TrimPrefix(content, utf8BOM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", provider.CSVPath, err)
	}

	r.logger.Verbose("  %d data rows, %d lessons", dataRows, len(rows))
	return rows, nil
}

func parse(provider currseed.Provider, content []byte) ([]currseed.LessonRow, int, error) {
	cr := csv.NewReader(bytes.NewReader(content))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", currseed.ErrMalformedCSV, err)
	}
	cols := newColumns(header)

	var lessons []currseed.LessonRow
	sequence := make(map[string]int, len(provider.Classes))
	dataRows := 0

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", currseed.ErrMalformedCSV, err)
		}
		dataRows++

		for _, class := range provider.Classes {
			title := normalize.Text(cols.get(record, class+currseed.LessonColumnSuffix))
			if title == "" {
				continue
			}

			sequence[class]++
			code, _ := normalize.SourceLessonCode(title)

			lessons = append(lessons, currseed.LessonRow{
				ProviderCode:     provider.Code,
				ClassCode:        class,
				SequenceIndex:    sequence[class],
				SourceLessonCode: code,
				Title:            title,
				Objective:        normalize.Text(cols.get(record, class+currseed.ObjectiveColumnSuffix)),
				Standards:        normalize.Standards(cols.get(record, class+currseed.StandardsColumnSuffix)),
			})
		}
	}

	return lessons, dataRows, nil
}

// columns maps header names to record positions.
type columns map[string]int

// newColumns indexes a header row. Names are whitespace-normalized;
// when a name repeats, the rightmost column wins.
func newColumns(header []string) columns {
	c := make(columns, len(header))
	for i, name := range header {
		c[normalize.Text(name)] = i
	}
	return c
}

// get returns the cell under name, or "" when the column or the cell is absent.
func (c columns) get(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
