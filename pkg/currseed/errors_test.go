package currseed_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mathclaw/currseed/pkg/currseed"
)

func TestExitCodeForError(t *testing.T) {
	missing := &currseed.MissingFileError{Provider: "math_medic", Path: "mm.csv"}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, currseed.ExitSuccess},
		{"general error", errors.New("something went wrong"), currseed.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag: --foo"), currseed.ExitUsageError},
		{"accepts args", errors.New("accepts 0 arg(s), received 1"), currseed.ExitUsageError},
		{"invalid config", fmt.Errorf("load: %w", currseed.ErrInvalidConfig), currseed.ExitConfigError},
		{"missing file", fmt.Errorf("read: %w", missing), currseed.ExitMissingFile},
		{"malformed csv", fmt.Errorf("read: %w", currseed.ErrMalformedCSV), currseed.ExitMalformedCSV},
		{"stale seed", currseed.ErrStaleSeed, currseed.ExitStaleSeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := currseed.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestMissingFileError(t *testing.T) {
	err := &currseed.MissingFileError{Provider: "illustrative_math", Path: "/tmp/im.csv"}

	if !errors.Is(err, currseed.ErrMissingFile) {
		t.Error("MissingFileError should match ErrMissingFile")
	}

	var target *currseed.MissingFileError
	if !errors.As(fmt.Errorf("wrapped: %w", err), &target) {
		t.Fatal("errors.As should find MissingFileError through wrapping")
	}
	if target.Path != "/tmp/im.csv" {
		t.Errorf("Path = %q", target.Path)
	}

	want := "missing CSV for provider illustrative_math: /tmp/im.csv"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
