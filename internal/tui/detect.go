package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Mode selects how console output is rendered.
type Mode int

const (
	// ModePlain is used for CI pipelines, redirected output and NO_COLOR users.
	ModePlain Mode = iota
	// ModeStyled is used when a human is reading the terminal.
	ModeStyled
)

// PlainEnvVar forces plain output when set to "1".
const PlainEnvVar = "CURRSEED_PLAIN"

// DetectMode determines how output written to w should be rendered.
//
// Returns ModePlain if:
//   - CURRSEED_PLAIN=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - w is not a terminal
//
// Returns ModeStyled otherwise.
func DetectMode(w io.Writer) Mode {
	if os.Getenv(PlainEnvVar) == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}

	return ModeStyled
}
