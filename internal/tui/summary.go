package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mathclaw/currseed/pkg/currseed"
)

type field struct {
	label string
	value string
}

func summaryFields(s currseed.Summary) []field {
	return []field{
		{"Providers", fmt.Sprint(s.Providers)},
		{"Libraries", fmt.Sprint(s.Libraries)},
		{"Lessons", fmt.Sprint(s.Lessons)},
		{"Standards", fmt.Sprint(s.Standards)},
		{"Links", fmt.Sprint(s.Links)},
	}
}

func destination(path string) string {
	if path == currseed.StdoutPath {
		return "standard output"
	}
	return path
}

// RenderSummary formats the report printed after a successful generate.
func RenderSummary(s currseed.Summary, mode Mode) string {
	if mode == ModeStyled {
		return renderStyledSummary(s)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Wrote %s\n", destination(s.OutputPath))
	for _, f := range summaryFields(s) {
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	fmt.Fprintf(&b, "SHA-256: %s\n", s.Checksum)
	return b.String()
}

func renderStyledSummary(s currseed.Summary) string {
	rows := make([]string, 0, 6)
	for _, f := range summaryFields(s) {
		rows = append(rows, LabelStyle.Render(f.label)+ValueStyle.Render(f.value))
	}
	rows = append(rows, LabelStyle.Render("SHA-256")+ChecksumStyle.Render(s.Checksum))

	title := SuccessStyle.Render(SymbolCheck) + " " + TitleStyle.Render("Wrote "+destination(s.OutputPath))
	return lipgloss.JoinVertical(lipgloss.Left, title, BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))) + "\n"
}

// RenderCheck formats the outcome of comparing a seed on disk with a fresh generation.
func RenderCheck(r currseed.CheckResult, mode Mode) string {
	var status string
	switch {
	case r.UpToDate():
		status = "is up to date"
	case r.ActualChecksum == "":
		status = "is missing"
	default:
		status = "is stale"
	}

	if mode == ModeStyled {
		symbol := SuccessStyle.Render(SymbolCheck)
		if !r.UpToDate() {
			symbol = ErrorStyle.Render(SymbolCross)
		}
		lines := []string{symbol + " " + TitleStyle.Render(r.Path) + " " + status}
		if !r.UpToDate() {
			lines = append(lines, LabelStyle.Render("expected")+ChecksumStyle.Render(r.ExpectedChecksum))
			if r.ActualChecksum != "" {
				lines = append(lines, LabelStyle.Render("found")+WarningStyle.Render(r.ActualChecksum))
			}
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", r.Path, status)
	if !r.UpToDate() {
		fmt.Fprintf(&b, "expected: %s\n", r.ExpectedChecksum)
		if r.ActualChecksum != "" {
			fmt.Fprintf(&b, "found: %s\n", r.ActualChecksum)
		}
	}
	return b.String()
}
