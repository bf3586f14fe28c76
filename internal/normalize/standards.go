package normalize

import (
	"regexp"
	"strings"

	"github.com/mathclaw/currseed/pkg/currseed"
)

var (
	standardSeparator = regexp.MustCompile(`[,;]`)

	// A letter, then letters/digits/hyphens, optional dot-separated groups,
	// optional "(+)" marker: F-IF.A.1, HSA-REI.B.3, N-CN.C.8(+), UNIT1.
	standardCodePattern = regexp.MustCompile(`^[A-Z][A-Z0-9-]*(\.[A-Z0-9]+)*(\(\+\))?$`)
)

// Standards splits a raw standards cell into normalized codes.
// The result keeps first-seen order and contains no duplicates.
func Standards(value string) []string {
	raw := Text(value)
	if raw == "" || raw == currseed.PlaceholderStandard {
		return nil
	}

	var out []string
	seen := make(map[string]bool)

	for _, piece := range standardSeparator.Split(raw, -1) {
		code := StandardCode(piece)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}

	return out
}

// StandardCode normalizes a single piece of a standards cell. It returns ""
// for the placeholder, blank pieces, and anything that is not code-shaped.
func StandardCode(piece string) string {
	code := strings.ReplaceAll(strings.ToUpper(Text(piece)), " ", "")
	if code == "" || code == currseed.PlaceholderStandard {
		return ""
	}
	if !standardCodePattern.MatchString(code) {
		return ""
	}
	return code
}
