package normalize

import (
	"strings"
	"unicode"
)

// Text collapses any run of whitespace to a single space and trims both ends.
// Unicode spaces (NBSP included) count as whitespace.
func Text(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	pendingSpace := false
	for _, r := range value {
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
