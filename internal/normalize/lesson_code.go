package normalize

import "regexp"

var (
	numberedTitle = regexp.MustCompile(`^[0-9]+\.[0-9]+`)
	reviewTitle   = regexp.MustCompile(`(?i)^Review\s+[0-9]+\.[0-9]+(?:-[0-9]+\.[0-9]+)?`)
)

// SourceLessonCode recovers a vendor lesson number from the start of a title.
// "3.2 Solving Equations" gives "3.2"; "Review 1.1-1.3 Extra Practice" gives
// "Review 1.1-1.3". The matched prefix keeps the title's own casing.
func SourceLessonCode(title string) (string, bool) {
	t := Text(title)
	if t == "" {
		return "", false
	}

	if m := numberedTitle.FindString(t); m != "" {
		return m, true
	}
	if m := reviewTitle.FindString(t); m != "" {
		return m, true
	}

	return "", false
}
