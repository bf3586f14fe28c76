package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceLessonCode(t *testing.T) {
	tests := []struct {
		title  string
		want   string
		wantOK bool
	}{
		{"3.2 Solving Equations", "3.2", true},
		{"  10.12   Limits", "10.12", true},
		{"1.1: Linear Patterns", "1.1", true},
		{"Review 1.1-1.3 Extra Practice", "Review 1.1-1.3", true},
		{"review 4.2 Quiz Prep", "review 4.2", true},
		{"REVIEW   2.1-2.4", "REVIEW 2.1-2.4", true},
		{"Review 1.1-1.x", "Review 1.1", true},
		{"Intro to Functions", "", false},
		{"Unit 3 Test", "", false},
		{"3 Solving", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got, ok := SourceLessonCode(tt.title)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
