package tui

import (
	"strings"
	"testing"

	"github.com/mathclaw/currseed/pkg/currseed"
	"github.com/stretchr/testify/assert"
)

var sampleSummary = currseed.Summary{
	OutputPath: "data/seed/curriculum_seed.sql",
	Providers:  2,
	Libraries:  9,
	Lessons:    412,
	Standards:  187,
	Links:      903,
	Checksum:   "2c26b46b68ffc68ff99b453c1d30413413422d706483bfa0f98a5e886266e7ae",
}

func TestRenderSummary_Plain(t *testing.T) {
	got := RenderSummary(sampleSummary, ModePlain)

	assert.Equal(t, "Wrote data/seed/curriculum_seed.sql\n"+
		"Providers: 2\n"+
		"Libraries: 9\n"+
		"Lessons: 412\n"+
		"Standards: 187\n"+
		"Links: 903\n"+
		"SHA-256: 2c26b46b68ffc68ff99b453c1d30413413422d706483bfa0f98a5e886266e7ae\n", got)
}

func TestRenderSummary_PlainStdout(t *testing.T) {
	s := sampleSummary
	s.OutputPath = currseed.StdoutPath

	got := RenderSummary(s, ModePlain)
	assert.True(t, strings.HasPrefix(got, "Wrote standard output\n"))
}

func TestRenderSummary_StyledCarriesEveryCount(t *testing.T) {
	got := RenderSummary(sampleSummary, ModeStyled)

	for _, want := range []string{"data/seed/curriculum_seed.sql", "412", "187", "903", sampleSummary.Checksum} {
		assert.Contains(t, got, want)
	}
}

func TestRenderCheck(t *testing.T) {
	tests := []struct {
		name   string
		result currseed.CheckResult
		want   string
	}{
		{
			name:   "up to date",
			result: currseed.CheckResult{Path: "seed.sql", ExpectedChecksum: "aaa", ActualChecksum: "aaa"},
			want:   "seed.sql is up to date\n",
		},
		{
			name:   "missing",
			result: currseed.CheckResult{Path: "seed.sql", ExpectedChecksum: "aaa"},
			want:   "seed.sql is missing\nexpected: aaa\n",
		},
		{
			name:   "stale",
			result: currseed.CheckResult{Path: "seed.sql", ExpectedChecksum: "aaa", ActualChecksum: "bbb"},
			want:   "seed.sql is stale\nexpected: aaa\nfound: bbb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderCheck(tt.result, ModePlain))
			assert.Contains(t, RenderCheck(tt.result, ModeStyled), tt.result.Path)
		})
	}
}
