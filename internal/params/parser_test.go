package params

import (
	"strings"
	"testing"
)

func TestParseKeyValuePairs(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    map[string]string
		wantErr string
	}{
		{
			name:  "single pair",
			input: []string{"math_medic=/exports/mm.csv"},
			want:  map[string]string{"math_medic": "/exports/mm.csv"},
		},
		{
			name:  "multiple pairs",
			input: []string{"math_medic=mm.csv", "illustrative_math=im.csv"},
			want:  map[string]string{"math_medic": "mm.csv", "illustrative_math": "im.csv"},
		},
		{
			name:  "nil input",
			input: nil,
			want:  map[string]string{},
		},
		{
			name:  "value containing equals",
			input: []string{"math_medic=dir=x/mm.csv"},
			want:  map[string]string{"math_medic": "dir=x/mm.csv"},
		},
		{
			name:  "later pair wins",
			input: []string{"math_medic=a.csv", "math_medic=b.csv"},
			want:  map[string]string{"math_medic": "b.csv"},
		},
		{
			name:    "missing equals",
			input:   []string{"math_medic"},
			wantErr: "provider=path format",
		},
		{
			name:    "empty key",
			input:   []string{" =mm.csv"},
			wantErr: "empty provider code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeyValuePairs(tt.input)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("got[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}
