package config

import "github.com/mathclaw/currseed/pkg/currseed"

// Default returns the built-in curriculum: the course catalog and the two
// vendors whose exports the seed is built from. Each call returns a fresh
// copy, so callers may layer overrides on it freely.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Namespace: currseed.DefaultNamespace,
		Output:    currseed.DefaultOutputPath,
		Classes: map[string]string{
			"A1":   "Algebra I",
			"GEO":  "Geometry",
			"A2":   "Algebra II",
			"APPC": "AP Precalculus",
			"APC":  "AP Calculus",
			"APS":  "AP Statistics",
		},
		Providers: []ProviderConfig{
			{
				Code:    "illustrative_math",
				Name:    "Illustrative Mathematics",
				CSV:     "data/csv/Curriculum Sheets - Illustrative Mathematics.csv",
				Classes: []string{"A1", "GEO", "A2"},
			},
			{
				Code:    "math_medic",
				Name:    "Math Medic",
				CSV:     "data/csv/Curriculum Sheets - Math Medic.csv",
				Classes: []string{"A1", "GEO", "A2", "APPC", "APC", "APS"},
			},
		},
	}
}
