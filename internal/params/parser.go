package params

import (
	"fmt"
	"strings"
)

// ParseKeyValuePairs converts a slice of "key=value" strings into a map.
//
// Example:
//
//	csv, err := ParseKeyValuePairs([]string{"math_medic=/exports/mm.csv"})
//	// Returns: map[string]string{"math_medic": "/exports/mm.csv"}
func ParseKeyValuePairs(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%q is not in provider=path format (example: --csv math_medic=./mm.csv)", pair)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("override has empty provider code: %q", pair)
		}

		result[key] = value
	}

	return result, nil
}
