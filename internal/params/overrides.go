package params

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mathclaw/currseed/internal/config"
	"github.com/mathclaw/currseed/pkg/currseed"
)

const (
	EnvOutput    = "CURRSEED_OUTPUT"
	envCSVPrefix = "CURRSEED_CSV_"
)

// CSVEnvVar returns the variable that overrides a provider's CSV path,
// e.g. "math_medic" -> "CURRSEED_CSV_MATH_MEDIC".
func CSVEnvVar(providerCode string) string {
	code := strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(providerCode)
	return envCSVPrefix + strings.ToUpper(code)
}

// Environ returns the process environment as a map.
func Environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}

// ReadEnvFiles reads .env files with godotenv. Later files override earlier ones.
func ReadEnvFiles(files []string) (map[string]string, error) {
	merged := make(map[string]string)
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file '%s': %w\n\nTip: Verify the file format (KEY=VALUE)", file, err)
		}
		for k, v := range values {
			merged[k] = v
		}
	}
	return merged, nil
}

// ApplyEnv applies CURRSEED_* variables to cfg. Empty values are ignored.
// It returns the names of the variables that took effect, sorted.
func ApplyEnv(cfg *config.ProjectConfig, env map[string]string) []string {
	var applied []string

	if v := env[EnvOutput]; v != "" {
		cfg.Output = v
		applied = append(applied, EnvOutput)
	}

	for i := range cfg.Providers {
		name := CSVEnvVar(cfg.Providers[i].Code)
		if v := env[name]; v != "" {
			cfg.Providers[i].CSV = v
			applied = append(applied, name)
		}
	}

	sort.Strings(applied)
	return applied
}

// ApplyCSVOverrides sets provider CSV paths from --csv provider=path pairs.
// Naming a provider that is not configured is a configuration error.
func ApplyCSVOverrides(cfg *config.ProjectConfig, pairs []string) error {
	overrides, err := ParseKeyValuePairs(pairs)
	if err != nil {
		return fmt.Errorf("invalid --csv value: %w: %w", currseed.ErrInvalidConfig, err)
	}

	codes := make([]string, 0, len(overrides))
	for code := range overrides {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		p := cfg.Provider(code)
		if p == nil {
			return fmt.Errorf("--csv names unknown provider %q: %w", code, currseed.ErrInvalidConfig)
		}
		p.CSV = overrides[code]
	}
	return nil
}
