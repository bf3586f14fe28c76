package params

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mathclaw/currseed/internal/config"
	"github.com/mathclaw/currseed/pkg/currseed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVEnvVar(t *testing.T) {
	assert.Equal(t, "CURRSEED_CSV_MATH_MEDIC", CSVEnvVar("math_medic"))
	assert.Equal(t, "CURRSEED_CSV_ILLUSTRATIVE_MATH", CSVEnvVar("illustrative_math"))
	assert.Equal(t, "CURRSEED_CSV_OPEN_UP", CSVEnvVar("open-up"))
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	applied := ApplyEnv(cfg, map[string]string{
		"CURRSEED_OUTPUT":                "/tmp/seed.sql",
		"CURRSEED_CSV_MATH_MEDIC":        "/exports/mm.csv",
		"CURRSEED_CSV_UNKNOWN":           "/ignored.csv",
		"CURRSEED_CSV_ILLUSTRATIVE_MATH": "",
	})

	assert.Equal(t, []string{"CURRSEED_CSV_MATH_MEDIC", "CURRSEED_OUTPUT"}, applied)
	assert.Equal(t, "/tmp/seed.sql", cfg.Output)
	assert.Equal(t, "/exports/mm.csv", cfg.Provider("math_medic").CSV)
	assert.Equal(t, config.Default().Provider("illustrative_math").CSV, cfg.Provider("illustrative_math").CSV)
}

func TestApplyCSVOverrides(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, ApplyCSVOverrides(cfg, []string{"illustrative_math=im.csv"}))
	assert.Equal(t, "im.csv", cfg.Provider("illustrative_math").CSV)

	err := ApplyCSVOverrides(cfg, []string{"nobody=x.csv"})
	assert.True(t, errors.Is(err, currseed.ErrInvalidConfig), "got %v", err)

	err = ApplyCSVOverrides(cfg, []string{"no-equals"})
	assert.True(t, errors.Is(err, currseed.ErrInvalidConfig), "got %v", err)
}

func TestReadEnvFiles_LaterFilesWin(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.env")
	local := filepath.Join(dir, "local.env")
	require.NoError(t, os.WriteFile(base, []byte("CURRSEED_OUTPUT=base.sql\nCURRSEED_CSV_MATH_MEDIC=base.csv\n"), 0644))
	require.NoError(t, os.WriteFile(local, []byte("# local overrides\nCURRSEED_OUTPUT=\"local.sql\"\n"), 0644))

	values, err := ReadEnvFiles([]string{base, local})
	require.NoError(t, err)
	assert.Equal(t, "local.sql", values["CURRSEED_OUTPUT"])
	assert.Equal(t, "base.csv", values["CURRSEED_CSV_MATH_MEDIC"])
}

func TestReadEnvFiles_Missing(t *testing.T) {
	_, err := ReadEnvFiles([]string{filepath.Join(t.TempDir(), "missing.env")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.env")
}

func TestEnviron(t *testing.T) {
	t.Setenv("CURRSEED_TEST_ENVIRON", "a=b")
	assert.Equal(t, "a=b", Environ()["CURRSEED_TEST_ENVIRON"])
}
