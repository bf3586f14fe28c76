package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mathclaw/currseed/internal/config"
	"github.com/mathclaw/currseed/internal/params"
	"github.com/mathclaw/currseed/pkg/currseed"
)

// sourceFlags holds the flags that locate inputs and the output script.
type sourceFlags struct {
	output   string
	csv      []string
	envFiles []string
}

var sources sourceFlags

func addSourceFlags(cmd *cobra.Command, f *sourceFlags) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.output, "output", "o", "",
		fmt.Sprintf("Seed script path, %q for standard output (default %s)", currseed.StdoutPath, currseed.DefaultOutputPath))
	flags.StringArrayVar(&f.csv, "csv", nil,
		"Override a provider's CSV export as provider=path (repeatable)")
	flags.StringArrayVar(&f.envFiles, "env-file", nil,
		"Read CURRSEED_* variables from a .env file (repeatable, later files win)")
}

func resetSourceFlags() {
	sources = sourceFlags{}
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if currseed.yaml does not exist (not an error).
func loadProjectConfig(dir string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// resolveGenerateConfig layers built-in defaults, currseed.yaml in dir, the
// environment and the flags, in increasing precedence.
func resolveGenerateConfig(dir string, flags sourceFlags, logger currseed.Logger) (currseed.GenerateConfig, error) {
	cfg := config.Default()

	projectCfg, err := loadProjectConfig(dir)
	if err != nil {
		return currseed.GenerateConfig{}, err
	}
	if projectCfg != nil {
		logger.Verbose("Loaded %s", config.ConfigFileName)
		cfg.Merge(projectCfg)
	}

	env := params.Environ()
	if len(flags.envFiles) > 0 {
		fileEnv, err := params.ReadEnvFiles(flags.envFiles)
		if err != nil {
			return currseed.GenerateConfig{}, fmt.Errorf("%w: %w", currseed.ErrInvalidConfig, err)
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	if applied := params.ApplyEnv(cfg, env); len(applied) > 0 {
		logger.Verbose("Environment overrides: %s", strings.Join(applied, ", "))
	}

	if flags.output != "" {
		cfg.Output = flags.output
	}
	if err := params.ApplyCSVOverrides(cfg, flags.csv); err != nil {
		return currseed.GenerateConfig{}, err
	}

	generateCfg, err := cfg.GenerateConfig()
	if err != nil {
		return currseed.GenerateConfig{}, err
	}

	for _, p := range generateCfg.Providers {
		logger.Verbose("Provider %s: %s", p.Code, p.CSVPath)
	}
	logger.Verbose("Output: %s", generateCfg.OutputPath)

	return generateCfg, nil
}

// commandContext returns the command's context, or Background when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
