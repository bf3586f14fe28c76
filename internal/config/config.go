package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/mathclaw/currseed/pkg/currseed"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ProviderConfig struct {
	Code    string   `yaml:"code"`
	Name    string   `yaml:"name"`
	CSV     string   `yaml:"csv"`
	Classes []string `yaml:"classes"`
}

type ProjectConfig struct {
	Namespace string            `yaml:"namespace,omitempty"`
	Output    string            `yaml:"output,omitempty"`
	Classes   map[string]string `yaml:"classes,omitempty"`
	Providers []ProviderConfig  `yaml:"providers,omitempty"`
}

const ConfigFileName = "currseed.yaml"

func Load(dir string) (*ProjectConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", configPath, currseed.ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// Merge layers override on top of c. Scalar fields replace when set, class
// names merge per code, and a non-empty provider list replaces c's list.
func (c *ProjectConfig) Merge(override *ProjectConfig) {
	if override == nil {
		return
	}
	if override.Namespace != "" {
		c.Namespace = override.Namespace
	}
	if override.Output != "" {
		c.Output = override.Output
	}
	if len(override.Classes) > 0 && c.Classes == nil {
		c.Classes = make(map[string]string, len(override.Classes))
	}
	for code, name := range override.Classes {
		c.Classes[code] = name
	}
	if len(override.Providers) > 0 {
		c.Providers = append([]ProviderConfig(nil), override.Providers...)
	}
}

// GenerateConfig converts the project configuration into pipeline input.
// The result still needs GenerateConfig.Validate.
func (c *ProjectConfig) GenerateConfig() (currseed.GenerateConfig, error) {
	ns, err := uuid.Parse(c.Namespace)
	if err != nil {
		return currseed.GenerateConfig{}, fmt.Errorf("namespace %q: %w: %w", c.Namespace, currseed.ErrInvalidConfig, err)
	}

	providers := make([]currseed.Provider, 0, len(c.Providers))
	for _, p := range c.Providers {
		providers = append(providers, currseed.Provider{
			Code:    p.Code,
			Name:    p.Name,
			CSVPath: p.CSV,
			Classes: append([]string(nil), p.Classes...),
		})
	}

	classes := make(map[string]string, len(c.Classes))
	for code, name := range c.Classes {
		classes[code] = name
	}

	return currseed.GenerateConfig{
		Providers:  providers,
		Classes:    classes,
		Namespace:  ns,
		OutputPath: c.Output,
	}, nil
}

// Provider returns the provider with the given code, or nil.
func (c *ProjectConfig) Provider(code string) *ProviderConfig {
	for i := range c.Providers {
		if c.Providers[i].Code == code {
			return &c.Providers[i]
		}
	}
	return nil
}
