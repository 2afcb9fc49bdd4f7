package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"rsdoc/internal/generator"
)

// Config holds the generation flags read from config.yaml. Pointer fields
// distinguish "not set" from an explicit false so defaults survive partial
// files.
type Config struct {
	Generation struct {
		IncludeExamples       *bool `yaml:"include_examples"`
		ExamplesOnlyForPublic *bool `yaml:"examples_only_for_public"`
		IncludeSafetyDetails  *bool `yaml:"include_safety_details"`
	} `yaml:"generation"`
}

// LoadConfig reads the YAML config at path and applies overrides.
// A missing file is not an error: documented defaults apply.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	var cfg Config

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with Environment Variables if present
	applyBoolEnv("RSDOC_INCLUDE_EXAMPLES", &cfg.Generation.IncludeExamples)
	applyBoolEnv("RSDOC_EXAMPLES_ONLY_FOR_PUBLIC", &cfg.Generation.ExamplesOnlyForPublic)
	applyBoolEnv("RSDOC_INCLUDE_SAFETY_DETAILS", &cfg.Generation.IncludeSafetyDetails)

	return &cfg, nil
}

func applyBoolEnv(key string, dst **bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return
	}
	*dst = &v
}

// Options resolves the configured flags onto the generator defaults
// (examples on, public-only gating off, safety details off).
func (c *Config) Options() generator.Options {
	opts := generator.DefaultOptions()
	if v := c.Generation.IncludeExamples; v != nil {
		opts.IncludeExamples = *v
	}
	if v := c.Generation.ExamplesOnlyForPublic; v != nil {
		opts.ExamplesOnlyForPublicOrExtern = *v
	}
	if v := c.Generation.IncludeSafetyDetails; v != nil {
		opts.IncludeSafetyDetails = *v
	}
	return opts
}
