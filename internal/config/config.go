// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds tool defaults that flags may override.
type Config struct {
	// Subsample is the one-based runfile subsample to compare.
	Subsample int `yaml:"subsample"`

	// Output destination: OutDir/OutFile is opened in append mode.
	OutDir  string `yaml:"out_dir"`
	OutFile string `yaml:"out_file"`

	// Extensions of the two classification files located per run name.
	Extensions ExtensionsConfig `yaml:"extensions"`

	Logging LoggingConfig `yaml:"logging"`
}

// ExtensionsConfig names the classification file suffixes for each axis.
type ExtensionsConfig struct {
	Machine string `yaml:"machine"` // automated classifier output
	Expert  string `yaml:"expert"`  // human-assigned ground truth
}

// LoggingConfig configures progress logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Subsample: 1,
		OutDir:    ".",
		OutFile:   "ConfusionMatrix.txt",
		Extensions: ExtensionsConfig{
			Machine: ".pcl",
			Expert:  ".acl",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config file over the defaults. A missing file simply
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Subsample < 1 {
		return fmt.Errorf("subsample must be ≥ 1, got %d", c.Subsample)
	}
	if c.OutFile == "" {
		return fmt.Errorf("out_file must not be empty")
	}
	if c.Extensions.Machine == "" || c.Extensions.Expert == "" {
		return fmt.Errorf("extensions must not be empty")
	}
	return nil
}
