package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory.
const FileName = "outlay.yaml"

// Config represents the top-level outlay.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Display DisplayConfig `yaml:"display"`
	Charts  ChartsConfig  `yaml:"charts"`
}

// LedgerConfig locates the persisted expense ledger.
type LedgerConfig struct {
	Path string `yaml:"path"`
}

// DisplayConfig controls text output.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// ChartsConfig controls chart rendering output.
type ChartsConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// Load reads an outlay.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default() *Config {
	return &Config{
		Ledger:  LedgerConfig{Path: "expenses.json"},
		Display: DisplayConfig{Currency: "$"},
		Charts:  ChartsConfig{OutputDir: "charts"},
	}
}

// Resolve loads outlay.yaml from the current directory when present, falling
// back to defaults, then applies OUTLAY_* environment overrides.
func Resolve() (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(FileName); err == nil {
		loaded, err := Load(FileName)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Ledger.Path = getEnv("OUTLAY_LEDGER", c.Ledger.Path)
	c.Display.Currency = getEnv("OUTLAY_CURRENCY", c.Display.Currency)
	c.Charts.OutputDir = getEnv("OUTLAY_CHART_DIR", c.Charts.OutputDir)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
