// Package config loads CLI settings from an optional file and the environment.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/vaktplan/vaktplan-go/pkg/vaktplan"
)

// EnvPrefix prefixes environment overrides, e.g. VAKTPLAN_LAYOUT__DATE_START_COLUMN=5.
const EnvPrefix = "VAKTPLAN_"

type Config struct {
	Sheet  string       `json:"sheet"`
	Layout LayoutConfig `json:"layout"`
	Output OutputConfig `json:"output"`
	Log    LogConfig    `json:"log"`
}

// LayoutConfig overrides the fixed roster columns (0-based).
type LayoutConfig struct {
	NameColumn      int `json:"name_column"`
	DateStartColumn int `json:"date_start_column"`
}

// OutputConfig selects how results are rendered.
type OutputConfig struct {
	// Format is "json" or "table".
	Format string `json:"format"`
	Pretty bool   `json:"pretty"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level   string `json:"level"`
	Console bool   `json:"console"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Sheet: vaktplan.DefaultSheetName,
		Layout: LayoutConfig{
			NameColumn:      vaktplan.DefaultNameColumn,
			DateStartColumn: vaktplan.DefaultDateStartColumn,
		},
		Output: OutputConfig{Format: "json"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the config file at path, if any, then applies environment
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills fields left blank by the file or environment.
func (c *Config) SetDefaults() {
	if strings.TrimSpace(c.Sheet) == "" {
		c.Sheet = vaktplan.DefaultSheetName
	}
	if c.Output.Format == "" {
		c.Output.Format = "json"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks field values.
func (c Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// Validate checks column indices.
func (c LayoutConfig) Validate() error {
	if c.NameColumn < 0 {
		return fmt.Errorf("name_column must be >= 0, got %d", c.NameColumn)
	}
	if c.DateStartColumn < 0 {
		return fmt.Errorf("date_start_column must be >= 0, got %d", c.DateStartColumn)
	}
	if c.DateStartColumn == c.NameColumn {
		return fmt.Errorf("date_start_column and name_column must differ")
	}
	return nil
}

// Validate checks the output format.
func (c OutputConfig) Validate() error {
	switch c.Format {
	case "json", "table":
		return nil
	}
	return fmt.Errorf("unknown format %s", c.Format)
}

// Layout converts the layout section to an extraction layout.
func (c LayoutConfig) Layout() vaktplan.Layout {
	return vaktplan.Layout{
		NameColumn:      c.NameColumn,
		DateStartColumn: c.DateStartColumn,
	}
}
