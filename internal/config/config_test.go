package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaktplan/vaktplan-go/pkg/vaktplan"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, vaktplan.DefaultSheetName, cfg.Sheet)
	assert.Equal(t, vaktplan.DefaultLayout(), cfg.Layout.Layout())
	assert.Equal(t, "json", cfg.Output.Format)
	assert.False(t, cfg.Output.Pretty)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `sheet: "Vakter 2024"
layout:
  date_start_column: 5
output:
  format: table
log:
  level: debug
  console: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"sheet", cfg.Sheet, "Vakter 2024"},
		{"name_column", cfg.Layout.NameColumn, 0},
		{"date_start_column", cfg.Layout.DateStartColumn, 5},
		{"format", cfg.Output.Format, "table"},
		{"log.level", cfg.Log.Level, "debug"},
		{"log.console", cfg.Log.Console, true},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output": {"pretty": true}}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Output.Pretty)
	assert.Equal(t, vaktplan.DefaultSheetName, cfg.Sheet)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("VAKTPLAN_SHEET", "Fra miljø")
	t.Setenv("VAKTPLAN_LAYOUT__DATE_START_COLUMN", "6")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Fra miljø", cfg.Sheet)
	assert.Equal(t, 6, cfg.Layout.DateStartColumn)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("config.toml")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative name column", func(c *Config) { c.Layout.NameColumn = -1 }},
		{"negative date column", func(c *Config) { c.Layout.DateStartColumn = -1 }},
		{"overlapping columns", func(c *Config) { c.Layout.DateStartColumn = c.Layout.NameColumn }},
		{"unknown format", func(c *Config) { c.Output.Format = "pdf" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		assert.Error(t, cfg.Validate(), tt.name)
	}
	assert.NoError(t, Default().Validate())
}

func TestSetDefaults(t *testing.T) {
	cfg := Config{Sheet: "  "}
	cfg.SetDefaults()
	assert.Equal(t, vaktplan.DefaultSheetName, cfg.Sheet)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}
