package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, root, body string) {
	t.Helper()
	dir := filepath.Join(root, ".jassdoc")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o644))
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()
	cfg := Default()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "docs", cfg.Output.Dir)
	assert.Equal(t, "en", cfg.Output.Locale)
	assert.True(t, cfg.Input.Prelude)
	assert.Empty(t, cfg.Export.Database)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Output, cfg.Output)
}

func TestLoad_FromFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
input:
  scripts: [common.risor, units.risor]
  exclude: ["vendor/**"]
output:
  dir: site
  locale: de
  jobs: 4
export:
  database: out/doc.db
`)
	cfg, err := NewLoader(root).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"common.risor", "units.risor"}, cfg.Input.Scripts)
	assert.Equal(t, []string{"vendor/**"}, cfg.Input.Exclude)
	assert.Equal(t, "site", cfg.Output.Dir)
	assert.Equal(t, "de", cfg.Output.Locale)
	assert.Equal(t, 4, cfg.Output.Jobs)
	assert.Equal(t, "API Reference", cfg.Output.Title, "unset keys keep defaults")
	assert.Equal(t, "out/doc.db", cfg.Export.Database)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "output:\n  dir: site\n")
	t.Setenv("JASSDOC_OUTPUT_DIR", "public")
	t.Setenv("JASSDOC_EXPORT_SQL", "dump.sql")

	cfg, err := NewLoader(root).Load()
	require.NoError(t, err)
	assert.Equal(t, "public", cfg.Output.Dir)
	assert.Equal(t, "dump.sql", cfg.Export.SQL)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jassdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  title: Demo\n"), 0o644))

	cfg, err := NewFileLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "Demo", cfg.Output.Title)

	_, err = NewFileLoader(filepath.Join(t.TempDir(), "missing.yml")).Load()
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "output: [unclosed\n")
	_, err := NewLoader(root).Load()
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "output:\n  jobs: -2\n")
	_, err := NewLoader(root).Load()
	assert.ErrorIs(t, err, ErrInvalidJobs)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*Config)
		want   []error
	}{
		{"empty dir", func(c *Config) { c.Output.Dir = "" }, []error{ErrEmptyOutputDir}},
		{"negative jobs", func(c *Config) { c.Output.Jobs = -1 }, []error{ErrInvalidJobs}},
		{"bad locale", func(c *Config) { c.Output.Locale = "!!" }, []error{ErrInvalidLocale}},
		{"bad pattern", func(c *Config) { c.Input.Exclude = []string{"[a-"} }, []error{ErrInvalidPattern}},
		{"blank script", func(c *Config) { c.Input.Scripts = []string{"a.risor", ""} }, []error{ErrEmptyScript}},
		{"several", func(c *Config) {
			c.Output.Dir = ""
			c.Output.Jobs = -3
		}, []error{ErrEmptyOutputDir, ErrInvalidJobs}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			for _, want := range tt.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}
