// Package config loads jassdoc settings from .jassdoc/config.yml with
// JASSDOC_* environment overrides.
package config

// Config represents the complete jassdoc configuration.
type Config struct {
	Input  InputConfig  `yaml:"input" mapstructure:"input"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Export ExportConfig `yaml:"export" mapstructure:"export"`
}

// InputConfig lists the declaration scripts to load.
type InputConfig struct {
	Scripts []string `yaml:"scripts" mapstructure:"scripts"` // .risor declaration scripts, loaded in order
	Exclude []string `yaml:"exclude" mapstructure:"exclude"` // glob patterns on source files; matches are not rendered
	Prelude bool     `yaml:"prelude" mapstructure:"prelude"` // declare the primitive types first
}

// OutputConfig configures page rendering.
type OutputConfig struct {
	Dir         string   `yaml:"dir" mapstructure:"dir"`
	Title       string   `yaml:"title" mapstructure:"title"`
	Locale      string   `yaml:"locale" mapstructure:"locale"`             // e.g. "en", "de"
	LocaleFiles []string `yaml:"locale_files" mapstructure:"locale_files"` // TOML catalogs
	Jobs        int      `yaml:"jobs" mapstructure:"jobs"`                 // 0 = GOMAXPROCS
}

// ExportConfig configures the relational export. Empty paths disable it.
type ExportConfig struct {
	Database string `yaml:"database" mapstructure:"database"`
	SQL      string `yaml:"sql" mapstructure:"sql"`
	Schema   bool   `yaml:"schema" mapstructure:"schema"` // prefix the SQL script with CREATE TABLE statements
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Scripts: []string{},
			Exclude: []string{},
			Prelude: true,
		},
		Output: OutputConfig{
			Dir:         "docs",
			Title:       "API Reference",
			Locale:      "en",
			LocaleFiles: []string{},
			Jobs:        0,
		},
		Export: ExportConfig{},
	}
}
