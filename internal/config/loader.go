package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
	file    string
}

// NewLoader creates a loader that looks for .jassdoc/config.yml under rootDir.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// NewFileLoader creates a loader for an explicit config file, which must exist.
func NewFileLoader(path string) Loader {
	return &loader{file: path}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (JASSDOC_*)
// 2. Config file
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.file != "" {
		v.SetConfigFile(l.file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(l.rootDir, ".jassdoc"))
	}

	v.SetEnvPrefix("JASSDOC")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., JASSDOC_OUTPUT_DIR)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setDefaults configures viper with default values. Every key needs a
// default so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("input.scripts", defaults.Input.Scripts)
	v.SetDefault("input.exclude", defaults.Input.Exclude)
	v.SetDefault("input.prelude", defaults.Input.Prelude)

	v.SetDefault("output.dir", defaults.Output.Dir)
	v.SetDefault("output.title", defaults.Output.Title)
	v.SetDefault("output.locale", defaults.Output.Locale)
	v.SetDefault("output.locale_files", defaults.Output.LocaleFiles)
	v.SetDefault("output.jobs", defaults.Output.Jobs)

	v.SetDefault("export.database", defaults.Export.Database)
	v.SetDefault("export.sql", defaults.Export.SQL)
	v.SetDefault("export.schema", defaults.Export.Schema)
}
