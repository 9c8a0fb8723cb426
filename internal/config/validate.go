package config

import (
	"errors"
	"fmt"

	"github.com/gobwas/glob"
	"golang.org/x/text/language"
)

var (
	// ErrEmptyOutputDir indicates a missing output directory
	ErrEmptyOutputDir = errors.New("empty output directory")

	// ErrInvalidJobs indicates a negative job count
	ErrInvalidJobs = errors.New("invalid job count")

	// ErrInvalidLocale indicates an unparsable language tag
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrInvalidPattern indicates an exclude pattern that does not compile
	ErrInvalidPattern = errors.New("invalid exclude pattern")

	// ErrEmptyScript indicates a blank entry in the script list
	ErrEmptyScript = errors.New("empty script path")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	for i, s := range cfg.Input.Scripts {
		if s == "" {
			errs = append(errs, fmt.Errorf("%w: input.scripts[%d]", ErrEmptyScript, i))
		}
	}
	for _, p := range cfg.Input.Exclude {
		if _, err := glob.Compile(p, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, p, err))
		}
	}
	if cfg.Output.Dir == "" {
		errs = append(errs, ErrEmptyOutputDir)
	}
	if cfg.Output.Jobs < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidJobs, cfg.Output.Jobs))
	}
	if cfg.Output.Locale != "" {
		if _, err := language.Parse(cfg.Output.Locale); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLocale, cfg.Output.Locale))
		}
	}
	return errors.Join(errs...)
}
