package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrymomot/utilkit/pkg/timefmt"
)

// Config holds the CLI defaults, read from UTILKIT_* environment variables.
type Config struct {
	Env           string `env:"UTILKIT_ENV" envDefault:"development"`
	LogLevel      string `env:"UTILKIT_LOG_LEVEL"`
	Timezone      string `env:"UTILKIT_TIMEZONE" envDefault:"Local"`
	DateSeparator string `env:"UTILKIT_DATE_SEPARATOR" envDefault:"-"`
	TimeSeparator string `env:"UTILKIT_TIME_SEPARATOR" envDefault:":"`
	Template      string `env:"UTILKIT_TEMPLATE" envDefault:"{y}-{m}-{d} {h}:{i}:{s}"`
	Output        string `env:"UTILKIT_OUTPUT" envDefault:"json"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		Env:           "development",
		Timezone:      "Local",
		DateSeparator: timefmt.DefaultDateSeparator,
		TimeSeparator: timefmt.DefaultTimeSeparator,
		Template:      timefmt.DefaultTemplate,
		Output:        string(OutputJSON),
	}
}

func (c Config) location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.Join(ErrInvalidTimezone, fmt.Errorf("%q: %w", c.Timezone, err))
	}
	return loc, nil
}
