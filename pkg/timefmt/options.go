package timefmt

import "time"

const (
	DefaultDateSeparator = "-"
	DefaultTimeSeparator = ":"
	DefaultTemplate      = "{y}-{m}-{d} {h}:{i}:{s}"
)

// Option configures a single formatting call.
type Option func(*config)

type config struct {
	dateSeparator string
	timeSeparator string
	template      string
	location      *time.Location
}

func defaultConfig() *config {
	return &config{
		dateSeparator: DefaultDateSeparator,
		timeSeparator: DefaultTimeSeparator,
		template:      DefaultTemplate,
	}
}

// WithDateSeparator sets the string placed between year, month and day.
// An empty separator is allowed.
func WithDateSeparator(sep string) Option {
	return func(c *config) {
		c.dateSeparator = sep
	}
}

// WithTimeSeparator sets the string placed between hour, minute and second.
func WithTimeSeparator(sep string) Option {
	return func(c *config) {
		c.timeSeparator = sep
	}
}

// WithTemplate sets the FormatTemplate layout. An empty template keeps the default.
func WithTemplate(tpl string) Option {
	return func(c *config) {
		if tpl != "" {
			c.template = tpl
		}
	}
}

// WithLocation sets the zone used to resolve calendar fields.
// Nil is ignored.
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		if loc != nil {
			c.location = loc
		}
	}
}

func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}
