package synth

import (
	"log/slog"

	"object-synth/selector"
	"object-synth/settings"
)

type config struct {
	settings  settings.Settings
	selectors []selector.Selector
	logger    *slog.Logger
}

// Option configures a Synth.
type Option func(*config)

// WithSettings replaces the default settings.
func WithSettings(s settings.Settings) Option {
	return func(c *config) {
		c.settings = s
	}
}

// WithSelectors appends selectors. Later selectors take precedence.
func WithSelectors(selectors ...selector.Selector) Option {
	return func(c *config) {
		c.selectors = append(c.selectors, selectors...)
	}
}

// WithLogger sets the logger for graph construction and population.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
