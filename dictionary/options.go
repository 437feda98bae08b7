package dictionary

import (
	"log/slog"
)

const (
	// DefaultCapacity is the initial capacity of a SortedArrayDictionary.
	DefaultCapacity = 25

	// MinCapacity is the smallest initial capacity a SortedArrayDictionary
	// accepts. makeRoom always needs one free slot past the entries.
	MinCapacity = 2

	// MaxCapacity is the hard ceiling on a SortedArrayDictionary's capacity.
	MaxCapacity = 10000

	defaultName = "default"
)

type config struct {
	capacity int
	name     string
	logger   *slog.Logger
	metrics  bool
}

// Option configures a dictionary at construction time.
type Option func(*config)

// WithCapacity sets the initial capacity of a SortedArrayDictionary.
// It has no effect on a SortedLinkedDictionary.
func WithCapacity(capacity int) Option {
	return func(c *config) {
		c.capacity = capacity
	}
}

// WithName labels the dictionary in log lines and metrics.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the logger used for growth and capacity events.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics turns on the Prometheus metrics for this dictionary,
// labelled with the name given by WithName.
func WithMetrics() Option {
	return func(c *config) {
		c.metrics = true
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		capacity: DefaultCapacity,
		name:     defaultName,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	cfg.logger = cfg.logger.With("dictionary", cfg.name)

	return cfg
}
