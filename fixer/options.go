package fixer

import (
	"fmt"

	"github.com/erraggy/identcase/logging"
	"github.com/erraggy/identcase/reserved"
)

// Option is a function that configures a fix operation
type Option func(*fixConfig) error

// fixConfig holds configuration for fix operations
type fixConfig struct {
	reserved    *reserved.Set
	concurrency int
	source      string
	logger      logging.Logger
}

// newFromOptions applies option functions and returns a configured Fixer
func newFromOptions(opts ...Option) (*Fixer, error) {
	cfg := &fixConfig{
		concurrency: 1,
		logger:      logging.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("fixer: invalid options: %w", err)
		}
	}

	return &Fixer{
		Reserved:    cfg.reserved,
		Concurrency: cfg.concurrency,
		Source:      cfg.source,
		Logger:      cfg.logger,
	}, nil
}

// WithReserved replaces the reserved-word set consulted by FormatAll
func WithReserved(set *reserved.Set) Option {
	return func(cfg *fixConfig) error {
		if set == nil {
			return fmt.Errorf("reserved set cannot be nil")
		}
		cfg.reserved = set
		return nil
	}
}

// WithConcurrency sets the number of goroutines converting candidates.
// Output is identical for every value.
func WithConcurrency(n int) Option {
	return func(cfg *fixConfig) error {
		if n < 1 {
			return fmt.Errorf("concurrency must be at least 1, got %d", n)
		}
		cfg.concurrency = n
		return nil
	}
}

// WithSource names the document in errors and issues
func WithSource(name string) Option {
	return func(cfg *fixConfig) error {
		cfg.source = name
		return nil
	}
}

// WithLogger sets the logger for debug output
func WithLogger(l logging.Logger) Option {
	return func(cfg *fixConfig) error {
		cfg.logger = l
		return nil
	}
}
