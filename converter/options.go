package converter

import (
	"fmt"

	"github.com/erraggy/identcase/convention"
	"github.com/erraggy/identcase/logging"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for conversion operations
type convertConfig struct {
	identifier     *string
	convention     convention.Convention
	language       string
	languages      convention.LanguageTable
	skipValidation bool
	logger         logging.Logger
}

// ConvertWithOptions converts an identifier using functional options.
// WithIdentifier is required.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithIdentifier("user_name"),
//	    converter.WithLanguage("csharp"),
//	)
func ConvertWithOptions(opts ...Option) (*ConvertResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	c := &Converter{
		Convention:     cfg.convention,
		Language:       cfg.language,
		Languages:      cfg.languages,
		SkipValidation: cfg.skipValidation,
		Logger:         cfg.logger,
	}
	return c.Convert(*cfg.identifier)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		languages: convention.DefaultLanguageTable(),
		logger:    logging.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.identifier == nil {
		return nil, fmt.Errorf("no identifier specified: use WithIdentifier")
	}

	return cfg, nil
}

// WithIdentifier specifies the identifier to convert.
// Empty and malformed identifiers are accepted here and rejected by validation.
func WithIdentifier(identifier string) Option {
	return func(cfg *convertConfig) error {
		cfg.identifier = &identifier
		return nil
	}
}

// WithConvention specifies the target convention
func WithConvention(c convention.Convention) Option {
	return func(cfg *convertConfig) error {
		if !c.Valid() {
			return fmt.Errorf("unsupported convention %q", c)
		}
		cfg.convention = c
		return nil
	}
}

// WithLanguage selects the target convention from the language table.
// An explicit WithConvention takes precedence.
func WithLanguage(lang string) Option {
	return func(cfg *convertConfig) error {
		cfg.language = lang
		return nil
	}
}

// WithLanguageTable replaces the language table used by WithLanguage
func WithLanguageTable(t convention.LanguageTable) Option {
	return func(cfg *convertConfig) error {
		if t == nil {
			return fmt.Errorf("language table cannot be nil")
		}
		cfg.languages = t
		return nil
	}
}

// WithSkipValidation disables the variable-name shape check
func WithSkipValidation(skip bool) Option {
	return func(cfg *convertConfig) error {
		cfg.skipValidation = skip
		return nil
	}
}

// WithLogger sets the logger for debug output
func WithLogger(l logging.Logger) Option {
	return func(cfg *convertConfig) error {
		cfg.logger = l
		return nil
	}
}
