package converter

import (
	"fmt"

	"github.com/erraggy/identcase/convention"
	"github.com/erraggy/identcase/identerrors"
	"github.com/erraggy/identcase/logging"
	"github.com/erraggy/identcase/tokenizer"
	"github.com/erraggy/identcase/validator"
)

// ConvertResult contains the outcome of converting one identifier.
type ConvertResult struct {
	// Original is the identifier as given
	Original string `json:"original" yaml:"original"`
	// Converted is the identifier rendered under Convention
	Converted string `json:"converted" yaml:"converted"`
	// Words is the word sequence the identifier was split into
	Words []string `json:"words" yaml:"words"`
	// Convention is the target convention
	Convention convention.Convention `json:"convention" yaml:"convention"`
	// Changed is false when Converted equals Original
	Changed bool `json:"changed" yaml:"changed"`
}

// Converter converts identifiers to a configured convention.
type Converter struct {
	// Convention is the target convention. When empty, Language selects one.
	Convention convention.Convention
	// Language selects the convention from Languages when Convention is empty
	Language string
	// Languages maps languages to default conventions (nil uses the built-in table)
	Languages convention.LanguageTable
	// SkipValidation disables the variable-name shape check
	SkipValidation bool
	// Logger receives debug output (nil disables logging)
	Logger logging.Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		Convention: convention.CamelCase,
		Languages:  convention.DefaultLanguageTable(),
		Logger:     logging.NopLogger{},
	}
}

// Convert renders identifier under c without validation.
// It is equivalent to convention.Render(tokenizer.Tokenize(identifier), c).
func Convert(identifier string, c convention.Convention) string {
	return convention.Render(tokenizer.Tokenize(identifier), c)
}

// Target returns the convention the converter will render to.
func (cv *Converter) Target() convention.Convention {
	if cv.Convention != "" {
		return cv.Convention
	}
	languages := cv.Languages
	if languages == nil {
		languages = convention.DefaultLanguageTable()
	}
	return languages.Lookup(cv.Language, convention.CamelCase)
}

// Convert validates identifier and converts it to the target convention.
// An unchanged identifier returns the result with an error matching
// identerrors.ErrNoOp.
func (cv *Converter) Convert(identifier string) (*ConvertResult, error) {
	log := logging.OrNop(cv.Logger)

	if !cv.SkipValidation {
		if err := validator.Validate(identifier); err != nil {
			log.Debug("rejected identifier", "identifier", identifier, "error", err)
			return nil, err
		}
	}

	target := cv.Target()
	if !target.Valid() {
		return nil, fmt.Errorf("converter: unsupported convention %q", target)
	}

	words := tokenizer.Tokenize(identifier)
	converted := convention.Render(words, target)
	result := &ConvertResult{
		Original:   identifier,
		Converted:  converted,
		Words:      words,
		Convention: target,
		Changed:    converted != identifier,
	}

	log.Debug("converted identifier",
		"identifier", identifier,
		"convention", target.String(),
		"result", converted,
		"changed", result.Changed,
	)

	if !result.Changed {
		return result, identerrors.NewNoOpError(identifier, target.String())
	}
	return result, nil
}
