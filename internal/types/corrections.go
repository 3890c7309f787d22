package types

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// ErrorKind classifies a language error
type ErrorKind string

// ErrorKind values
const (
	KindSpelling    ErrorKind = "spelling"
	KindGrammar     ErrorKind = "grammar"
	KindConjugation ErrorKind = "conjugation"
	KindAgreement   ErrorKind = "agreement"
	KindPunctuation ErrorKind = "punctuation"
)

// Severity grades how serious a language error is
type Severity string

// Severity values
const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// Span is a pair of character (rune) offsets into a plain text, start inclusive, end exclusive.
type Span struct {
	Start int `json:"start" validate:"min=0"`
	End   int `json:"end" validate:"gtefield=Start"`
}

// Len returns the number of characters the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// GrammarError is one correction reported by the generator.
type GrammarError struct {
	Span        Span      `json:"span"`
	Original    string    `json:"original"`
	Correction  string    `json:"correction"`
	Kind        ErrorKind `json:"kind" validate:"oneof=spelling grammar conjugation agreement punctuation"`
	Severity    Severity  `json:"severity" validate:"oneof=critical major minor"`
	Explanation string    `json:"explanation"`
}

// CorrectionResult is the parsed outcome of a grammar-correction response.
type CorrectionResult struct {
	Errors        []GrammarError `json:"errors" validate:"dive"`
	CorrectedText string         `json:"corrected_text"`
	RawSource     string         `json:"raw_source"`
}

// NewCorrectionResult builds the default result: no errors and the original text unchanged.
func NewCorrectionResult(raw, original string) *CorrectionResult {
	return &CorrectionResult{
		Errors:        []GrammarError{},
		CorrectedText: original,
		RawSource:     raw,
	}
}

// Validate checks enum membership and span ordering of every error.
func (r *CorrectionResult) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ValidateAgainst additionally checks that every span lies inside original.
func (r *CorrectionResult) ValidateAgainst(original string) error {
	if err := r.Validate(); err != nil {
		return err
	}
	n := utf8.RuneCountInString(original)
	for i, e := range r.Errors {
		if e.Span.End > n {
			return fmt.Errorf("errors[%d].span: end %d exceeds text length %d", i, e.Span.End, n)
		}
	}
	return nil
}
