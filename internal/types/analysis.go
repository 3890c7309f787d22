// Package types provides type definitions for the structured records produced from generator output.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// DefaultScore is the neutral value every score holds until extraction overwrites it.
const DefaultScore = 75

// Priority ranks an improvement suggestion
type Priority string

// Priority values
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// CVSections holds the per-section scores of a CV analysis.
type CVSections struct {
	Structure  int `json:"structure" validate:"min=0,max=100"`
	Content    int `json:"content" validate:"min=0,max=100"`
	Skills     int `json:"skills" validate:"min=0,max=100"`
	Experience int `json:"experience" validate:"min=0,max=100"`
}

// LetterSections holds the per-section scores of a cover-letter analysis.
// Hook and CallToAction are the two persuasion sections a CV does not have.
type LetterSections struct {
	Structure    int `json:"structure" validate:"min=0,max=100"`
	Content      int `json:"content" validate:"min=0,max=100"`
	Skills       int `json:"skills" validate:"min=0,max=100"`
	Experience   int `json:"experience" validate:"min=0,max=100"`
	Hook         int `json:"hook" validate:"min=0,max=100"`
	CallToAction int `json:"call_to_action" validate:"min=0,max=100"`
}

// Sections constrains the section-score sets an envelope can carry.
type Sections interface {
	CVSections | LetterSections
}

// DefaultCVSections returns CV section scores all set to DefaultScore.
func DefaultCVSections() CVSections {
	return CVSections{
		Structure:  DefaultScore,
		Content:    DefaultScore,
		Skills:     DefaultScore,
		Experience: DefaultScore,
	}
}

// DefaultLetterSections returns cover-letter section scores all set to DefaultScore.
func DefaultLetterSections() LetterSections {
	return LetterSections{
		Structure:    DefaultScore,
		Content:      DefaultScore,
		Skills:       DefaultScore,
		Experience:   DefaultScore,
		Hook:         DefaultScore,
		CallToAction: DefaultScore,
	}
}

// Keywords groups the keyword sets reported by the generator.
// Each list is de-duplicated case-insensitively and keeps source order and casing.
type Keywords struct {
	Found       []string `json:"found" validate:"dive,required"`
	Missing     []string `json:"missing" validate:"dive,required"`
	Suggestions []string `json:"suggestions" validate:"dive,required"`
}

// Improvement is one prioritized improvement suggestion
type Improvement struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority" validate:"oneof=high medium low"`
}

// AnalysisEnvelope is the fully populated result of parsing one analysis response.
// RawSource always holds the untouched generator output.
type AnalysisEnvelope[S Sections] struct {
	OverallScore    int           `json:"overall_score" validate:"min=0,max=100"`
	Sections        S             `json:"sections"`
	Strengths       []string      `json:"strengths" validate:"dive,required"`
	Weaknesses      []string      `json:"weaknesses" validate:"dive,required"`
	Recommendations []string      `json:"recommendations" validate:"dive,required"`
	Keywords        Keywords      `json:"keywords"`
	Improvements    []Improvement `json:"improvements" validate:"dive"`
	RawSource       string        `json:"raw_source"`
}

// CVAnalysis is the envelope returned for CV analyses.
type CVAnalysis = AnalysisEnvelope[CVSections]

// LetterAnalysis is the envelope returned for cover-letter analyses.
type LetterAnalysis = AnalysisEnvelope[LetterSections]

// NewAnalysisEnvelope builds the default envelope: every score at DefaultScore,
// every list empty, RawSource set to raw.
func NewAnalysisEnvelope[S Sections](raw string, sections S) *AnalysisEnvelope[S] {
	return &AnalysisEnvelope[S]{
		OverallScore:    DefaultScore,
		Sections:        sections,
		Strengths:       []string{},
		Weaknesses:      []string{},
		Recommendations: []string{},
		Keywords: Keywords{
			Found:       []string{},
			Missing:     []string{},
			Suggestions: []string{},
		},
		Improvements: []Improvement{},
		RawSource:    raw,
	}
}

// Validate checks score bounds, enum membership and non-empty list items.
func (a *AnalysisEnvelope[S]) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}
