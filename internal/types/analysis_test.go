package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalysisEnvelope_Defaults(t *testing.T) {
	env := NewAnalysisEnvelope("raw text", DefaultCVSections())

	assert.Equal(t, DefaultScore, env.OverallScore)
	assert.Equal(t, CVSections{Structure: 75, Content: 75, Skills: 75, Experience: 75}, env.Sections)
	assert.Empty(t, env.Strengths)
	assert.NotNil(t, env.Strengths, "lists should be empty, not nil")
	assert.NotNil(t, env.Keywords.Found)
	assert.NotNil(t, env.Improvements)
	assert.Equal(t, "raw text", env.RawSource)
	assert.NoError(t, env.Validate())
}

func TestAnalysisEnvelope_JSONShape(t *testing.T) {
	env := NewAnalysisEnvelope("", DefaultLetterSections())

	jsonBytes, err := json.Marshal(env)
	require.NoError(t, err)

	s := string(jsonBytes)
	assert.Contains(t, s, `"overall_score":75`)
	assert.Contains(t, s, `"call_to_action":75`)
	assert.Contains(t, s, `"hook":75`)
	assert.Contains(t, s, `"strengths":[]`)
	assert.Contains(t, s, `"keywords":{"found":[],"missing":[],"suggestions":[]}`)
	assert.Contains(t, s, `"raw_source":""`)
}

func TestAnalysisEnvelope_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CVAnalysis)
		wantErr bool
	}{
		{"defaults are valid", func(*CVAnalysis) {}, false},
		{"overall above 100", func(a *CVAnalysis) { a.OverallScore = 101 }, true},
		{"negative section score", func(a *CVAnalysis) { a.Sections.Skills = -1 }, true},
		{"unknown priority", func(a *CVAnalysis) {
			a.Improvements = []Improvement{{Title: "x", Priority: "urgent"}}
		}, true},
		{"empty strength item", func(a *CVAnalysis) { a.Strengths = []string{""} }, true},
		{"empty keyword", func(a *CVAnalysis) { a.Keywords.Missing = []string{"Go", ""} }, true},
		{"valid improvement", func(a *CVAnalysis) {
			a.Improvements = []Improvement{{Title: "Add metrics", Priority: PriorityHigh}}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewAnalysisEnvelope("", DefaultCVSections())
			tt.mutate(env)
			err := env.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
