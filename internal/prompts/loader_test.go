package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get(AnalysisFile, KeyCVAnalysis)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Score global")
	assert.Contains(t, prompt, "{{.Document}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get(AnalysisFile, "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestFormat(t *testing.T) {
	got := Format("Analyse {{.Document}} pour {{.Role}} {{.Unknown}}", map[string]string{
		"Document": "ce CV",
		"Role":     "{{.Document}}",
	})

	assert.Equal(t, "Analyse ce CV pour {{.Document}} {{.Unknown}}", got,
		"substituted values are not expanded again")
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		jobContext string
		contains   []string
	}{
		{"cv", KeyCVAnalysis, "", []string{"Compétences", "Mon CV"}},
		{"letter with job context", KeyLetterAnalysis, "Développeur Go", []string{"Accroche", "Poste visé :\nDéveloppeur Go", "Mon CV"}},
		{"corrections", KeyGrammarCorrections, "ignored", []string{"| Position |", "Texte corrigé", "Mon CV"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.key, "Mon CV", tt.jobContext)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			assert.NotContains(t, got, "{{.")
		})
	}

	_, err := Build("unknown", "x", "")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	keys, err := List(AnalysisFile)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyCVAnalysis, KeyLetterAnalysis}, keys)
}
