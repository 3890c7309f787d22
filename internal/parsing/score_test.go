package parsing

import (
	"fmt"
	"testing"

	"github.com/XenFolio/cv-ai/internal/patterns"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeScore(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     int
		wantOK   bool
	}{
		{"bare integer", "82", 82, true},
		{"out of 100", " : 85/100", 85, true},
		{"out of 20", "16/20", 80, true},
		{"out of 10 with spaces", "7 / 10", 70, true},
		{"rounds half up", "1/8", 13, true},
		{"decimal comma", "8,5/10", 85, true},
		{"decimal dot", "92.4", 92, true},
		{"clamped high", "150", 100, true},
		{"clamped ratio", "25/20", 100, true},
		{"zero denominator", "5/0", 0, false},
		{"no token", "excellent", 0, false},
		{"empty", "", 0, false},
		{"first token wins", "score 60/100 (was 40)", 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeScore(tt.fragment)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeScore_AllPercentTokens(t *testing.T) {
	for n := 0; n <= 100; n++ {
		got, ok := NormalizeScore(fmt.Sprintf("%d/100", n))
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}
}

func TestOverallScore(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{"inline label", "Score Global : 85/100\n", 85, true},
		{"score on heading line", "## 📊 Score global : 72/100\n\nBon CV.", 72, true},
		{"score in heading body", "## Overall Score\n\n**64/100**\n\nSolid.", 64, true},
		{"only first paragraph of body", "## Overall score\n\nNo number here.\n\n12 items later", 0, false},
		{"bold label", "**Note globale** : 17/20", 85, true},
		{"absent", "## Strengths\n- Clear", 0, false},
		{"label without token", "Score global : excellent", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := overallScore(NewDocument(tt.text))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSectionScores(t *testing.T) {
	text := `## Analyse par section
- **Structure** : 16/20
- **Contenu** : 70/100
- Compétences : pas évaluées

## Points forts
- Expérience solide de 5 ans`

	got := sectionScores(NewDocument(text),
		patterns.StructureLabel, patterns.ContentLabel, patterns.SkillsLabel, patterns.ExperienceLabel)

	assert.Equal(t, map[string]int{"structure": 80, "content": 70}, got,
		"only labels followed by a score token count, and only inside the scores region")
}

func TestSectionScores_WholeTextFallback(t *testing.T) {
	text := "Structure: 9/10\nSkills - 55\n"

	got := sectionScores(NewDocument(text), patterns.StructureLabel, patterns.SkillsLabel)

	assert.Equal(t, map[string]int{"structure": 90, "skills": 55}, got)
}

func TestSectionScores_WholeTextFallbackNeedsStandaloneScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]int
	}{
		{"bare number ending the line", "Skills : 55\n", map[string]int{"skills": 55}},
		{"ratio with comment", "Skills : 8/10, solid\n", map[string]int{"skills": 80}},
		{"bold ratio", "**Experience** : **16/20**\n", map[string]int{"experience": 80}},
		{"number followed by prose", "Experience : 5 ans chez Google\n", map[string]int{}},
		{"bullet in strengths", "## Strengths\n- Skills: 9/10 languages\n", map[string]int{}},
		{"bullet in recommendations", "## Recommendations\n- Experience : 3\n", map[string]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sectionScores(NewDocument(tt.text), patterns.SkillsLabel, patterns.ExperienceLabel)
			assert.Equal(t, tt.want, got)
		})
	}
}
