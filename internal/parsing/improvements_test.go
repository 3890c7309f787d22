package parsing

import (
	"testing"

	"github.com/XenFolio/cv-ai/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractImprovements(t *testing.T) {
	body := `<details>
<summary><strong>Quantifier les résultats</strong> (priorité : haute)</summary>

Ajoutez des chiffres à chaque expérience.
  Par exemple : +30 % de ventes.

</details>

<details>
<summary>🟡 2. Reformuler l'accroche</summary>
L'accroche est trop générique.
</details>

<details>
<summary>**Add a skills section** [low]</summary>
Group tools by domain.
<details><summary>Nested</summary>ignored as a separate block</details>
</details>`

	got := ExtractImprovements(body)

	require.Len(t, got, 3)

	assert.Equal(t, "Quantifier les résultats", got[0].Title)
	assert.Equal(t, types.PriorityHigh, got[0].Priority)
	assert.Equal(t, "Ajoutez des chiffres à chaque expérience.\nPar exemple : +30 % de ventes.", got[0].Description)

	assert.Equal(t, "Reformuler l'accroche", got[1].Title)
	assert.Equal(t, types.PriorityMedium, got[1].Priority)
	assert.Equal(t, "L'accroche est trop générique.", got[1].Description)

	assert.Equal(t, "Add a skills section", got[2].Title)
	assert.Equal(t, types.PriorityLow, got[2].Priority)
	assert.Contains(t, got[2].Description, "Group tools by domain.")
}

func TestExtractImprovements_NoBlocks(t *testing.T) {
	got := ExtractImprovements("1. Add metrics\n2. Shorten summary")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSplitPriority(t *testing.T) {
	tests := []struct {
		summary  string
		title    string
		priority types.Priority
	}{
		{"Add metrics (priority: high)", "Add metrics", types.PriorityHigh},
		{"Add metrics (Priority: Medium)", "Add metrics", types.PriorityMedium},
		{"Ajouter un lien GitHub (priorité : basse)", "Ajouter un lien GitHub", types.PriorityLow},
		{"Shorten summary [élevée]", "Shorten summary", types.PriorityHigh},
		{"🔴 Fix the dates", "Fix the dates", types.PriorityHigh},
		{"🟢 Nice to have", "Nice to have", types.PriorityLow},
		{"No annotation", "No annotation", types.PriorityLow},
		{"Unknown level (priority: someday)", "Unknown level", types.PriorityLow},
		{"🔴 Annotation wins (priority: medium)", "Annotation wins", types.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.summary, func(t *testing.T) {
			title, priority := splitPriority(tt.summary)
			assert.Equal(t, tt.title, title)
			assert.Equal(t, tt.priority, priority)
		})
	}
}

func TestParsePriority(t *testing.T) {
	assert.Equal(t, types.PriorityHigh, ParsePriority(" Haute "))
	assert.Equal(t, types.PriorityMedium, ParsePriority("moyenne"))
	assert.Equal(t, types.PriorityLow, ParsePriority("faible"))
	assert.Equal(t, types.PriorityLow, ParsePriority(""))
}
