package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/XenFolio/cv-ai/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	response string
	err      error

	prompt string
	tier   llm.ModelTier
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompt = prompt
	f.tier = tier
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestAnalyzeCV(t *testing.T) {
	client := &fakeClient{response: "```markdown\n## Score global : 85/100\n## Points forts\n- Clear structure\n```"}
	svc := NewService(client, llm.TierAdvanced)

	got, err := svc.AnalyzeCV(context.Background(), "Mon CV", "Développeur Go")
	require.NoError(t, err)

	assert.Equal(t, 85, got.OverallScore)
	assert.Equal(t, []string{"Clear structure"}, got.Strengths)
	assert.Equal(t, llm.TierAdvanced, client.tier)
	assert.Contains(t, client.prompt, "Mon CV")
	assert.Contains(t, client.prompt, "Développeur Go")
}

func TestAnalyzeLetter(t *testing.T) {
	client := &fakeClient{response: "## Scores par section\n- Accroche : 40/100\n"}
	svc := NewService(client, llm.TierStandard)

	got, err := svc.AnalyzeLetter(context.Background(), "Madame, Monsieur", "")
	require.NoError(t, err)

	assert.Equal(t, 40, got.Sections.Hook)
	assert.Equal(t, 75, got.OverallScore)
}

func TestCheckGrammar(t *testing.T) {
	client := &fakeClient{response: "| Position | Original | Correction | Type | Gravité | Explication |\n|---|---|---|---|---|---|\n| 2-5 | teh | the | orthographe | mineure | typo |\n"}
	svc := NewService(client, llm.TierAdvanced)

	got, err := svc.CheckGrammar(context.Background(), "I teh best")
	require.NoError(t, err)

	require.Len(t, got.Errors, 1)
	assert.Equal(t, "I the best", got.CorrectedText)
	assert.Equal(t, llm.TierLite, client.tier, "grammar checks use the lite tier")
}

func TestRun_Errors(t *testing.T) {
	cause := errors.New("quota exceeded")

	tests := []struct {
		name     string
		kind     Kind
		document string
		err      error
		check    func(t *testing.T, err error)
	}{
		{
			name:     "unknown kind",
			kind:     Kind("poem"),
			document: "x",
			check: func(t *testing.T, err error) {
				var pe *PromptError
				assert.ErrorAs(t, err, &pe)
			},
		},
		{
			name:     "empty document",
			kind:     KindCV,
			document: "  \n",
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "document is empty")
			},
		},
		{
			name:     "generator failure",
			kind:     KindLetter,
			document: "x",
			err:      cause,
			check: func(t *testing.T, err error) {
				var ge *GenerationError
				require.ErrorAs(t, err, &ge)
				assert.ErrorIs(t, err, cause)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&fakeClient{err: tt.err}, llm.TierStandard)
			got, err := svc.Run(context.Background(), tt.kind, tt.document, "")
			require.Error(t, err)
			assert.Nil(t, got)
			tt.check(t, err)
		})
	}
}

func TestKind_PromptKey(t *testing.T) {
	for _, k := range []Kind{KindCV, KindLetter, KindCorrections} {
		_, ok := k.PromptKey()
		assert.True(t, ok, string(k))
	}
	_, ok := Kind("other").PromptKey()
	assert.False(t, ok)
}
