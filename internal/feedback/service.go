// Package feedback runs the full request flow around the parsers: render the prompt, ask the
// generator, parse its answer.
package feedback

import (
	"context"
	"strings"

	"github.com/XenFolio/cv-ai/internal/corrections"
	"github.com/XenFolio/cv-ai/internal/llm"
	"github.com/XenFolio/cv-ai/internal/parsing"
	"github.com/XenFolio/cv-ai/internal/prompts"
	"github.com/XenFolio/cv-ai/internal/types"
	"github.com/rs/zerolog/log"
)

// Kind names one request flow
type Kind string

// Kind values
const (
	KindCV          Kind = "cv"
	KindLetter      Kind = "letter"
	KindCorrections Kind = "corrections"
)

// PromptKey returns the prompt template used for k.
func (k Kind) PromptKey() (string, bool) {
	switch k {
	case KindCV:
		return prompts.KeyCVAnalysis, true
	case KindLetter:
		return prompts.KeyLetterAnalysis, true
	case KindCorrections:
		return prompts.KeyGrammarCorrections, true
	default:
		return "", false
	}
}

// Service wires a generator client to the parsers.
type Service struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewService creates a Service. Grammar checks always use the lite tier.
func NewService(client llm.Client, tier llm.ModelTier) *Service {
	return &Service{client: client, tier: tier}
}

// AnalyzeCV asks the generator to review a CV and parses the response.
func (s *Service) AnalyzeCV(ctx context.Context, document, jobContext string) (*types.CVAnalysis, error) {
	raw, err := s.generate(ctx, KindCV, document, jobContext, s.tier)
	if err != nil {
		return nil, err
	}
	return parsing.ParseCVAnalysis(raw), nil
}

// AnalyzeLetter asks the generator to review a cover letter and parses the response.
func (s *Service) AnalyzeLetter(ctx context.Context, document, jobContext string) (*types.LetterAnalysis, error) {
	raw, err := s.generate(ctx, KindLetter, document, jobContext, s.tier)
	if err != nil {
		return nil, err
	}
	return parsing.ParseLetterAnalysis(raw), nil
}

// CheckGrammar asks the generator for a correction table of text and parses it against text.
func (s *Service) CheckGrammar(ctx context.Context, text string) (*types.CorrectionResult, error) {
	raw, err := s.generate(ctx, KindCorrections, text, "", llm.TierLite)
	if err != nil {
		return nil, err
	}
	return corrections.ParseCorrections(raw, text), nil
}

// Run dispatches on kind and returns the parsed record.
func (s *Service) Run(ctx context.Context, kind Kind, document, jobContext string) (any, error) {
	switch kind {
	case KindCV:
		return s.AnalyzeCV(ctx, document, jobContext)
	case KindLetter:
		return s.AnalyzeLetter(ctx, document, jobContext)
	case KindCorrections:
		return s.CheckGrammar(ctx, document)
	default:
		return nil, &PromptError{Message: "unknown kind " + string(kind)}
	}
}

func (s *Service) generate(ctx context.Context, kind Kind, document, jobContext string, tier llm.ModelTier) (string, error) {
	if strings.TrimSpace(document) == "" {
		return "", &PromptError{Message: "document is empty"}
	}

	key, ok := kind.PromptKey()
	if !ok {
		return "", &PromptError{Message: "unknown kind " + string(kind)}
	}

	prompt, err := prompts.Build(key, document, jobContext)
	if err != nil {
		return "", &PromptError{Message: "failed to build " + key, Cause: err}
	}

	log.Debug().Str("kind", string(kind)).Str("tier", string(tier)).Int("prompt_len", len(prompt)).Msg("calling generator")

	raw, err := s.client.GenerateContent(ctx, prompt, tier)
	if err != nil {
		return "", &GenerationError{Message: string(kind), Cause: err}
	}

	return raw, nil
}
