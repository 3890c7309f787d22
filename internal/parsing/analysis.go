// Package parsing turns the semi-structured markdown returned by the text generator into
// fully populated analysis envelopes. Every entry point is total: missing or malformed
// sections keep their documented default and a parse never fails.
package parsing

import (
	"github.com/XenFolio/cv-ai/internal/patterns"
	"github.com/XenFolio/cv-ai/internal/types"
	"github.com/rs/zerolog/log"
)

var cvLabels = []patterns.Label{
	patterns.StructureLabel,
	patterns.ContentLabel,
	patterns.SkillsLabel,
	patterns.ExperienceLabel,
}

var letterLabels = append(cvLabels[:len(cvLabels):len(cvLabels)],
	patterns.HookLabel,
	patterns.CallToActionLabel,
)

// ParseCVAnalysis parses a CV analysis response.
func ParseCVAnalysis(raw string) (result *types.CVAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("CV analysis parse failed, returning defaults")
			result = types.NewAnalysisEnvelope(raw, types.DefaultCVSections())
		}
	}()

	return assemble(raw, types.DefaultCVSections(), func(scores map[string]int, s *types.CVSections) {
		setScore(scores, patterns.StructureLabel, &s.Structure)
		setScore(scores, patterns.ContentLabel, &s.Content)
		setScore(scores, patterns.SkillsLabel, &s.Skills)
		setScore(scores, patterns.ExperienceLabel, &s.Experience)
	}, cvLabels)
}

// ParseLetterAnalysis parses a cover-letter analysis response.
func ParseLetterAnalysis(raw string) (result *types.LetterAnalysis) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("letter analysis parse failed, returning defaults")
			result = types.NewAnalysisEnvelope(raw, types.DefaultLetterSections())
		}
	}()

	return assemble(raw, types.DefaultLetterSections(), func(scores map[string]int, s *types.LetterSections) {
		setScore(scores, patterns.StructureLabel, &s.Structure)
		setScore(scores, patterns.ContentLabel, &s.Content)
		setScore(scores, patterns.SkillsLabel, &s.Skills)
		setScore(scores, patterns.ExperienceLabel, &s.Experience)
		setScore(scores, patterns.HookLabel, &s.Hook)
		setScore(scores, patterns.CallToActionLabel, &s.CallToAction)
	}, letterLabels)
}

// assemble builds the default envelope and overwrites each field whose extraction succeeded.
func assemble[S types.Sections](
	raw string,
	defaults S,
	applyScores func(map[string]int, *S),
	labels []patterns.Label,
) *types.AnalysisEnvelope[S] {
	env := types.NewAnalysisEnvelope(raw, defaults)
	doc := NewDocument(prepare(raw))

	if score, ok := overallScore(doc); ok {
		env.OverallScore = score
	}

	scores := sectionScores(doc, labels...)
	applyScores(scores, &env.Sections)

	if region, ok := doc.Section(patterns.Strengths); ok {
		env.Strengths = ExtractList(region.Body)
	}
	if region, ok := doc.Section(patterns.Weaknesses); ok {
		env.Weaknesses = ExtractList(region.Body)
	}
	if region, ok := doc.Section(patterns.Recommendations); ok {
		env.Recommendations = ExtractList(region.Body)
	}

	if kw, ok := extractKeywords(doc); ok {
		env.Keywords = kw
	}

	improvementsScope := doc.Text()
	if region, ok := doc.Section(patterns.ImprovementsHeading); ok {
		improvementsScope = region.Body
	}
	env.Improvements = ExtractImprovements(improvementsScope)

	log.Debug().
		Int("overall_score", env.OverallScore).
		Int("section_scores_found", len(scores)).
		Int("strengths", len(env.Strengths)).
		Int("weaknesses", len(env.Weaknesses)).
		Int("recommendations", len(env.Recommendations)).
		Int("keywords_found", len(env.Keywords.Found)).
		Int("improvements", len(env.Improvements)).
		Msg("Parsed analysis response")

	return env
}

func setScore(scores map[string]int, label patterns.Label, dst *int) {
	if v, ok := scores[label.Name]; ok {
		*dst = v
	}
}
