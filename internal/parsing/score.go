package parsing

import (
	"math"
	"strconv"
	"strings"

	"github.com/XenFolio/cv-ai/internal/patterns"
)

// NormalizeScore extracts the first "N" or "N/M" token of fragment and converts it to a
// 0-100 score. Malformed tokens and zero denominators report false, like a missing token.
func NormalizeScore(fragment string) (int, bool) {
	m := patterns.ScoreTokenRe.FindStringSubmatch(fragment)
	if m == nil {
		return 0, false
	}

	n, err := parseNumber(m[1])
	if err != nil {
		return 0, false
	}

	score := n
	if m[2] != "" {
		d, err := parseNumber(m[2])
		if err != nil || d == 0 {
			return 0, false
		}
		score = 100 * n / d
	}

	return clampScore(math.Round(score)), true
}

func parseNumber(token string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(token, ",", ".", 1), 64)
}

func clampScore(v float64) int {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return int(v)
	}
}

// scoreAfterLabel returns the score following the first line of text that starts with label.
// A label line without a score token is skipped, and so is one whose value is not a
// standalone score when standalone is set.
func scoreAfterLabel(text string, label patterns.Label, standalone bool) (int, bool) {
	for _, line := range strings.Split(text, "\n") {
		rest, ok := label.Find(line)
		if !ok || (standalone && !patterns.StandaloneScoreRe.MatchString(rest)) {
			continue
		}
		if score, ok := NormalizeScore(rest); ok {
			return score, true
		}
	}
	return 0, false
}

// overallScore looks for a score on the overall-score heading line, then in the first
// paragraph of its body, then on any "Score global : N/M" line.
func overallScore(doc *Document) (int, bool) {
	if region, ok := doc.Section(patterns.OverallScore); ok {
		if score, ok := NormalizeScore(region.Title); ok {
			return score, true
		}
		paragraph, _, _ := strings.Cut(region.Body, "\n\n")
		if score, ok := NormalizeScore(paragraph); ok {
			return score, true
		}
	}
	return scoreAfterLabel(doc.Text(), patterns.OverallScoreLabel, false)
}

// listSections hold free-form bullets that may start with a section label.
var listSections = []patterns.Heading{
	patterns.Strengths, patterns.Weaknesses, patterns.Recommendations, patterns.ImprovementsHeading,
}

// sectionScores collects every labelled section score found, keyed by label name.
// Without a section-scores heading the whole text is searched, minus the list sections,
// and only lines whose value is a standalone score count.
func sectionScores(doc *Document, labels ...patterns.Label) map[string]int {
	scope, standalone := "", false
	if region, ok := doc.Section(patterns.SectionScores); ok {
		scope = region.Body
	} else {
		scope, standalone = doc.Without(listSections...), true
	}

	found := make(map[string]int, len(labels))
	for _, label := range labels {
		if score, ok := scoreAfterLabel(scope, label, standalone); ok {
			found[label.Name] = score
		}
	}
	return found
}
