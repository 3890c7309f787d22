package parsing

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/XenFolio/cv-ai/internal/patterns"
	"github.com/XenFolio/cv-ai/internal/types"
	"github.com/rs/zerolog/log"
)

var leadingOrdinalRe = regexp.MustCompile(`^\d+[.)]\s+`)

// emojiPriority maps the colored markers generators put before improvement titles.
var emojiPriority = map[rune]types.Priority{
	'🔴': types.PriorityHigh,
	'🟠': types.PriorityMedium,
	'🟡': types.PriorityMedium,
	'🟢': types.PriorityLow,
}

// ExtractImprovements parses every top-level <details><summary> block of body.
// Zero blocks yields an empty list.
func ExtractImprovements(body string) []types.Improvement {
	improvements := []types.Improvement{}
	if !strings.Contains(strings.ToLower(body), "<details") {
		return improvements
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		log.Debug().Err(err).Msg("improvement blocks are not parseable HTML")
		return improvements
	}

	doc.Find("details").Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered("details").Length() > 0 {
			return
		}

		summary := s.Find("summary").First()
		title, priority := splitPriority(cleanInline(summary.Text()))

		content := s.Clone()
		content.Find("summary").First().Remove()
		description := joinLines(content.Text())

		if title == "" && description == "" {
			return
		}
		improvements = append(improvements, types.Improvement{
			Title:       title,
			Description: description,
			Priority:    priority,
		})
	})

	return improvements
}

// splitPriority removes the priority annotation from a summary line and returns the bare
// title with the parsed priority. Without an annotation a leading colored marker decides.
func splitPriority(summary string) (string, types.Priority) {
	priority := types.PriorityLow
	annotated := false

	if loc := patterns.PriorityAnnotationRe.FindStringSubmatchIndex(summary); loc != nil {
		value := ""
		for g := 1; g <= 2; g++ {
			if loc[2*g] >= 0 {
				value = summary[loc[2*g]:loc[2*g+1]]
				break
			}
		}
		priority = ParsePriority(value)
		annotated = true
		summary = summary[:loc[0]]
	}

	title := strings.TrimLeftFunc(summary, func(r rune) bool {
		if p, ok := emojiPriority[r]; ok && !annotated {
			priority, annotated = p, true
		}
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	title = leadingOrdinalRe.ReplaceAllString(title, "")
	title = strings.TrimRight(strings.TrimSpace(title), " :：-–")

	return title, priority
}

// ParsePriority maps French and English priority words to a Priority. Unknown values are low.
func ParsePriority(value string) types.Priority {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "high", "haute", "élevée", "elevee", "élevé", "forte", "critical", "critique", "urgent", "urgente":
		return types.PriorityHigh
	case "medium", "moyenne", "moyen", "normal", "normale", "modérée", "moderate":
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}

// cleanInline strips markdown emphasis and collapses whitespace.
func cleanInline(s string) string {
	s = strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// joinLines trims every line and drops the blank ones.
func joinLines(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
