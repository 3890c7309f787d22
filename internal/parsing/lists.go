package parsing

import (
	"strings"

	"github.com/XenFolio/cv-ai/internal/patterns"
	"github.com/XenFolio/cv-ai/internal/types"
	"golang.org/x/text/cases"
)

// ExtractList returns the bullet and ordinal items of body in source order,
// markers and surrounding whitespace removed. Empty items are dropped.
func ExtractList(body string) []string {
	items := []string{}
	for _, line := range strings.Split(body, "\n") {
		m := patterns.ListItemRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if item := strings.TrimSpace(m[1]); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ExtractQuoted returns every quoted token of body in order of first appearance,
// de-duplicated case-insensitively with the first casing kept.
func ExtractQuoted(body string) []string {
	var tokens []string
	for _, m := range patterns.QuotedRe.FindAllStringSubmatch(body, -1) {
		for _, group := range m[1:] {
			if group != "" {
				tokens = append(tokens, group)
				break
			}
		}
	}
	return dedupe(tokens)
}

// keywordTokens prefers quoted tokens and falls back to list items.
func keywordTokens(body string) []string {
	if tokens := ExtractQuoted(body); len(tokens) > 0 {
		return tokens
	}
	return dedupe(ExtractList(body))
}

func dedupe(tokens []string) []string {
	fold := cases.Fold()
	seen := make(map[string]bool, len(tokens))
	out := []string{}
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := fold.String(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

// extractKeywords fills the found/missing/suggestions sets. Each subset comes from its own
// heading, a sub-heading of the keywords region, or a labelled line. An unlabelled keywords region
// is treated as the found set.
func extractKeywords(doc *Document) (types.Keywords, bool) {
	region, hasRegion := doc.Section(patterns.Keywords)
	scope := doc.Text()
	var nested *Document
	if hasRegion {
		scope = region.Body
		nested = NewDocument(region.Body)
	}

	subsets := []patterns.KeywordSubset{
		patterns.KeywordsFound,
		patterns.KeywordsMissing,
		patterns.KeywordsSuggestions,
	}
	bodies := make([]string, len(subsets))
	anySubset := false
	for i, sub := range subsets {
		if r, ok := doc.Section(sub.Heading); ok {
			bodies[i], anySubset = r.Body, true
			continue
		}
		if nested != nil {
			if r, ok := nested.Section(sub.Nested); ok {
				bodies[i], anySubset = r.Body, true
				continue
			}
		}
		label := sub.QualifiedLabel
		if hasRegion {
			label = sub.Label
		}
		if body, ok := labelledBlock(scope, label, subsets); ok {
			bodies[i], anySubset = body, true
		}
	}

	switch {
	case anySubset:
		return types.Keywords{
			Found:       keywordTokens(bodies[0]),
			Missing:     keywordTokens(bodies[1]),
			Suggestions: keywordTokens(bodies[2]),
		}, true
	case hasRegion:
		return types.Keywords{
			Found:       keywordTokens(region.Body),
			Missing:     []string{},
			Suggestions: []string{},
		}, true
	default:
		return types.Keywords{}, false
	}
}

// labelledBlock returns the text after label on its line plus the following lines,
// up to the next subset label or heading. Heading lines are never labels.
func labelledBlock(text string, label patterns.Label, subsets []patterns.KeywordSubset) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if isHeading(line) {
			continue
		}
		rest, ok := label.Find(line)
		if !ok {
			continue
		}
		block := []string{rest}
		for _, next := range lines[i+1:] {
			if isHeading(next) || startsSubset(next, subsets) {
				break
			}
			block = append(block, next)
		}
		return strings.Join(block, "\n"), true
	}
	return "", false
}

func startsSubset(line string, subsets []patterns.KeywordSubset) bool {
	for _, sub := range subsets {
		if _, ok := sub.Label.Find(line); ok {
			return true
		}
	}
	return false
}
