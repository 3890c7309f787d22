// Package patterns holds the immutable regular expressions and heading synonym tables
// shared by every parser. Nothing in this package is mutated after package initialization,
// so all values are safe for concurrent use.
package patterns

import (
	"regexp"
	"strings"
)

var (
	// HeadingRe matches a markdown ATX heading and captures its hashes and title.
	HeadingRe = regexp.MustCompile(`^\s{0,3}(#{1,6})\s+(.*?)[\s#]*$`)

	// BoldHeadingRe matches a line made only of bold text, e.g. "**Points forts :**".
	BoldHeadingRe = regexp.MustCompile(`^\s*(?:\*\*|__)([^*_]+?)(?:\*\*|__)\s*:?\s*$`)

	// ColonHeadingRe matches a short bare line ending with a colon, e.g. "Strengths:".
	ColonHeadingRe = regexp.MustCompile(`^\s*([\p{L}\p{So}][^|:\n]{0,78}?)\s*[:：]\s*$`)

	// ScoreTokenRe captures "N" or "N/M"; decimals with a dot or comma are tolerated.
	ScoreTokenRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)(?:\s*/\s*(\d+(?:[.,]\d+)?))?`)

	// StandaloneScoreRe matches what follows a label when the value is a score and nothing
	// else: "N/M" with optional trailing text, or a bare "N" ending the line.
	StandaloneScoreRe = regexp.MustCompile(`^[\s:：|–\-*]*(?:\d+(?:[.,]\d+)?\s*/\s*\d+(?:[.,]\d+)?|\d+(?:[.,]\d+)?[\s*%|]*$)`)

	// ListItemRe matches bullet ("-", "•", "*", "–") and ordinal ("1.", "1)") list lines.
	ListItemRe = regexp.MustCompile(`^\s*(?:[-•*–]|\d+[.)])\s+(.*)$`)

	// QuotedRe captures straight-quoted, curly-quoted and guillemet-quoted tokens.
	QuotedRe = regexp.MustCompile(`"([^"\n]*)"|“([^”\n]*)”|«([^»\n]*)»`)

	// TableRowRe matches a pipe-delimited table row and captures the text between the outer pipes.
	TableRowRe = regexp.MustCompile(`^\s*\|(.*)\|\s*$`)

	// TableSeparatorRe matches the markdown header separator row, e.g. "|---|:--:|".
	TableSeparatorRe = regexp.MustCompile(`^[\s|:\-–]+$`)

	// PositionRe captures the two integers of a "start-end" position cell.
	PositionRe = regexp.MustCompile(`^[\[(]?\s*(\d+)\s*[-–—,:]\s*(\d+)\s*[\])]?$`)

	// PriorityAnnotationRe captures a trailing priority annotation of an improvement title,
	// either labelled ("(priority: high)", "(priorité : haute)") or bare ("[high]").
	PriorityAnnotationRe = regexp.MustCompile(`(?i)\s*[(\[]\s*(?:(?:priority|priorit[ée])\s*[:：=-]?\s*([^)\]]*?)|(high|medium|low|haute|[ée]lev[ée]e|moyenne|basse|faible))\s*[)\]]\s*$`)

	// CodeFenceRe matches a response entirely wrapped in a markdown code fence.
	CodeFenceRe = regexp.MustCompile("(?s)^\\s*```[\\w-]*[ \\t]*\\n(.*?)\\n?```\\s*$")
)

// articles are leading words ignored before a heading synonym ("Vos points forts").
const articles = `(?:(?:vos|votre|nos|notre|les|mes|your|the|our|my)\s+)?`

// Heading is a named section heading with its accepted phrasings.
type Heading struct {
	Name     string
	Synonyms []string
	re       *regexp.Regexp
}

// NewHeading compiles a heading matcher. Spaces, hyphens and apostrophes in synonyms
// match any run of spaces or hyphens and either apostrophe form.
func NewHeading(name string, synonyms ...string) Heading {
	return Heading{
		Name:     name,
		Synonyms: synonyms,
		re:       regexp.MustCompile(`(?i)^` + articles + alternation(synonyms) + `(?:$|[^\p{L}\p{N}])`),
	}
}

// Matches reports whether a cleaned heading title starts with one of the synonyms.
func (h Heading) Matches(title string) bool {
	return h.re.MatchString(title)
}

// Label is a named inline label that introduces a value on the same line,
// e.g. "- **Structure** : 16/20" or "Trouvés : ...".
type Label struct {
	Name     string
	Synonyms []string
	re       *regexp.Regexp
}

// NewLabel compiles a label matcher anchored at the start of a line, after any list,
// quote, table or emphasis markers.
func NewLabel(name string, synonyms ...string) Label {
	return Label{
		Name:     name,
		Synonyms: synonyms,
		re:       regexp.MustCompile(`(?i)^[\s\-•*–#>|_\p{So}\p{Sk}\x{FE0F}]*` + articles + alternation(synonyms) + `(?:$|[^\p{L}\p{N}])`),
	}
}

// Find returns the text following the label on line, or false if line does not start with it.
func (l Label) Find(line string) (string, bool) {
	loc := l.re.FindStringIndex(line)
	if loc == nil {
		return "", false
	}
	return line[loc[1]:], true
}

func alternation(synonyms []string) string {
	parts := make([]string, 0, len(synonyms))
	for _, s := range synonyms {
		q := regexp.QuoteMeta(strings.ToLower(s))
		q = strings.NewReplacer(" ", `[\s\-]+`, "-", `[\s\-]+`, "'", `['’]\s*`).Replace(q)
		parts = append(parts, q)
	}
	return `(?:` + strings.Join(parts, "|") + `)`
}
