package corrections

import (
	"strings"

	"github.com/XenFolio/cv-ai/internal/types"
)

// ParseKind maps a French or English error-type cell to an ErrorKind. Unknown values are grammar.
func ParseKind(cell string) types.ErrorKind {
	v := strings.ToLower(strings.TrimSpace(cell))
	switch {
	case hasAnyPrefix(v, "orthograph", "spelling", "typo", "faute de frappe"):
		return types.KindSpelling
	case hasAnyPrefix(v, "conjugaison", "conjugation", "tense", "temps"):
		return types.KindConjugation
	case hasAnyPrefix(v, "accord", "agreement"):
		return types.KindAgreement
	case hasAnyPrefix(v, "ponctuation", "punctuation"):
		return types.KindPunctuation
	default:
		return types.KindGrammar
	}
}

// ParseSeverity maps a French or English severity cell to a Severity. Unknown values are minor.
func ParseSeverity(cell string) types.Severity {
	v := strings.ToLower(strings.TrimSpace(cell))
	switch {
	case hasAnyPrefix(v, "critique", "critical", "grave", "high", "haute", "élevée"):
		return types.SeverityCritical
	case hasAnyPrefix(v, "majeur", "major", "important", "moyen", "medium"):
		return types.SeverityMajor
	default:
		return types.SeverityMinor
	}
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
