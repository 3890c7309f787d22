package corrections

import (
	"strings"
	"unicode/utf8"
)

// replaceNearest replaces the single occurrence of old in text whose rune index is closest to
// hint. Ties go to the earlier occurrence. text is returned unchanged when old does not occur.
func replaceNearest(text, old, replacement string, hint int) string {
	if old == "" {
		return text
	}

	best, bestDist := -1, 0
	runeIdx, byteIdx := 0, 0
	for {
		i := strings.Index(text[byteIdx:], old)
		if i < 0 {
			break
		}
		runeIdx += utf8.RuneCountInString(text[byteIdx : byteIdx+i])
		byteIdx += i

		dist := runeIdx - hint
		if dist < 0 {
			dist = -dist
		}
		if best < 0 || dist < bestDist {
			best, bestDist = byteIdx, dist
		}

		_, size := utf8.DecodeRuneInString(text[byteIdx:])
		byteIdx += size
		runeIdx++
	}

	if best < 0 {
		return text
	}
	return text[:best] + replacement + text[best+len(old):]
}
