// Package corrections parses the pipe-delimited correction table returned by the grammar
// checker and applies the accepted corrections to the original text.
package corrections

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/XenFolio/cv-ai/internal/parsing"
	"github.com/XenFolio/cv-ai/internal/patterns"
	"github.com/XenFolio/cv-ai/internal/types"
	"github.com/rs/zerolog/log"
)

// tableColumns is the exact cell count of a correction row:
// position, original, correction, kind, severity, explanation.
const tableColumns = 6

// ParseCorrections extracts every well-formed correction row of raw and returns the errors
// with the corrected text. It never fails: unusable rows are dropped and a panic yields the
// default result with original unchanged.
func ParseCorrections(raw, original string) (result *types.CorrectionResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("correction parse failed, returning original text")
			result = types.NewCorrectionResult(raw, original)
		}
	}()

	result = types.NewCorrectionResult(raw, original)

	text := parsing.StripCodeFence(parsing.NormalizeNewlines(raw))
	doc := parsing.NewDocument(text)

	scope := text
	if region, ok := doc.Section(patterns.CorrectionsHeading); ok {
		scope = region.Body
	}

	limit := utf8.RuneCountInString(original)
	corrected := original
	delta := 0 // rune-length change of the substitutions applied so far
	for _, line := range strings.Split(scope, "\n") {
		e, ok := parseRow(line, limit)
		if !ok {
			continue
		}
		result.Errors = append(result.Errors, e)
		if e.Original == "" {
			continue
		}
		if next := replaceNearest(corrected, e.Original, e.Correction, e.Span.Start+delta); next != corrected {
			delta += utf8.RuneCountInString(e.Correction) - utf8.RuneCountInString(e.Original)
			corrected = next
		}
	}
	result.CorrectedText = corrected

	if block, ok := correctedBlock(doc); ok {
		result.CorrectedText = block
	}

	log.Debug().
		Int("errors", len(result.Errors)).
		Bool("text_changed", result.CorrectedText != original).
		Msg("Parsed correction response")

	return result
}

// parseRow turns one table line into a GrammarError. Header, separator and malformed rows
// report false. The span is clamped to limit runes.
func parseRow(line string, limit int) (types.GrammarError, bool) {
	m := patterns.TableRowRe.FindStringSubmatch(line)
	if m == nil || patterns.TableSeparatorRe.MatchString(line) {
		return types.GrammarError{}, false
	}

	cells := splitCells(m[1])
	if len(cells) != tableColumns {
		return types.GrammarError{}, false
	}

	pos := patterns.PositionRe.FindStringSubmatch(cells[0])
	if pos == nil {
		// header rows land here too
		log.Debug().Str("position", cells[0]).Msg("Discarding correction row with unparsable position")
		return types.GrammarError{}, false
	}
	start, errStart := strconv.Atoi(pos[1])
	end, errEnd := strconv.Atoi(pos[2])
	if errStart != nil || errEnd != nil || start > end {
		log.Debug().Str("position", cells[0]).Msg("Discarding correction row with invalid span")
		return types.GrammarError{}, false
	}

	return types.GrammarError{
		Span:        types.Span{Start: min(start, limit), End: min(end, limit)},
		Original:    cells[1],
		Correction:  cells[2],
		Kind:        ParseKind(cells[3]),
		Severity:    ParseSeverity(cells[4]),
		Explanation: cells[5],
	}, true
}

// splitCells splits a row body on unescaped pipes and unwraps each cell.
func splitCells(body string) []string {
	var cells []string
	var cell strings.Builder
	for i := 0; i < len(body); i++ {
		switch {
		case body[i] == '\\' && i+1 < len(body) && body[i+1] == '|':
			cell.WriteByte('|')
			i++
		case body[i] == '|':
			cells = append(cells, unwrapCell(cell.String()))
			cell.Reset()
		default:
			cell.WriteByte(body[i])
		}
	}
	return append(cells, unwrapCell(cell.String()))
}

var cellWrappers = [][2]string{
	{"**", "**"},
	{"`", "`"},
	{`"`, `"`},
	{"“", "”"},
	{"«", "»"},
	{"'", "'"},
}

// unwrapCell trims a cell and removes one layer of emphasis or quoting around it.
func unwrapCell(cell string) string {
	cell = strings.TrimSpace(cell)
	for changed := true; changed; {
		changed = false
		for _, w := range cellWrappers {
			if len(cell) >= len(w[0])+len(w[1]) && strings.HasPrefix(cell, w[0]) && strings.HasSuffix(cell, w[1]) {
				cell = strings.TrimSpace(cell[len(w[0]) : len(cell)-len(w[1])])
				changed = true
			}
		}
	}
	return cell
}

// correctedBlock returns the non-empty fully corrected text block, if the response has one.
func correctedBlock(doc *parsing.Document) (string, bool) {
	region, ok := doc.Section(patterns.CorrectedText)
	if !ok {
		return "", false
	}

	lines := strings.Split(parsing.StripCodeFence(region.Body), "\n")
	for i, line := range lines {
		line = strings.TrimPrefix(line, ">")
		lines[i] = strings.TrimPrefix(line, " ")
	}
	block := strings.TrimSpace(strings.Join(lines, "\n"))
	return block, block != ""
}
