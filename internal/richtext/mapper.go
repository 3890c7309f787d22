// Package richtext relocates character offsets computed against the plain-text copy of a
// document onto the HTML it was derived from.
//
// The plain text is the one an editor produces from the HTML: text nodes in document
// order, one line separator at each block boundary and at every <br>, nothing from
// script or style. All offsets are counted in runes.
package richtext

import (
	"strings"
	"unicode/utf8"

	"github.com/XenFolio/cv-ai/internal/types"
	"github.com/rs/zerolog/log"
)

// MapOffset returns the rune offset in rich of the plain character at offset.
// Negative offsets map to 0. Offsets past the end of plain are returned unchanged, and
// in-range offsets the rich text does not reach map to the end of rich.
func MapOffset(plain, rich string, offset int) int {
	return newLookup(plain, rich, func(i int) (step, bool) { return find(rich, i) }).offset(offset)
}

// MapSpan maps both ends of span. The end maps to just past the rich form of the last
// covered character, so an entity inside the span is covered whole.
func MapSpan(plain, rich string, span types.Span) types.Span {
	return newLookup(plain, rich, func(i int) (step, bool) { return find(rich, i) }).span(span)
}

// Mapper maps many offsets against one document. The rich text is walked once when the
// mapper is built; every lookup after that is constant time.
type Mapper struct {
	lookup
	steps []step
}

// NewMapper walks rich once and returns a Mapper giving the same results as MapOffset
// and MapSpan.
func NewMapper(plain, rich string) *Mapper {
	m := &Mapper{}
	walk(rich, func(s step) bool {
		m.steps = append(m.steps, s)
		return true
	})
	m.lookup = newLookup(plain, rich, func(i int) (step, bool) {
		if i < 0 || i >= len(m.steps) {
			return step{}, false
		}
		return m.steps[i], true
	})
	return m
}

// Offset is MapOffset against the mapper's document.
func (m *Mapper) Offset(offset int) int { return m.offset(offset) }

// Span is MapSpan against the mapper's document.
func (m *Mapper) Span(span types.Span) types.Span { return m.span(span) }

// MapOffsets maps every offset in one pass over rich.
func MapOffsets(plain, rich string, offsets []int) []int {
	m := NewMapper(plain, rich)
	out := make([]int, len(offsets))
	for i, o := range offsets {
		out[i] = m.Offset(o)
	}
	return out
}

// MapSpans maps every span in one pass over rich.
func MapSpans(plain, rich string, spans []types.Span) []types.Span {
	m := NewMapper(plain, rich)
	out := make([]types.Span, len(spans))
	for i, sp := range spans {
		out[i] = m.Span(sp)
	}
	return out
}

type lookup struct {
	plainLen, richLen int
	at                func(plainIdx int) (step, bool)
}

func newLookup(plain, rich string, at func(int) (step, bool)) lookup {
	return lookup{plainLen: utf8.RuneCountInString(plain), richLen: utf8.RuneCountInString(rich), at: at}
}

func (l lookup) offset(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > l.plainLen {
		log.Debug().Int("offset", offset).Int("plain_length", l.plainLen).Msg("Offset beyond plain text, returning it unchanged")
		return offset
	}

	s, ok := l.at(offset)
	if !ok {
		return l.richLen
	}
	return s.rich
}

func (l lookup) span(span types.Span) types.Span {
	start := l.offset(span.Start)
	if span.End <= span.Start {
		return types.Span{Start: start, End: start}
	}

	var end int
	switch {
	case span.End > l.plainLen:
		end = span.End
	default:
		if s, ok := l.at(span.End - 1); ok {
			end = s.rich + s.width
		} else {
			end = l.richLen
		}
	}
	return types.Span{Start: start, End: max(start, end)}
}

// PlainText derives the plain text of rich the same way the mapper counts it.
func PlainText(rich string) string {
	var b strings.Builder
	walk(rich, func(s step) bool {
		b.WriteRune(s.char)
		return true
	})
	return b.String()
}

func find(rich string, plainIdx int) (step, bool) {
	var found step
	ok := false
	walk(rich, func(s step) bool {
		if s.plain == plainIdx {
			found, ok = s, true
			return false
		}
		return true
	})
	return found, ok
}
