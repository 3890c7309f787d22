package parsing

import (
	"slices"
	"strings"
	"unicode"

	"github.com/XenFolio/cv-ai/internal/patterns"
	"golang.org/x/text/unicode/norm"
)

// Bold-only heading lines rank below every markdown level, and bare colon-terminated
// lines below those, so an intro line like "Voici vos atouts :" never closes a bold section.
const (
	boldHeadingLevel  = 7
	colonHeadingLevel = 8
)

// Region is the body of a located section.
type Region struct {
	Title string // cleaned heading title
	Level int
	Body  string
}

type headingLine struct {
	start int // byte offset of the heading line
	end   int // byte offset just past the heading line, newline included
	level int
	title string
}

// Document is generator output indexed by its heading lines.
// It is built once per call and never modified afterwards.
type Document struct {
	text     string
	headings []headingLine
}

// NewDocument scans text for heading lines. Lines inside code fences and
// <details> blocks are never treated as headings.
func NewDocument(text string) *Document {
	d := &Document{text: text}

	inFence, inDetails := false, false
	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		start := offset
		offset += len(line)
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		lower := strings.ToLower(trimmed)
		if strings.Contains(lower, "<details") {
			inDetails = true
		}
		if strings.Contains(lower, "</details>") {
			inDetails = false
			continue
		}
		if inFence || inDetails {
			continue
		}

		if level, title, ok := classifyHeading(strings.TrimRight(line, "\r\n")); ok {
			d.headings = append(d.headings, headingLine{start: start, end: offset, level: level, title: title})
		}
	}
	return d
}

// Text returns the indexed text.
func (d *Document) Text() string {
	return d.text
}

// Section returns the body between the first heading matching h and the next heading of
// equal or higher level, or the next heading naming another known section.
// A missing heading is a normal outcome, reported as false.
func (d *Document) Section(h patterns.Heading) (Region, bool) {
	i, end, ok := d.locate(h)
	if !ok {
		return Region{}, false
	}
	hl := d.headings[i]
	return Region{
		Title: hl.title,
		Level: hl.level,
		Body:  strings.TrimSpace(d.text[hl.end:end]),
	}, true
}

// Without returns the text with the heading line and body of every listed section cut out.
func (d *Document) Without(hs ...patterns.Heading) string {
	type cut struct{ start, end int }
	var cuts []cut
	for _, h := range hs {
		if i, end, ok := d.locate(h); ok {
			cuts = append(cuts, cut{d.headings[i].start, end})
		}
	}
	slices.SortFunc(cuts, func(a, b cut) int { return a.start - b.start })

	var b strings.Builder
	pos := 0
	for _, c := range cuts {
		if c.start > pos {
			b.WriteString(d.text[pos:c.start])
		}
		pos = max(pos, c.end)
	}
	b.WriteString(d.text[pos:])
	return b.String()
}

// locate returns the index of the first heading matching h and the byte offset where its
// section ends.
func (d *Document) locate(h patterns.Heading) (int, int, bool) {
	for i, hl := range d.headings {
		if !h.Matches(hl.title) {
			continue
		}
		end := len(d.text)
		for _, next := range d.headings[i+1:] {
			if next.level <= hl.level || namesOtherSection(next.title, h) {
				end = next.start
				break
			}
		}
		return i, end, true
	}
	return 0, 0, false
}

func namesOtherSection(title string, h patterns.Heading) bool {
	for _, other := range patterns.SectionHeadings {
		if other.Name != h.Name && other.Matches(title) {
			return true
		}
	}
	return false
}

// isHeading reports whether a single line would be indexed as a heading.
func isHeading(line string) bool {
	_, _, ok := classifyHeading(line)
	return ok
}

func classifyHeading(line string) (int, string, bool) {
	var level int
	var title string

	if m := patterns.HeadingRe.FindStringSubmatch(line); m != nil {
		level, title = len(m[1]), m[2]
	} else if m := patterns.BoldHeadingRe.FindStringSubmatch(line); m != nil {
		level, title = boldHeadingLevel, m[1]
	} else if m := patterns.ColonHeadingRe.FindStringSubmatch(line); m != nil {
		level, title = colonHeadingLevel, m[1]
	} else {
		return 0, "", false
	}

	title = cleanTitle(title)
	if title == "" {
		return 0, "", false
	}
	return level, title, true
}

// cleanTitle drops emphasis markers, leading emoji/numbering and a trailing colon.
func cleanTitle(title string) string {
	title = strings.NewReplacer("**", "", "__", "", "`", "", "’", "'").Replace(title)
	title = strings.TrimLeftFunc(title, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	title = strings.TrimSpace(title)
	return strings.TrimRight(title, " :：")
}

// NormalizeNewlines converts CRLF and lone CR line endings to LF.
func NormalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// StripCodeFence unwraps a response the generator wrapped entirely in a code fence.
func StripCodeFence(text string) string {
	if m := patterns.CodeFenceRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}

// prepare returns the working copy analysis parsers match against.
func prepare(raw string) string {
	return StripCodeFence(norm.NFC.String(NormalizeNewlines(raw)))
}
