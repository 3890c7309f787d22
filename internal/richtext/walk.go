package richtext

import (
	"regexp"
	"strings"
	"unicode/utf8"

	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// separator is the plain-text character produced by a block boundary or a line break.
const separator = '\n'

var entityRe = regexp.MustCompile(`^&(?:#[0-9]+|#[xX][0-9a-fA-F]+|[A-Za-z][A-Za-z0-9]*);`)

var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Fieldset: true, atom.Figcaption: true, atom.Figure: true, atom.Footer: true,
	atom.Form: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true, atom.Header: true,
	atom.Hr: true, atom.Li: true, atom.Main: true, atom.Nav: true,
	atom.Ol: true, atom.P: true, atom.Pre: true, atom.Section: true,
	atom.Table: true, atom.Tr: true, atom.Ul: true,
}

// step is one character of the plain text derived from the rich text.
type step struct {
	plain int  // index in the derived plain text
	rich  int  // rune offset in the rich text where the character starts
	width int  // runes of rich text the character occupies; 0 for separators
	char  rune // the plain character
}

// walk derives the plain text of rich in document order and calls visit for every
// character until visit returns false. Positions are counted in runes of rich exactly as
// given, so entities and CRLF pairs span several rich runes for one plain character.
func walk(rich string, visit func(step) bool) {
	w := walker{visit: visit, lastSep: true}
	z := xhtml.NewTokenizer(strings.NewReader(rich))

	for {
		tt := z.Next()
		if tt == xhtml.ErrorToken {
			return
		}
		raw := string(z.Raw())
		start := w.pos
		w.pos += utf8.RuneCountInString(raw)

		var ok bool
		switch tt {
		case xhtml.TextToken:
			ok = w.text(raw, start)
		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			name, _ := z.TagName()
			ok = w.startTag(atom.Lookup(name), start, tt == xhtml.SelfClosingTagToken)
		case xhtml.EndTagToken:
			name, _ := z.TagName()
			ok = w.endTag(atom.Lookup(name), start)
		default:
			ok = true
		}
		if !ok {
			return
		}
	}
}

type walker struct {
	visit   func(step) bool
	pos     int
	plain   int
	lastSep bool
	inRaw   bool // inside script or style

	// opened is set when a block starts and cleared when a separator closes it, so an
	// empty block or one ending in <br> still gets its own separator.
	opened bool
	// filled and broke describe the innermost open block: text seen, <br> seen.
	filled bool
	broke  bool
}

func (w *walker) emit(r rune, rich, width int) bool {
	s := step{plain: w.plain, rich: rich, width: width, char: r}
	w.plain++
	w.lastSep = r == separator && width == 0
	if !w.lastSep {
		w.filled = true
	}
	return w.visit(s)
}

// boundary separates content that follows from content already emitted.
func (w *walker) boundary(rich int) bool {
	if w.plain == 0 || w.lastSep {
		return true
	}
	return w.emit(separator, rich, 0)
}

// closeBlock ends a block element. A block holding only a <br> is an empty line whose
// separator the <br> already produced.
func (w *walker) closeBlock(rich int) bool {
	if !w.opened {
		return w.boundary(rich)
	}
	w.opened = false
	if w.broke && !w.filled {
		return true
	}
	return w.emit(separator, rich, 0)
}

func (w *walker) startTag(a atom.Atom, rich int, selfClosing bool) bool {
	switch {
	case a == atom.Br:
		w.broke = true
		return w.emit(separator, rich, 0)
	case a == atom.Hr:
		return w.boundary(rich)
	case (a == atom.Script || a == atom.Style) && !selfClosing:
		w.inRaw = true
	case blockElements[a] && !selfClosing:
		w.opened, w.filled, w.broke = true, false, false
	}
	return true
}

func (w *walker) endTag(a atom.Atom, rich int) bool {
	switch {
	case a == atom.Script || a == atom.Style:
		w.inRaw = false
	case blockElements[a]:
		return w.closeBlock(rich)
	}
	return true
}

// text emits the characters of one raw text token starting at rune offset rich.
// Whitespace-only tokens holding a newline between blocks are source formatting and emit nothing.
func (w *walker) text(raw string, rich int) bool {
	if w.inRaw {
		return true
	}
	if w.lastSep && strings.TrimSpace(raw) == "" && strings.ContainsAny(raw, "\r\n") {
		return true
	}

	for i := 0; i < len(raw); {
		switch {
		case raw[i] == '&':
			if m := entityRe.FindString(raw[i:]); m != "" {
				if decoded := xhtml.UnescapeString(m); decoded != m {
					if !w.emitDecoded(decoded, rich, utf8.RuneCountInString(m)) {
						return false
					}
					i += len(m)
					rich += utf8.RuneCountInString(m)
					continue
				}
			}
		case raw[i] == '\r' && i+1 < len(raw) && raw[i+1] == '\n':
			if !w.emit('\n', rich, 2) {
				return false
			}
			i += 2
			rich += 2
			continue
		}

		r, size := utf8.DecodeRuneInString(raw[i:])
		if !w.emit(r, rich, 1) {
			return false
		}
		i += size
		rich++
	}
	return true
}

// emitDecoded emits an entity's decoded runes; the first one carries the entity's full width.
func (w *walker) emitDecoded(decoded string, rich, width int) bool {
	for j, r := range []rune(decoded) {
		wd := width
		if j > 0 {
			wd = 0
		}
		if !w.emit(r, rich, wd) {
			return false
		}
	}
	return true
}
