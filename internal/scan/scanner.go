// Package scan provides a byte-oriented cursor over UTF-8 source text, with
// peek/advance/match primitives and span bookkeeping. It is the Tokenizer
// component of markupfmt (spec.md §4.1), grounded on the cursor style of
// golang.org/x/net/html.Tokenizer that the teacher repo builds on top of in
// chtml/parse.go, generalized to serve every markup dialect rather than
// HTML alone (dialects need custom delimiter families the standard
// tokenizer knows nothing about).
package scan

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Cursor is a single-pass, non-backtracking reader over src, except for the
// lookahead exposed by PeekByte/PeekByteAt/PeekRune (spec.md §4.1).
type Cursor struct {
	src string
	pos int
}

// New returns a Cursor positioned at the start of src.
func New(src string) *Cursor {
	return &Cursor{src: src}
}

// Source returns the full source text the cursor was built from.
func (c *Cursor) Source() string { return c.src }

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// SeekTo repositions the cursor to an absolute byte offset.
func (c *Cursor) SeekTo(pos int) { c.pos = pos }

// Eof reports whether the cursor has consumed the entire source.
func (c *Cursor) Eof() bool { return c.pos >= len(c.src) }

// Rest returns the unconsumed remainder of the source.
func (c *Cursor) Rest() string { return c.src[c.pos:] }

// PeekByte returns the byte at the cursor without advancing, or 0 at EOF.
func (c *Cursor) PeekByte() byte {
	if c.Eof() {
		return 0
	}
	return c.src[c.pos]
}

// PeekByteAt returns the byte n positions ahead of the cursor, or 0 if that
// is past EOF.
func (c *Cursor) PeekByteAt(n int) byte {
	i := c.pos + n
	if i < 0 || i >= len(c.src) {
		return 0
	}
	return c.src[i]
}

// PeekRune decodes the rune at the cursor without advancing.
func (c *Cursor) PeekRune() (rune, int) {
	if c.Eof() {
		return 0, 0
	}
	return utf8.DecodeRuneInString(c.src[c.pos:])
}

// Advance consumes and returns the next byte. It panics at EOF; callers
// must check Eof first (the tokenizer never advances past the end).
func (c *Cursor) Advance() byte {
	b := c.src[c.pos]
	c.pos++
	return b
}

// AdvanceRune consumes and returns the next rune.
func (c *Cursor) AdvanceRune() rune {
	r, n := utf8.DecodeRuneInString(c.src[c.pos:])
	c.pos += n
	return r
}

// AdvanceN consumes n bytes unconditionally.
func (c *Cursor) AdvanceN(n int) {
	c.pos += n
}

// HasPrefix reports whether the unconsumed source starts with s, matched
// byte-for-byte.
func (c *Cursor) HasPrefix(s string) bool {
	return strings.HasPrefix(c.src[c.pos:], s)
}

// HasPrefixFold is HasPrefix's case-insensitive counterpart, used for
// case-insensitive matchers such as tag names and the DOCTYPE keyword
// (spec.md §4.1, §4.2).
func (c *Cursor) HasPrefixFold(s string) bool {
	rest := c.src[c.pos:]
	if len(rest) < len(s) {
		return false
	}
	return strings.EqualFold(rest[:len(s)], s)
}

// Match consumes s if the cursor is positioned at it, reporting success.
func (c *Cursor) Match(s string) bool {
	if c.HasPrefix(s) {
		c.pos += len(s)
		return true
	}
	return false
}

// MatchFold is Match's case-insensitive counterpart.
func (c *Cursor) MatchFold(s string) bool {
	if c.HasPrefixFold(s) {
		c.pos += len(s)
		return true
	}
	return false
}

// TakeWhile advances past a run of bytes satisfying pred and returns the
// consumed slice.
func (c *Cursor) TakeWhile(pred func(byte) bool) string {
	start := c.pos
	for !c.Eof() && pred(c.src[c.pos]) {
		c.pos++
	}
	return c.src[start:c.pos]
}

// TakeUntil advances up to (not including) the first occurrence of any of
// the given delimiter strings, or to EOF if none occur. It returns the
// consumed slice and which delimiter (if any) stopped it.
func (c *Cursor) TakeUntil(delims ...string) (text string, found string) {
	start := c.pos
	for !c.Eof() {
		for _, d := range delims {
			if c.HasPrefix(d) {
				return c.src[start:c.pos], d
			}
		}
		c.pos++
	}
	return c.src[start:c.pos], ""
}

// TakeUntilFold is TakeUntil's case-insensitive counterpart, used for
// raw-text end-tag matching (spec.md §4.2, "collected until the matching
// case-insensitive end tag"). found is the matched source text, in the
// source's own casing.
func (c *Cursor) TakeUntilFold(delims ...string) (text string, found string) {
	start := c.pos
	for !c.Eof() {
		for _, d := range delims {
			if c.HasPrefixFold(d) {
				return c.src[start:c.pos], c.src[c.pos : c.pos+len(d)]
			}
		}
		c.pos++
	}
	return c.src[start:c.pos], ""
}

const whitespaceBytes = " \t\n\r\f"

// IsSpace reports whether b is an HTML space character.
func IsSpace(b byte) bool {
	return strings.IndexByte(whitespaceBytes, b) >= 0
}

// SkipSpace advances past a run of HTML space characters and returns it.
func (c *Cursor) SkipSpace() string {
	return c.TakeWhile(IsSpace)
}

// UnescapeEntities decodes character and entity references in raw text,
// delegating to golang.org/x/net/html for the entity table exactly the way
// the teacher repo imports golang.org/x/net/html for its node representation
// (chtml/parse.go). markupfmt only needs this for width measurement (never
// for re-escaping: text is otherwise passed through verbatim).
func UnescapeEntities(s string) string {
	return html.UnescapeString(s)
}

// LineCol converts a byte offset in src into a 1-based line and column
// (column counted in runes, matching the teacher's Span.Column in
// chtml/span.go).
func LineCol(src string, offset int) (line, col int) {
	line, col = 1, 1
	for i, r := range src {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
