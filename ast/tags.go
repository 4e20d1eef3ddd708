package ast

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// voidTags is the fixed HTML void element set (spec.md §4.2).
var voidTags = buildSet(
	"area", "base", "br", "col", "embed", "hr", "img", "input",
	"link", "meta", "param", "source", "track", "wbr",
)

// rawTextTags collect their content until the matching end tag with no
// inner tokenization.
var rawTextTags = buildSet("script", "style", "textarea", "title")

// preformattedTags additionally preserve whitespace by default.
var preformattedTags = buildSet("pre", "textarea", "script", "style")

// inlineTags is the CSS `display: inline` default map consulted when
// whitespaceSensitivity == "css". Grounded on the same list used by
// derat-htmlpretty's isInline (other_examples/derat-htmlpretty__print.go),
// extended with the remaining inline-level HTML5 elements.
var inlineTags = buildSet(
	"a", "abbr", "acronym", "b", "bdo", "big", "br", "button", "cite",
	"code", "dfn", "em", "font", "i", "img", "input", "kbd", "label",
	"map", "mark", "object", "output", "q", "samp", "select", "small",
	"span", "strong", "sub", "sup", "textarea", "time", "tt", "u", "var",
)

func buildSet(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

func hasSet(set map[string]struct{}, name string) bool {
	_, ok := set[strings.ToLower(name)]
	return ok
}

// IsVoidTag reports whether name is one of the fixed HTML void elements.
// Comparisons are case-insensitive per spec.md's "tag names compared
// case-insensitively" rule; atom.Lookup is tried first as a fast path
// (grounded on the teacher's use of golang.org/x/net/html/atom in
// chtml/parse.go) with the string set as a fallback for any name atom
// does not know about.
func IsVoidTag(name string) bool {
	if a := atom.Lookup([]byte(strings.ToLower(name))); a != 0 {
		switch a {
		case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr,
			atom.Img, atom.Input, atom.Link, atom.Meta, atom.Param,
			atom.Source, atom.Track, atom.Wbr:
			return true
		}
		return false
	}
	return hasSet(voidTags, name)
}

// IsRawTextTag reports whether name's content is collected verbatim until
// the matching case-insensitive end tag.
func IsRawTextTag(name string) bool {
	return hasSet(rawTextTags, name)
}

// IsPreformattedTag reports whether name defaults to whitespace-preserving
// layout.
func IsPreformattedTag(name string) bool {
	return hasSet(preformattedTags, name)
}

// IsInlineTag reports whether name is `display: inline` by the CSS default
// used when whitespaceSensitivity == "css".
func IsInlineTag(name string) bool {
	return hasSet(inlineTags, name)
}

// IsComponentTagName reports whether name looks like a component tag rather
// than a plain HTML element: it either has a capital letter (PascalCase /
// camelCase) or contains a dash.
func IsComponentTagName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return strings.Contains(name, "-")
}

// HasMultipleWordSegments reports whether name is made of more than one
// word segment, the precondition spec.md §4.4 places on vueComponentCase
// rewriting ("only when the tag has at least two word segments").
func HasMultipleWordSegments(name string) bool {
	if strings.Contains(name, "-") {
		return strings.Count(name, "-") >= 1 && len(strings.FieldsFunc(name, func(r rune) bool { return r == '-' })) >= 2
	}
	// Each capital after the first character starts a further segment.
	upper := 0
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			upper++
		}
	}
	return upper >= 1
}
