package build

import (
	"strings"

	"github.com/dpotapov/markupfmt/ast"
	"github.com/dpotapov/markupfmt/config"
	idoc "github.com/dpotapov/markupfmt/internal/doc"
	"github.com/fatih/camelcase"
)

// buildElement renders one Element as an open tag, its children block (if
// any), and a matching close tag, wrapped in a Group so a whole small
// element collapses onto one line when it fits (spec.md §4.3, §4.4).
func (b *Builder) buildElement(el *ast.Element, depth int) idoc.Doc {
	name := b.tagName(el)
	open := idoc.Concats(idoc.Str("<"+name), b.buildAttrs(name, el.Attrs))

	switch el.Closing {
	case ast.ClosingVoidImplicit:
		closeStr := b.voidClose(el)
		// A trailing "/>" gets a space before it (spec.md §9's Open
		// Question: "tests of record use the space form"); a bare ">"
		// does not, so a void tag with no attributes stays "<br>" rather
		// than "<br >".
		sep := idoc.SoftlineDoc
		if closeStr == "/>" {
			sep = idoc.LineDoc
		} else if b.opts.ClosingBracketSameLine {
			sep = idoc.Nil()
		}
		return idoc.Grp(idoc.Concats(open, sep, idoc.Str(closeStr)))
	}

	closeTag := idoc.Str("</" + endTagName(el, name) + ">")

	switch {
	case el.Closing == ast.ClosingSelfClosed:
		return b.closeEmptyOrSelfClosed(el, open, closeTag)
	case el.RawText:
		body := b.rawTextBody(el, depth)
		openTag := idoc.Grp(idoc.Concats(open, b.openTagBracketSep(false), idoc.Str(">")))
		return idoc.Concats(openTag, body, closeTag)
	case len(el.Children) == 0:
		return b.closeEmptyOrSelfClosed(el, open, closeTag)
	}

	ws := b.opts.WhitespaceSensitivity
	if b.opts.Component.WhitespaceSensitivity != "" && b.lang.IsComponentDialect() {
		ws = b.opts.Component.WhitespaceSensitivity
	}
	if el.WhitespacePreserved {
		ws = config.WhitespaceStrict
	}
	children := b.buildChildren(el.Children, depth+1, ws)
	lead, trail := b.childrenBoundary(el, ws)
	inner := idoc.Concats(idoc.Indented(idoc.Concats(lead, children)), trail)
	return idoc.Grp(idoc.Concats(open, b.openTagBracketSep(false), idoc.Str(">"), inner, closeTag))
}

// closeEmptyOrSelfClosed renders a childless element's closing form: either
// a self-closed "<name ... />" or a paired "<name ...></name>", resolved
// from the element's self-closing category (spec.md §4.4, §6
// html.normal/component/svg/mathml.selfClosing). This governs both an
// element the source already spelled self-closed ("<Foo />") and a plain
// empty pair ("<div></div>"), since a category override can force either
// spelling regardless of how the source wrote it.
func (b *Builder) closeEmptyOrSelfClosed(el *ast.Element, open, closeTag idoc.Doc) idoc.Doc {
	forced, _ := b.resolveSelfClosing(el)
	selfClose := el.Closing == ast.ClosingSelfClosed
	if forced != nil {
		selfClose = *forced
	}
	if selfClose {
		return idoc.Grp(idoc.Concats(open, idoc.LineDoc, idoc.Str("/>")))
	}
	return idoc.Grp(idoc.Concats(open, b.openTagBracketSep(true), idoc.Str(">"), closeTag))
}

// openTagBracketSep decides how the open tag's closing '>' attaches after
// its attribute list. closingBracketSameLine forces it onto the last
// attribute's line unconditionally; otherwise a childless element's break
// is governed by closingTagLineBreakForEmpty, and every other element uses
// a plain softline (spec.md §4.4, §6 closingBracketSameLine,
// closingTagLineBreakForEmpty).
func (b *Builder) openTagBracketSep(empty bool) idoc.Doc {
	if b.opts.ClosingBracketSameLine {
		return idoc.Nil()
	}
	if empty {
		switch b.opts.ClosingTagLineBreakForEmpty {
		case config.ClosingAlways:
			return idoc.HardlineDoc
		case config.ClosingNever:
			return idoc.Nil()
		}
	}
	return idoc.SoftlineDoc
}

// childrenBoundary picks the docs used just inside the open tag's '>' and
// just before the close tag. Under whitespaceSensitivity "strict" (and
// "css" for inline-level elements), inter-tag whitespace is content: a
// synthetic break must never appear where the source had none, and where
// the source did have whitespace a Line (not Softline) is used so a space
// survives even when the group stays flat (spec.md §4.4 "Children block",
// §6 whitespaceSensitivity).
func (b *Builder) childrenBoundary(el *ast.Element, ws config.WhitespaceSensitivity) (lead, trail idoc.Doc) {
	sensitive := ws == config.WhitespaceStrict || (ws == config.WhitespaceCSS && ast.IsInlineTag(el.Name))
	if !sensitive {
		return idoc.SoftlineDoc, idoc.SoftlineDoc
	}
	lead, trail = idoc.Nil(), idoc.Nil()
	if leadingWhitespace(el.Children[0]) {
		lead = idoc.LineDoc
	}
	if trailingWhitespace(el.Children[len(el.Children)-1]) {
		trail = idoc.LineDoc
	}
	return lead, trail
}

func leadingWhitespace(n ast.Node) bool {
	tc, ok := n.(*ast.TextChunk)
	return ok && len(tc.Data) > 0 && isSpaceByte(tc.Data[0])
}

func trailingWhitespace(n ast.Node) bool {
	tc, ok := n.(*ast.TextChunk)
	return ok && len(tc.Data) > 0 && isSpaceByte(tc.Data[len(tc.Data)-1])
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	default:
		return false
	}
}

func endTagName(el *ast.Element, openName string) string {
	if el.EndTagName != "" {
		return el.EndTagName
	}
	return openName
}

// tagName applies vueComponentCase rewriting to a component tag name with
// at least two word segments, per spec.md §4.4.
func (b *Builder) tagName(el *ast.Element) string {
	if !el.IsComponent || b.opts.VueComponentCase == config.ComponentCaseIgnore || !ast.HasMultipleWordSegments(el.Name) {
		return el.Name
	}
	words := splitWords(el.Name)
	switch b.opts.VueComponentCase {
	case config.ComponentCasePascal:
		return joinPascal(words)
	case config.ComponentCaseKebab:
		return strings.ToLower(strings.Join(words, "-"))
	default:
		return el.Name
	}
}

func splitWords(name string) []string {
	if strings.Contains(name, "-") {
		return strings.Split(name, "-")
	}
	return camelcase.Split(name)
}

func joinPascal(words []string) string {
	var b strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(strings.ToLower(w[1:]))
	}
	return b.String()
}

// selfCloseCategory classifies which selfClosing option family governs an
// element, per spec.md §6's html.normal/void, component, svg, and mathml
// categories.
type selfCloseCategory int

const (
	categoryNormal selfCloseCategory = iota
	categoryVoid
	categoryComponent
	categorySvg
	categoryMathML
)

func categoryFor(el *ast.Element) selfCloseCategory {
	switch {
	case ast.IsVoidTag(el.Name):
		return categoryVoid
	case el.IsComponent:
		return categoryComponent
	case el.Namespace == ast.NamespaceSVG:
		return categorySvg
	case el.Namespace == ast.NamespaceMathML:
		return categoryMathML
	default:
		return categoryNormal
	}
}

// resolveSelfClosing looks up the tri-bool selfClosing override for el's
// category. Component/Svg/MathML each have a dedicated top-level alias
// (component.selfClosing, svgSelfClosing, mathMLSelfClosing) that takes
// precedence over the selfClosing.* family entry for the same category, per
// spec.md §6. A nil result means "preserve the source spelling".
func (b *Builder) resolveSelfClosing(el *ast.Element) (forced config.TriBool, isVoid bool) {
	switch categoryFor(el) {
	case categoryVoid:
		return b.opts.SelfClosing.Void, true
	case categoryComponent:
		if b.opts.Component.SelfClosing != nil {
			return b.opts.Component.SelfClosing, false
		}
		return b.opts.SelfClosing.Component, false
	case categorySvg:
		if b.opts.SVGSelfClosing != nil {
			return b.opts.SVGSelfClosing, false
		}
		return b.opts.SelfClosing.Svg, false
	case categoryMathML:
		if b.opts.MathMLSelfClosing != nil {
			return b.opts.MathMLSelfClosing, false
		}
		return b.opts.SelfClosing.MathML, false
	default:
		return b.opts.SelfClosing.Normal, false
	}
}

// voidClose spells the end of a void element's start tag per the
// selfClosing option family (spec.md §6 html.void.selfClosing). Called
// only for ast.ClosingVoidImplicit elements, so it consults
// selfClosing.Void directly rather than re-deriving the category through
// resolveSelfClosing.
func (b *Builder) voidClose(el *ast.Element) string {
	forced := b.opts.SelfClosing.Void
	if forced != nil {
		if *forced {
			return "/>"
		}
		return ">"
	}
	if el.SelfClosingSpelled {
		return "/>"
	}
	return ">"
}

// rawTextBody renders a script/style/textarea/title/custom-block body: the
// embedded code child if the callback ran (or passthrough if not), or a
// literal text passthrough for textarea/title.
func (b *Builder) rawTextBody(el *ast.Element, depth int) idoc.Doc {
	if len(el.Children) == 0 {
		return idoc.Nil()
	}
	switch c := el.Children[0].(type) {
	case *ast.EmbeddedCode:
		return b.buildEmbeddedCode(c, depth)
	case *ast.TextChunk:
		return literalLines(c.Data)
	default:
		return idoc.Nil()
	}
}
