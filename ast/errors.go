package ast

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/dpotapov/markupfmt/internal/scan"
)

// SyntaxKind enumerates the fixed set of syntax error tags spec.md §4.2 and
// §7 name.
type SyntaxKind string

const (
	UnexpectedChar       SyntaxKind = "UnexpectedChar"
	UnmatchedEndTag       SyntaxKind = "UnmatchedEndTag"
	UnterminatedComment   SyntaxKind = "UnterminatedComment"
	UnterminatedCDATA     SyntaxKind = "UnterminatedCDATA"
	UnterminatedString    SyntaxKind = "UnterminatedString"
	InvalidDirectiveName  SyntaxKind = "InvalidDirectiveName"
	UnclosedBlock         SyntaxKind = "UnclosedBlock"
	InvalidAttributeForm  SyntaxKind = "InvalidAttributeForm"
)

// SyntaxError is returned when the parser cannot continue. No partial
// output is produced (spec.md §7).
type SyntaxError struct {
	Kind SyntaxKind
	Span Span
	Msg  string

	source   string
	ctxToken contextNode
}

func (e *SyntaxError) Error() string {
	if e.source == "" {
		return fmt.Sprintf("%s at byte %d: %s", e.Kind, e.Span.Start, e.Msg)
	}
	line, col := scan.LineCol(e.source, e.Span.Start)
	return fmt.Sprintf("%s at line %d, column %d: %s", e.Kind, line, col, e.Msg)
}

// WithContext attaches the source text and the already-parsed siblings at
// the error's nesting level, so Context and the line/column in Error can be
// computed. Mirrors how the teacher's ComponentError captures the etree
// token stream it was built from (chtml/err.go).
func (e *SyntaxError) WithContext(source string, siblings []Node, index int) *SyntaxError {
	e.source = source
	e.ctxToken = contextNode{
		node:     &TextChunk{Base: Base{Span: e.Span}, Data: excerpt(source, e.Span.Start)},
		siblings: siblings,
		index:    index,
	}
	return e
}

// excerpt returns up to 20 bytes of source starting at pos, stopping at the
// first newline, for use as the error's own token in its context render.
func excerpt(source string, pos int) string {
	end := pos
	for end < len(source) && end-pos < 20 && source[end] != '\n' {
		end++
	}
	return source[pos:end]
}

// Context renders a small markup fragment (the offending node plus up to
// two siblings on either side) for human-readable diagnostics, following
// the teacher's ComponentError.HTMLContext pattern in chtml/err.go, but
// built directly from markupfmt's own AST instead of etree.Token.
func (e *SyntaxError) Context() string {
	if e.ctxToken.node == nil {
		return ""
	}
	doc := buildErrorContext(e.ctxToken)
	return renderErrorContext(doc)
}

// contextNode pairs a Node with its parent's child list so buildErrorContext
// can walk siblings without needing back-pointers stored on every AST node
// (spec.md §3, "Lifecycle": "children reference parents only via traversal
// context").
type contextNode struct {
	node     Node
	siblings []Node
	index    int
}

// ExternalError aggregates the user errors returned by the external
// formatter callback across every embedded region it touched (spec.md §7).
// When non-empty, Format discards the buffered output and returns this
// error instead, so callers never observe a partial success silently.
type ExternalError struct {
	Errors []error
}

func (e *ExternalError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("external formatter failed: %v", e.Errors[0])
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d external formatter errors: %s", len(e.Errors), strings.Join(msgs, "; "))
}

func (e *ExternalError) Unwrap() []error {
	return e.Errors
}

// FormatError is implemented by the two error kinds Format can return:
// *SyntaxError and *ExternalError.
type FormatError interface {
	error
	formatError()
}

func (*SyntaxError) formatError()   {}
func (*ExternalError) formatError() {}

// --- error context tree building, grounded on chtml/err.go ---

func addSiblingRange(doc *etree.Element, siblings []Node, from, to, step int) {
	c := 0
	for j := from; j != to; j += step {
		if c == 2 {
			doc.AddChild(etree.NewText("..."))
			return
		}
		if tc, ok := siblings[j].(*TextChunk); ok && tc.Whitespace {
			continue
		}
		addContextToken(doc, siblings[j])
		c++
	}
}

func addContextToken(doc *etree.Element, n Node) {
	switch v := n.(type) {
	case *Element:
		clone := etree.NewElement(v.Name)
		for _, a := range v.Attrs {
			clone.CreateAttr(a.Name, a.Value)
		}
		if len(v.Children) > 0 {
			clone.AddChild(etree.NewText("..."))
		}
		doc.AddChild(clone)
	case *TextChunk:
		if !v.Whitespace {
			doc.AddChild(etree.NewText(v.Data))
		}
	case *Comment:
		doc.AddChild(etree.NewText("<!--" + v.Data + "-->"))
	default:
		doc.AddChild(etree.NewText("…"))
	}
}

// buildErrorContext creates a small XML-ish tree around cn.node to give
// context for a diagnostic, mirroring chtml/err.go's buildErrorContext.
func buildErrorContext(cn contextNode) *etree.Element {
	doc := &etree.Element{}
	if cn.siblings != nil {
		addSiblingRange(doc, cn.siblings, cn.index-1, -1, -1)
	}
	addContextToken(doc, cn.node)
	if cn.siblings != nil {
		addSiblingRange(doc, cn.siblings, cn.index+1, len(cn.siblings), 1)
	}
	return doc
}

func renderErrorContext(doc *etree.Element) string {
	d := etree.NewDocument()
	for _, c := range doc.Child {
		switch t := c.(type) {
		case *etree.Element:
			d.AddChild(t)
		case *etree.CharData:
			d.AddChild(t)
		}
	}
	d.Indent(2)
	s, err := d.WriteToString()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
