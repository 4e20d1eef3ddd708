// Package parse turns markup source into an *ast.Document. It is the
// Parser stage of markupfmt (spec.md §4.2): a single-pass tokenizer/state
// machine over internal/scan.Cursor, generalized from the teacher's
// chtml/parse.go (a hand-rolled wrapper around golang.org/x/net/html's
// tokenizer) to the multiple markup and template dialects spec.md names.
package parse

import (
	"strings"

	"github.com/dpotapov/markupfmt/ast"
	"github.com/dpotapov/markupfmt/config"
	"github.com/dpotapov/markupfmt/internal/scan"
)

// Span builds an ast.Span from a byte range, the one helper every file in
// this package uses to stamp node positions.
func Span(start, end int) ast.Span {
	return ast.Span{Start: start, End: end}
}

// frameKind distinguishes the three constructs that can be open on the
// parser's frame stack at once: an unclosed element, an open template
// block, and an open Angular control-flow block. All three close the same
// way (closeStackDownTo), which is what lets a template block straddle an
// element boundary per spec.md §9's "straddling blocks" design note: the
// stack does not care which kind of frame it is popping.
type frameKind int

const (
	frameElement frameKind = iota
	frameTemplateBlock
	frameAngular
)

type frame struct {
	kind frameKind

	// exactly one of these is non-nil, matching kind.
	el  *ast.Element
	tpl *ast.TemplateNode
	ang *ast.AngularControlFlow

	name     string // matching key: tag name, block start keyword, or "@kind"
	start    int
	children []ast.Node

	// lastAngular chains @else/@else-if onto the most recently closed
	// @if/@for/@switch at this nesting level, linking through a single
	// field rather than a list.
	lastAngular *ast.AngularControlFlow
}

// Parser holds all mutable state for one parse of one source document.
type Parser struct {
	c    *scan.Cursor
	lang ast.LanguageTag
	opts config.Options

	stack []*frame // open elements/blocks; stack[0] is never popped, it's a sentinel for the document root
	root  frame    // sentinel bottom frame collecting top-level nodes
	src   string
}

// New returns a Parser ready to parse src as the given dialect.
func New(src string, lang ast.LanguageTag, opts config.Options) *Parser {
	p := &Parser{
		c:    scan.New(src),
		lang: lang,
		opts: opts,
		src:  src,
	}
	p.root = frame{kind: frameElement, name: ""}
	p.stack = []*frame{&p.root}
	return p
}

func (p *Parser) errAt(kind ast.SyntaxKind, pos int, msg string) error {
	e := &ast.SyntaxError{Kind: kind, Span: Span(pos, pos), Msg: msg}
	t := p.top()
	return e.WithContext(p.src, t.children, len(t.children))
}

func (p *Parser) top() *frame { return p.stack[len(p.stack)-1] }

func (p *Parser) appendChild(n ast.Node) {
	t := p.top()
	t.children = append(t.children, n)
}

// push opens a new frame on the stack; its children accumulate until a
// matching close pops it back off.
func (p *Parser) push(f *frame) { p.stack = append(p.stack, f) }

// findFrame searches the stack top-down for an open frame of the given
// kind and matching name, returning its index or -1.
func (p *Parser) findFrame(kind frameKind, name string) int {
	for i := len(p.stack) - 1; i >= 1; i-- {
		f := p.stack[i]
		if f.kind != kind {
			continue
		}
		if kind == frameElement && !strings.EqualFold(f.name, name) {
			continue
		}
		if kind != frameElement && f.name != name {
			continue
		}
		return i
	}
	return -1
}

// closeStackDownTo finalizes and pops every frame from the top of the
// stack down to and including idx, appending each finalized node as a
// child of whatever frame is beneath it once popped. This is the single
// mechanism that closes a well-formed match (idx == top), an
// implicitly-auto-closed element (e.g. an unclosed <li>), and a template
// block or element that straddles the other's boundary (spec.md §9): the
// caller doesn't need to know which case it's in.
func (p *Parser) closeStackDownTo(idx int) {
	for len(p.stack)-1 >= idx {
		f := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		n := p.finalizeFrame(f)
		if n != nil {
			p.appendChildTo(p.top(), f, n)
		}
	}
}

// appendChildTo appends n to dst's children, chaining it onto dst.lastAngular
// instead when n continues an @else/@else-if chain started by a sibling
// AngularControlFlow already emitted at this level.
func (p *Parser) appendChildTo(dst *frame, closed *frame, n ast.Node) {
	if ang, ok := n.(*ast.AngularControlFlow); ok {
		switch ang.Kind {
		case ast.AngularElseIf, ast.AngularElse, ast.AngularCase, ast.AngularDefault:
			if dst.lastAngular != nil {
				// The whitespace between the closing '}' and this
				// keyword belongs to the chain, not to dst.
				for len(dst.children) > 0 {
					tc, ok := dst.children[len(dst.children)-1].(*ast.TextChunk)
					if !ok || !tc.Whitespace {
						break
					}
					dst.children = dst.children[:len(dst.children)-1]
				}
				dst.lastAngular.Next = ang
				dst.lastAngular = ang
				return
			}
		default:
			dst.lastAngular = ang
		}
	}
	dst.children = append(dst.children, n)
}

func (p *Parser) finalizeFrame(f *frame) ast.Node {
	switch f.kind {
	case frameElement:
		f.el.Children = f.children
		f.el.Base.Span.End = p.c.Pos()
		if f.el.Closing == 0 && f.el.EndTagName != "" {
			f.el.Closing = ast.ClosingPaired
		}
		return f.el
	case frameTemplateBlock:
		f.tpl.Children = f.children
		f.tpl.Base.Span.End = p.c.Pos()
		return f.tpl
	case frameAngular:
		f.ang.Children = f.children
		f.ang.Base.Span.End = p.c.Pos()
		return f.ang
	}
	return nil
}

// Document runs the parser to completion and returns the finished tree, or
// the first *ast.SyntaxError encountered (spec.md §7: parse errors abort
// with no partial output).
func (p *Parser) Document() (*ast.Document, error) {
	if err := p.run(); err != nil {
		return nil, err
	}
	// Anything still open at EOF is closed implicitly; unclosed elements
	// are permitted by spec.md invariant 2's ClosingUnclosedPermitted, and
	// an unterminated template block is a genuine error.
	for len(p.stack) > 1 {
		top := p.top()
		if top.kind == frameTemplateBlock {
			return nil, p.errAt(ast.UnclosedBlock, top.start, "unterminated template block: "+top.name)
		}
		if top.kind == frameAngular {
			return nil, p.errAt(ast.UnclosedBlock, top.start, "unterminated Angular control-flow block")
		}
		top.el.Closing = ast.ClosingUnclosedPermitted
		p.closeStackDownTo(len(p.stack) - 1)
	}
	doc := &ast.Document{
		Base:     ast.Base{Span: Span(0, len(p.src))},
		Children: p.root.children,
	}
	return doc, nil
}

// run is the main dispatch loop: at each position it decides which kind of
// construct starts there and hands off to the matching parse* routine.
func (p *Parser) run() error {
	for !p.c.Eof() {
		if err := p.step(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) step() error {
	if p.tryTemplateDelimiters() {
		return p.parseTemplateConstruct()
	}
	switch {
	case p.lang == ast.Angular && p.c.PeekByte() == '@':
		return p.parseAngularControlFlow()
	case p.lang == ast.Angular && p.c.PeekByte() == '}' && p.top().kind == frameAngular:
		return p.parseAngularBlockClose()
	case p.c.HasPrefix("<!--"):
		return p.parseComment()
	case p.c.HasPrefix("<![CDATA["):
		return p.parseCDATA()
	case p.c.HasPrefixFold("<!doctype"):
		return p.parseDoctype()
	case p.c.HasPrefix("<?xml"):
		return p.parseXmlDecl()
	case p.c.HasPrefix("<?"):
		return p.parseProcessingInstruction()
	case p.c.HasPrefix("</"):
		return p.parseEndTag()
	case p.c.PeekByte() == '<' && startsTagName(p.c.PeekByteAt(1)):
		return p.parseStartTag()
	default:
		return p.parseText()
	}
}

func startsTagName(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// tryTemplateDelimiters reports whether the cursor sits at a template
// dialect's interpolation/statement/comment opening delimiter.
func (p *Parser) tryTemplateDelimiters() bool {
	if !p.lang.IsTemplateDialect() {
		return false
	}
	d := dialectDelimiters(p.lang)
	return d.interpStart != "" && (p.c.HasPrefix(d.interpStart) || p.c.HasPrefix(d.stmtStart) || p.c.HasPrefix(d.commentStart))
}
