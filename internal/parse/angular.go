package parse

import (
	"strings"

	"github.com/dpotapov/markupfmt/ast"
)

// angularKeyword maps an @-prefixed keyword to its AngularControlFlowKind.
// Whether it continues a chain (@else/@case/@default) rather than opening a
// fresh one is decided later, from Kind alone, in Parser.appendChildTo when
// the frame closes (spec.md §4.2 "Angular-specific": @if/@else if/@else/
// @for/@switch/@case/@default/@defer/@placeholder/@loading/@error).
func angularKeyword(word string) (kind ast.AngularControlFlowKind, ok bool) {
	switch word {
	case "@if":
		return ast.AngularIf, true
	case "@else":
		return ast.AngularElse, true // refined to AngularElseIf below if followed by "if"
	case "@for":
		return ast.AngularFor, true
	case "@switch":
		return ast.AngularSwitch, true
	case "@case":
		return ast.AngularCase, true
	case "@default":
		return ast.AngularDefault, true
	case "@defer":
		return ast.AngularDefer, true
	case "@placeholder":
		return ast.AngularPlaceholder, true
	case "@loading":
		return ast.AngularLoading, true
	case "@error":
		return ast.AngularError, true
	default:
		return 0, false
	}
}

// parseAngularControlFlow parses `@keyword (clause) {`, pushing a frame that
// closes on the matching `}` (spec.md §4.2, §9).
func (p *Parser) parseAngularControlFlow() error {
	start := p.c.Pos()
	wordStart := p.c.Pos()
	word := p.c.TakeWhile(func(b byte) bool { return b != ' ' && b != '\t' && b != '\n' && b != '(' && b != '{' })
	kind, ok := angularKeyword(word)
	if !ok {
		// Not Angular control flow syntax; treat '@' as ordinary text.
		p.c.SeekTo(wordStart)
		p.c.Advance()
		p.appendChild(&ast.TextChunk{Base: ast.Base{Span: Span(start, p.c.Pos())}, Data: "@"})
		return nil
	}
	p.c.SkipSpace()
	if kind == ast.AngularElse && p.c.HasPrefix("if") {
		p.c.AdvanceN(2)
		kind = ast.AngularElseIf
		p.c.SkipSpace()
	}
	var clause string
	if p.c.PeekByte() == '(' {
		p.c.Advance()
		body, found := p.c.TakeUntil(")")
		if found == "" {
			return p.errAt(ast.UnexpectedChar, p.c.Pos(), "unterminated Angular control-flow clause")
		}
		p.c.Advance()
		clause = strings.TrimSpace(body)
		p.c.SkipSpace()
	}
	if p.c.PeekByte() != '{' {
		return p.errAt(ast.UnexpectedChar, p.c.Pos(), "expected '{' after "+word)
	}
	p.c.Advance()

	p.push(&frame{
		kind: frameAngular,
		name: word,
		ang: &ast.AngularControlFlow{
			Base: ast.Base{Span: Span(start, start)},
			Kind: kind,
			Expr: clause,
		},
		start: start,
	})
	return nil
}

// parseAngularBlockClose consumes the `}` that ends the innermost open
// Angular control-flow frame.
func (p *Parser) parseAngularBlockClose() error {
	p.c.Advance()
	if p.top().kind != frameAngular {
		return p.errAt(ast.UnclosedBlock, p.c.Pos(), "unmatched '}' closing Angular control flow")
	}
	idx := len(p.stack) - 1
	p.closeStackDownTo(idx)
	return nil
}
