package parse

import (
	"strings"

	"github.com/dpotapov/markupfmt/ast"
)

// parseTemplateConstruct dispatches a template dialect's `{{ }}`/`{% %}`/
// `{# #}`-family token at the cursor to interpolation, comment, or
// statement handling (spec.md §3 "Statement/Interpolation/Comment/Block").
func (p *Parser) parseTemplateConstruct() error {
	d := dialectDelimiters(p.lang)
	switch {
	case p.c.HasPrefix(d.commentStart):
		return p.parseTemplateComment(d)
	case p.c.HasPrefix(d.stmtStart) && d.stmtStart != d.interpStart:
		return p.parseTemplateStatement(d)
	case p.c.HasPrefix(d.interpStart):
		return p.parseTemplateInterpolationOrStatement(d)
	default:
		return p.parseText()
	}
}

func (p *Parser) parseTemplateComment(d delimiters) error {
	start := p.c.Pos()
	p.c.AdvanceN(len(d.commentStart))
	raw, found := p.c.TakeUntil(d.commentEnd)
	if found == "" {
		return p.errAt(ast.UnclosedBlock, start, "unterminated template comment")
	}
	p.c.AdvanceN(len(d.commentEnd))
	p.appendChild(&ast.TemplateNode{
		Base: ast.Base{Span: Span(start, p.c.Pos())},
		Kind: ast.TplComment,
		Raw:  raw,
	})
	return nil
}

// parseTemplateInterpolationOrStatement handles Vento/Mustache/Handlebars,
// whose statement and interpolation forms share one `{{ }}` delimiter pair
// and are told apart by the leading token inside (spec.md §3 note on Vento).
func (p *Parser) parseTemplateInterpolationOrStatement(d delimiters) error {
	if p.lang == ast.Mustache {
		return p.parseMustacheToken(d)
	}
	if p.lang == ast.Vento || p.lang == ast.Handlebars {
		save := p.c.Pos()
		p.c.AdvanceN(len(d.interpStart))
		p.c.SkipSpace()
		body := p.c.Rest()
		if i := strings.Index(body, d.interpEnd); i >= 0 {
			body = body[:i]
		}
		word := leadingWord(body)
		p.c.SeekTo(save)
		for _, bk := range blockKeywords(p.lang) {
			if word == bk.start || containsString(bk.ends, word) || containsString(bk.midKeywords, word) {
				return p.parseTemplateStatement(d)
			}
		}
	}
	return p.parseTemplateInterpolation(d)
}

// mustacheSectionPrefixes are the leading sigils that mark a `{{ }}` token
// as a section opener rather than a plain interpolation: "#"/"^" for
// normal/inverted sections, "$" for a block-content override, "<" for a
// parent-partial inclusion with block content (Mustache/dot-section
// grammar; see original_source/markup_fmt's parse_mustache_block_or_interpolation).
const mustacheSectionPrefixes = "#^$<"

// parseMustacheToken consumes one `{{ ... }}` token and dispatches it to a
// section open (pushing a frameTemplateBlock keyed by the section name,
// since Mustache sections have no fixed keyword table the way
// Jinja/Twig/Vento blocks do), a section close (popping the matching open
// section by name, mirroring parseTemplateStatement's straddling-blocks
// design for "end"-style keywords), or a plain interpolation.
func (p *Parser) parseMustacheToken(d delimiters) error {
	start := p.c.Pos()
	p.c.AdvanceN(len(d.interpStart))
	raw, found := p.c.TakeUntil(d.interpEnd)
	if found == "" {
		return p.errAt(ast.UnclosedBlock, start, "unterminated interpolation")
	}
	p.c.AdvanceN(len(d.interpEnd))
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "/") {
		name := strings.TrimSpace(trimmed[1:])
		idx := p.findFrame(frameTemplateBlock, name)
		if idx < 0 {
			return p.errAt(ast.UnclosedBlock, start, "unmatched end of section: "+name)
		}
		p.stack[idx].tpl.EndKeyword = "/" + name
		p.closeStackDownTo(idx)
		return nil
	}

	if trimmed != "" && strings.IndexByte(mustacheSectionPrefixes, trimmed[0]) >= 0 {
		name := strings.TrimSpace(trimmed[1:])
		p.push(&frame{
			kind: frameTemplateBlock,
			name: name,
			tpl: &ast.TemplateNode{
				Base:         ast.Base{Span: Span(start, start)},
				Kind:         ast.TplBlock,
				StartKeyword: trimmed[:1],
				Expr:         name,
			},
			start: start,
		})
		return nil
	}

	p.appendChild(&ast.TemplateNode{
		Base: ast.Base{Span: Span(start, p.c.Pos())},
		Kind: ast.TplInterpolation,
		Expr: trimmed,
	})
	return nil
}

func (p *Parser) parseTemplateInterpolation(d delimiters) error {
	start := p.c.Pos()
	p.c.AdvanceN(len(d.interpStart))
	expr, found := p.c.TakeUntil(d.interpEnd)
	if found == "" {
		return p.errAt(ast.UnclosedBlock, start, "unterminated interpolation")
	}
	p.c.AdvanceN(len(d.interpEnd))
	p.appendChild(&ast.TemplateNode{
		Base: ast.Base{Span: Span(start, p.c.Pos())},
		Kind: ast.TplInterpolation,
		Expr: strings.TrimSpace(expr),
	})
	return nil
}

// parseTemplateStatement handles `{% ... %}`-family tokens: a block-opening
// keyword pushes a frame; a mid keyword (elif/else/...) splits the current
// block without closing it; an end keyword closes the matching open block,
// wherever it is on the stack, per spec.md §9's straddling-blocks design.
func (p *Parser) parseTemplateStatement(d delimiters) error {
	start := p.c.Pos()
	p.c.AdvanceN(len(d.stmtStart))
	raw, found := p.c.TakeUntil(d.stmtEnd)
	if found == "" {
		return p.errAt(ast.UnclosedBlock, start, "unterminated statement")
	}
	p.c.AdvanceN(len(d.stmtEnd))
	trimmed := strings.TrimSpace(raw)
	word := leadingWord(trimmed)
	expr := strings.TrimSpace(trimmed[len(word):])

	for _, bk := range blockKeywords(p.lang) {
		switch {
		case word == bk.start:
			p.push(&frame{
				kind: frameTemplateBlock,
				name: bk.start,
				tpl: &ast.TemplateNode{
					Base:         ast.Base{Span: Span(start, start)},
					Kind:         ast.TplBlock,
					StartKeyword: word,
					Expr:         expr,
				},
				start: start,
			})
			return nil
		case containsString(bk.midKeywords, word):
			p.appendChild(&ast.TemplateNode{
				Base:         ast.Base{Span: Span(start, p.c.Pos())},
				Kind:         ast.TplStatement,
				StartKeyword: word,
				Expr:         expr,
			})
			return nil
		case containsString(bk.ends, word):
			idx := p.findFrame(frameTemplateBlock, bk.start)
			if idx < 0 {
				return p.errAt(ast.UnclosedBlock, start, "unmatched end of block: "+word)
			}
			p.stack[idx].tpl.EndKeyword = word
			p.closeStackDownTo(idx)
			return nil
		}
	}

	// Not a recognized block keyword: a plain statement (set/do/...) with
	// no matching open/close pairing.
	p.appendChild(&ast.TemplateNode{
		Base:         ast.Base{Span: Span(start, p.c.Pos())},
		Kind:         ast.TplStatement,
		StartKeyword: word,
		Expr:         expr,
	})
	return nil
}

func leadingWord(s string) string {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) {
		b := s[i]
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '(' {
			break
		}
		i++
	}
	return s[:i]
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
