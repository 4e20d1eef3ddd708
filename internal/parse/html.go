package parse

import (
	"strings"

	"github.com/dpotapov/markupfmt/ast"
)

// parseComment consumes `<!-- ... -->`, tagging IgnoreSubtree/IgnoreFile
// when the trimmed body matches one of the configured ignore directives
// (spec.md §4.2, §6 IgnoreCommentDirective/IgnoreFileCommentDirective).
func (p *Parser) parseComment() error {
	start := p.c.Pos()
	p.c.AdvanceN(4) // "<!--"
	body, found := p.c.TakeUntil("-->")
	if found == "" {
		return p.errAt(ast.UnterminatedComment, start, "unterminated comment")
	}
	p.c.AdvanceN(3)
	trimmed := strings.TrimSpace(body)
	c := &ast.Comment{
		Base: ast.Base{Span: Span(start, p.c.Pos())},
		Data: body,
	}
	for _, d := range p.opts.IgnoreDirectives() {
		if trimmed == d {
			c.IgnoreSubtree = true
		}
	}
	if trimmed == p.opts.IgnoreFileCommentDirective {
		c.IgnoreFile = true
	}
	p.appendChild(c)
	return nil
}

// parseCDATA consumes a `<![CDATA[ ... ]]>` section (Xml dialect).
func (p *Parser) parseCDATA() error {
	start := p.c.Pos()
	p.c.AdvanceN(9) // "<![CDATA["
	body, found := p.c.TakeUntil("]]>")
	if found == "" {
		return p.errAt(ast.UnterminatedCDATA, start, "unterminated CDATA section")
	}
	p.c.AdvanceN(3)
	p.appendChild(&ast.CDATA{
		Base: ast.Base{Span: Span(start, p.c.Pos())},
		Data: body,
	})
	return nil
}

// parseDoctype consumes `<!DOCTYPE ...>`, preserving the keyword's observed
// casing for DoctypeKeywordCase to act on later (spec.md §4.4).
func (p *Parser) parseDoctype() error {
	start := p.c.Pos()
	p.c.AdvanceN(2) // "<!"
	keyword := p.c.TakeWhile(func(b byte) bool { return b != ' ' && b != '\t' && b != '\n' && b != '>' })
	body, found := p.c.TakeUntil(">")
	if found == "" {
		return p.errAt(ast.UnexpectedChar, start, "unterminated doctype")
	}
	p.c.Advance()
	p.appendChild(&ast.Doctype{
		Base:    ast.Base{Span: Span(start, p.c.Pos())},
		Keyword: keyword,
		Body:    body,
	})
	return nil
}

// parseXmlDecl consumes the `<?xml ... ?>` prolog.
func (p *Parser) parseXmlDecl() error {
	start := p.c.Pos()
	body, found := p.c.TakeUntil("?>")
	if found == "" {
		return p.errAt(ast.UnexpectedChar, start, "unterminated xml declaration")
	}
	p.c.AdvanceN(2)
	p.appendChild(&ast.XmlDecl{
		Base: ast.Base{Span: Span(start, p.c.Pos())},
		Data: body,
	})
	return nil
}

// parseProcessingInstruction consumes a generic `<?target data?>`.
func (p *Parser) parseProcessingInstruction() error {
	start := p.c.Pos()
	p.c.AdvanceN(2) // "<?"
	target := p.c.TakeWhile(func(b byte) bool { return b != ' ' && b != '\t' && b != '\n' && b != '?' })
	data, found := p.c.TakeUntil("?>")
	if found == "" {
		return p.errAt(ast.UnexpectedChar, start, "unterminated processing instruction")
	}
	p.c.AdvanceN(2)
	p.appendChild(&ast.ProcessingInstruction{
		Base:   ast.Base{Span: Span(start, p.c.Pos())},
		Target: target,
		Data:   data,
	})
	return nil
}

// parseStartTag consumes `<name attrs...>` or `<name attrs.../>`, either
// finishing the element immediately (void tags, self-closing, raw-text
// tags) or pushing a frame for its children to accumulate against.
func (p *Parser) parseStartTag() error {
	start := p.c.Pos()
	p.c.Advance() // '<'
	nameStart := p.c.Pos()
	name := p.c.TakeWhile(isTagNameByte)
	nameSpan := Span(nameStart, p.c.Pos())

	attrs, selfClosing, err := p.parseAttrs()
	if err != nil {
		return err
	}

	isComponent := p.lang.IsComponentDialect() && ast.IsComponentTagName(name)
	el := &ast.Element{
		Base:                ast.Base{Span: Span(start, p.c.Pos())},
		Name:                name,
		NameSpan:            nameSpan,
		Attrs:               attrs,
		SelfClosingSpelled:  selfClosing,
		WhitespacePreserved: ast.IsPreformattedTag(name),
		IsComponent:         isComponent,
	}

	switch {
	case ast.IsVoidTag(name) && p.lang.HostMarkup() == ast.Html:
		el.Closing = ast.ClosingVoidImplicit
		p.appendChild(el)
	case selfClosing:
		el.Closing = ast.ClosingSelfClosed
		p.appendChild(el)
	case len(p.stack) == 1 && isVueCustomBlock(p.lang, name):
		// Vue SFC custom blocks (<i18n>, <docs>, ...) are only recognized
		// as document-root siblings of <template>/<script>/<style>, never
		// as ordinary descendants of a <template> tree.
		return p.finishRawTextElement(el)
	case ast.IsRawTextTag(name) && !isComponent:
		return p.finishRawTextElement(el)
	default:
		p.autoCloseIfNeeded(name)
		p.push(&frame{kind: frameElement, name: name, el: el, start: start})
	}
	return nil
}

func isTagNameByte(b byte) bool {
	switch b {
	case 0, '\t', '\n', '\f', '\r', ' ', '"', '\'', '>', '/', '=':
		return false
	default:
		return true
	}
}

// autoCloseIfNeeded implicitly closes an open element of the same name
// when the host markup permits leaving that element's end tag out (e.g.
// <li>, <p>, <option>), so a fresh start tag of the same name doesn't nest
// forever (spec.md invariant 2, ClosingUnclosedPermitted).
func (p *Parser) autoCloseIfNeeded(name string) {
	if p.lang.HostMarkup() != ast.Html || !impliedEndTagFor(name) {
		return
	}
	if idx := p.findFrame(frameElement, name); idx == len(p.stack)-1 {
		p.top().el.Closing = ast.ClosingUnclosedPermitted
		p.closeStackDownTo(idx)
	}
}

func impliedEndTagFor(name string) bool {
	switch strings.ToLower(name) {
	case "li", "p", "option", "tr", "td", "th", "dt", "dd":
		return true
	default:
		return false
	}
}

// finishRawTextElement collects a script/style/textarea/title body verbatim
// up to its matching case-insensitive end tag, with no inner tokenization
// (spec.md §4.2's raw-text rule).
func (p *Parser) finishRawTextElement(el *ast.Element) error {
	endTag := "</" + el.Name
	bodyStart := p.c.Pos()
	raw, found := p.c.TakeUntilFold(endTag)
	if found == "" {
		return p.errAt(ast.UnmatchedEndTag, bodyStart, "unterminated raw-text element: "+el.Name)
	}
	bodyEnd := p.c.Pos()
	p.c.AdvanceN(len(endTag))
	p.c.SkipSpace()
	if p.c.PeekByte() == '>' {
		p.c.Advance()
	}
	el.RawText = true
	el.Closing = ast.ClosingPaired
	el.EndTagName = el.Name
	customBlock := len(p.stack) == 1 && isVueCustomBlock(p.lang, el.Name)
	if lower := strings.ToLower(el.Name); raw != "" && !customBlock && (lower == "textarea" || lower == "title") {
		el.Children = []ast.Node{&ast.TextChunk{
			Base:       ast.Base{Span: Span(bodyStart, bodyEnd)},
			Data:       raw,
			Whitespace: strings.TrimSpace(raw) == "",
		}}
	} else if raw != "" {
		kind := rawTextEmbedKind(el.Name)
		langHint := attrValue(el.Attrs, "lang")
		if customBlock {
			kind = ast.EmbedCustomBlock
			langHint = vueCustomBlockLangHint(el.Name, langHint)
		} else if el.Name == "script" && attrValue(el.Attrs, "type") == "application/json" {
			kind = ast.EmbedJSONScript
		}
		el.Children = []ast.Node{&ast.EmbeddedCode{
			Base:      ast.Base{Span: Span(bodyStart, bodyEnd)},
			Kind:      kind,
			LangHint:  langHint,
			ParentTag: el.Name,
			Raw:       raw,
		}}
	}
	el.Base.Span.End = p.c.Pos()
	p.appendChild(el)
	return nil
}

func attrValue(attrs []*ast.Attribute, name string) string {
	for _, a := range attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

func rawTextEmbedKind(tag string) ast.EmbeddedCodeKind {
	switch strings.ToLower(tag) {
	case "script":
		return ast.EmbedScript
	case "style":
		return ast.EmbedStyle
	default:
		return ast.EmbedScript
	}
}

// parseEndTag consumes `</name>` and closes the matching open element,
// implicitly closing anything left open above it on the stack.
func (p *Parser) parseEndTag() error {
	p.c.AdvanceN(2)
	nameStart := p.c.Pos()
	name := p.c.TakeWhile(isTagNameByte)
	p.c.SkipSpace()
	if p.c.PeekByte() == '>' {
		p.c.Advance()
	}
	idx := p.findFrame(frameElement, name)
	if idx < 0 {
		return p.errAt(ast.UnmatchedEndTag, nameStart, "unmatched end tag: "+name)
	}
	if name != p.stack[idx].el.Name {
		p.stack[idx].el.EndTagName = name
	}
	p.stack[idx].el.Closing = ast.ClosingPaired
	for i := idx + 1; i < len(p.stack); i++ {
		if p.stack[i].kind == frameElement {
			p.stack[i].el.Closing = ast.ClosingUnclosedPermitted
		}
	}
	p.closeStackDownTo(idx)
	return nil
}

// parseText consumes a run of literal text up to the next markup or
// template construct, per dialect (spec.md §4.2's text-run rule: text ends
// at '<' for markup dialects, or at the active template delimiter).
func (p *Parser) parseText() error {
	start := p.c.Pos()
	delims := []string{"<"}
	if p.lang.IsTemplateDialect() {
		d := dialectDelimiters(p.lang)
		if d.interpStart != "" {
			delims = append(delims, d.interpStart, d.stmtStart, d.commentStart)
		}
	}
	if p.lang == ast.Angular {
		delims = append(delims, "@")
		if p.top().kind == frameAngular {
			delims = append(delims, "}")
		}
	}
	text, found := p.c.TakeUntil(delims...)
	if text == "" && found != "" {
		// The delimiter matched at the very start (shouldn't normally
		// reach here since step() dispatches on it first), consume one
		// byte to guarantee forward progress.
		text = string(p.c.Advance())
	}
	if text == "" {
		return p.errAt(ast.UnexpectedChar, start, "unexpected character")
	}
	p.appendChild(&ast.TextChunk{
		Base:       ast.Base{Span: Span(start, p.c.Pos())},
		Data:       text,
		Whitespace: isAllWhitespace(text),
	})
	return nil
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
		default:
			return false
		}
	}
	return true
}
