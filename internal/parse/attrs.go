package parse

import (
	"strings"

	"github.com/dpotapov/markupfmt/ast"
)

// parseAttrs consumes attributes up to (not including) the tag's closing
// '>' or the self-closing "/>" marker, classifying each into its
// dialect-specific variant (spec.md §3 Attribute, §4.2 dialect rules).
func (p *Parser) parseAttrs() ([]*ast.Attribute, bool, error) {
	var attrs []*ast.Attribute
	selfClosing := false
	for {
		p.c.SkipSpace()
		if p.c.Eof() {
			return attrs, selfClosing, p.errAt(ast.UnexpectedChar, p.c.Pos(), "unterminated tag")
		}
		if p.c.HasPrefix("/>") {
			p.c.AdvanceN(2)
			selfClosing = true
			return attrs, selfClosing, nil
		}
		if p.c.PeekByte() == '>' {
			p.c.Advance()
			return attrs, selfClosing, nil
		}
		// Astro/Svelte spread/conditional attribute groups and shorthand
		// `{expr}` occupy an attribute position without a name; recognize
		// the brace-delimited form directly.
		if (p.lang == ast.Astro || p.lang == ast.Svelte) && p.c.PeekByte() == '{' {
			a, err := p.parseShorthandAttr()
			if err != nil {
				return attrs, selfClosing, err
			}
			attrs = append(attrs, a)
			continue
		}
		a, err := p.parseOneAttr()
		if err != nil {
			return attrs, selfClosing, err
		}
		if a == nil {
			// no progress possible; bail to avoid an infinite loop on
			// malformed input
			return attrs, selfClosing, p.errAt(ast.InvalidAttributeForm, p.c.Pos(), "invalid attribute syntax")
		}
		attrs = append(attrs, a)
	}
}

// parseShorthandAttr parses a bare `{expr}` attribute (Svelte/Astro
// shorthand for `expr={expr}`).
func (p *Parser) parseShorthandAttr() (*ast.Attribute, error) {
	start := p.c.Pos()
	body, err := p.scanBraced()
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(body)
	return &ast.Attribute{
		Base:      ast.Base{Span: Span(start, p.c.Pos())},
		Name:      name,
		Value:     name,
		HasValue:  true,
		ValueKind: ast.AttrExpression,
		Variant:   ast.AttrAstroShorthand,
		Shorthand: true,
	}, nil
}

func isAttrNameByte(b byte) bool {
	switch b {
	case 0, '\t', '\n', '\f', '\r', ' ', '"', '\'', '>', '/', '=':
		return false
	default:
		return true
	}
}

// parseOneAttr parses a single `name`, `name=value`, or dialect-specific
// directive attribute.
func (p *Parser) parseOneAttr() (*ast.Attribute, error) {
	start := p.c.Pos()

	// Angular banana-in-a-box [(prop)], property [prop], event (event).
	if p.lang == ast.Angular {
		if a, ok, err := p.tryParseAngularBracketAttr(start); ok {
			return a, err
		}
	}

	nameStart := p.c.Pos()
	name := p.c.TakeWhile(isAttrNameByte)
	if name == "" {
		// Svelte/Astro standalone `{expr}` inside attribute list already
		// handled by caller; anything else here is malformed.
		return nil, nil
	}
	nameSpan := Span(nameStart, p.c.Pos())

	p.c.SkipSpace()
	hasValue := false
	var value string
	var valueSpan ast.Span
	quote := ast.QuoteNone
	valueKind := ast.AttrNoValue

	if p.c.PeekByte() == '=' {
		p.c.Advance()
		p.c.SkipSpace()
		hasValue = true
		vs := p.c.Pos()
		switch p.c.PeekByte() {
		case '"':
			p.c.Advance()
			raw, found := p.c.TakeUntil("\"")
			if found == "" {
				return nil, p.errAt(ast.UnterminatedString, p.c.Pos(), "unterminated attribute value")
			}
			p.c.Advance()
			value, quote = raw, ast.QuoteDouble
			valueKind = classifyAttrValue(p.lang, raw)
		case '\'':
			p.c.Advance()
			raw, found := p.c.TakeUntil("'")
			if found == "" {
				return nil, p.errAt(ast.UnterminatedString, p.c.Pos(), "unterminated attribute value")
			}
			p.c.Advance()
			value, quote = raw, ast.QuoteSingle
			valueKind = classifyAttrValue(p.lang, raw)
		case '{':
			// Svelte/Astro `attr={expr}` unquoted expression form; the
			// mixed "prefix{e}suffix" form is caught by the quoted
			// branches above.
			body, err := p.scanBraced()
			if err != nil {
				return nil, err
			}
			value = body
			valueKind = ast.AttrExpression
		default:
			value = p.c.TakeWhile(isAttrNameByte)
			valueKind = ast.AttrUnquoted
		}
		valueSpan = Span(vs, p.c.Pos())
	}

	attr := &ast.Attribute{
		Base:      ast.Base{Span: Span(start, p.c.Pos())},
		Name:      name,
		NameSpan:  nameSpan,
		Value:     value,
		ValueSpan: valueSpan,
		HasValue:  hasValue,
		ValueKind: valueKind,
		Quote:     quote,
	}
	classifyAttrVariant(p.lang, attr)
	return attr, nil
}

// scanBraced consumes a `{ ... }` expression, tracking nested braces and
// string literals so a `}` inside a nested object literal or string does
// not terminate the scan early. It returns the inner text with the outer
// braces stripped.
func (p *Parser) scanBraced() (string, error) {
	if p.c.PeekByte() != '{' {
		return "", p.errAt(ast.UnexpectedChar, p.c.Pos(), "expected '{'")
	}
	start := p.c.Pos()
	p.c.Advance()
	depth := 1
	innerStart := p.c.Pos()
	for {
		if p.c.Eof() {
			return "", p.errAt(ast.UnexpectedChar, start, "unterminated expression")
		}
		b := p.c.PeekByte()
		switch b {
		case '{':
			depth++
			p.c.Advance()
		case '}':
			depth--
			p.c.Advance()
			if depth == 0 {
				return p.c.Source()[innerStart : p.c.Pos()-1], nil
			}
		case '"', '\'', '`':
			p.c.Advance()
			p.c.TakeUntil(string(b))
			if !p.c.Eof() {
				p.c.Advance()
			}
		default:
			p.c.Advance()
		}
	}
}

// classifyAttrValue guesses whether a quoted value is a plain string, a
// pure `{expr}` expression, or a mixed `prefix{expr}suffix` (Svelte, per
// spec.md §4.2 "Svelte-specific").
func classifyAttrValue(l ast.LanguageTag, raw string) ast.AttrValueKind {
	if l != ast.Svelte {
		return ast.AttrQuoted
	}
	if strings.Contains(raw, "{") {
		trimmed := strings.TrimSpace(raw)
		if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") && !strings.Contains(trimmed[1:len(trimmed)-1], "{") {
			return ast.AttrExpression
		}
		return ast.AttrMixed
	}
	return ast.AttrQuoted
}

// classifyAttrVariant fills in attr.Variant (and any related fields such as
// SveltePrefix) based on the attribute name and the active dialect.
func classifyAttrVariant(l ast.LanguageTag, attr *ast.Attribute) {
	name := attr.Name
	switch l {
	case ast.Vue:
		switch {
		case strings.HasPrefix(name, "v-bind:"), name != "" && name[0] == ':':
			attr.Variant = ast.AttrVueBind
		case strings.HasPrefix(name, "v-on:"), name != "" && name[0] == '@':
			attr.Variant = ast.AttrVueOn
		case strings.HasPrefix(name, "v-slot:"), strings.HasPrefix(name, "#"), name == "v-slot":
			attr.Variant = ast.AttrVueSlot
		case strings.HasPrefix(name, "v-"):
			attr.Variant = ast.AttrVueDirective
		}
	case ast.Svelte:
		if i := strings.IndexByte(name, ':'); i > 0 {
			prefix := name[:i]
			switch prefix {
			case "bind", "on", "use", "class", "style", "animate", "transition", "in", "out":
				attr.Variant = ast.AttrSvelteBinding
				attr.SveltePrefix = prefix
			}
		}
	case ast.Astro:
		if attr.ValueKind == ast.AttrExpression {
			attr.Variant = ast.AttrAstroShorthand
		}
	case ast.Angular:
		if len(name) >= 2 {
			switch {
			case name[0] == '(' && name[len(name)-1] == ')':
				attr.Variant = ast.AttrAngularEvent
			case len(name) >= 4 && name[0] == '[' && name[1] == '(' && name[len(name)-2] == ')' && name[len(name)-1] == ']':
				attr.Variant = ast.AttrAngularBanana
			case name[0] == '[' && name[len(name)-1] == ']':
				attr.Variant = ast.AttrAngularProp
			case name[0] == '*':
				attr.Variant = ast.AttrAngularStructural
			}
		}
	}
}

// tryParseAngularBracketAttr parses `(event)`, `[prop]`, and `[(banana)]`
// attribute names, which contain characters ('(', ')', '[', ']') that
// isAttrNameByte would otherwise treat as terminators.
func (p *Parser) tryParseAngularBracketAttr(start int) (*ast.Attribute, bool, error) {
	b := p.c.PeekByte()
	if b != '(' && b != '[' {
		return nil, false, nil
	}
	nameStart := p.c.Pos()
	var closer byte
	switch b {
	case '(':
		closer = ')'
	case '[':
		closer = ']'
	}
	p.c.Advance()
	banana := b == '[' && p.c.PeekByte() == '('
	if banana {
		p.c.Advance()
	}
	p.c.TakeWhile(func(c byte) bool { return c != closer && c != ')' })
	if banana {
		if p.c.PeekByte() != ')' {
			return nil, true, p.errAt(ast.InvalidAttributeForm, p.c.Pos(), "unterminated [( banana box")
		}
		p.c.Advance()
	}
	if p.c.PeekByte() != closer {
		return nil, true, p.errAt(ast.InvalidAttributeForm, p.c.Pos(), "unterminated bracket attribute name")
	}
	p.c.Advance()
	name := p.c.Source()[nameStart:p.c.Pos()]
	nameSpan := Span(nameStart, p.c.Pos())

	p.c.SkipSpace()
	hasValue := false
	var value string
	quote := ast.QuoteNone
	if p.c.PeekByte() == '=' {
		p.c.Advance()
		p.c.SkipSpace()
		hasValue = true
		switch p.c.PeekByte() {
		case '"':
			p.c.Advance()
			raw, _ := p.c.TakeUntil("\"")
			p.c.Advance()
			value, quote = raw, ast.QuoteDouble
		case '\'':
			p.c.Advance()
			raw, _ := p.c.TakeUntil("'")
			p.c.Advance()
			value, quote = raw, ast.QuoteSingle
		default:
			value = p.c.TakeWhile(isAttrNameByte)
		}
	}
	attr := &ast.Attribute{
		Base:     ast.Base{Span: Span(start, p.c.Pos())},
		Name:     name,
		NameSpan: nameSpan,
		Value:    value,
		HasValue: hasValue,
		Quote:    quote,
	}
	classifyAttrVariant(p.lang, attr)
	return attr, true, nil
}
