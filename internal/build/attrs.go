package build

import (
	"strings"

	exprast "github.com/expr-lang/expr/ast"
	exprparser "github.com/expr-lang/expr/parser"

	"github.com/dpotapov/markupfmt/ast"
	"github.com/dpotapov/markupfmt/config"
	idoc "github.com/dpotapov/markupfmt/internal/doc"
)

// buildAttrs lays out an element's attribute list per spec.md §4.4's
// attribute-layout decision tree. With preferAttrsSingleLine == false and
// more than one attribute, a maxAttrsPerLine fill always starts on a fresh
// line, and without maxAttrsPerLine the list goes one per line whenever the
// source put any two attributes on different lines. Every other list is
// attempted on one line and breaks only when it does not fit. name is the
// already tag-name-case-rewritten opening tag name, used to line wrapped
// fill continuations up under the first attribute's column.
func (b *Builder) buildAttrs(name string, attrs []*ast.Attribute) idoc.Doc {
	if len(attrs) == 0 {
		return idoc.Nil()
	}
	docs := make([]idoc.Doc, len(attrs))
	for i, a := range attrs {
		docs[i] = b.buildAttr(a)
	}

	var body idoc.Doc
	fill := b.opts.MaxAttrsPerLine != nil && *b.opts.MaxAttrsPerLine > 0
	if fill {
		parts := make([]idoc.Doc, 0, len(docs)*2-1)
		for i, d := range docs {
			if i > 0 {
				parts = append(parts, idoc.LineDoc)
			}
			parts = append(parts, d)
		}
		inner := idoc.FillDoc(parts...)
		// Wrapped fill continuations align under the first attribute's
		// column (name plus "< "), the way clang-format lines up wrapped
		// call arguments under the opening paren, rather than falling
		// back to one indent step like the one-per-line layout below.
		body = idoc.Aligned(len(name)+2, idoc.Concats(idoc.LineDoc, inner))
	} else {
		inner := idoc.Join(idoc.LineDoc, docs)
		body = idoc.Indented(idoc.Concats(idoc.LineDoc, inner))
	}

	if len(attrs) == 1 && b.opts.SingleAttrSameLine {
		return idoc.Grp(body)
	}
	if !b.opts.PreferAttrsSingleLine && len(attrs) > 1 {
		first, last := attrs[0].Span.Start, attrs[len(attrs)-1].Span.Start
		spread := first <= last && last <= len(b.src) && strings.Contains(b.src[first:last], "\n")
		if fill || spread {
			return idoc.GrpBreak(body)
		}
	}
	return idoc.Grp(body)
}

// buildAttr renders one attribute's `name`, `name="value"`, `name={expr}`,
// or Svelte `prefix:name`/`{name}` form, honoring the configured quote
// style and each dialect's shorthand spellings (spec.md §4.2, §4.4, §6
// quotes/svelteAttrShorthand/svelteDirectiveShorthand/astroAttrShorthand/
// strictSvelteAttr).
func (b *Builder) buildAttr(a *ast.Attribute) idoc.Doc {
	name := b.rewriteAttrName(a)

	if b.lang == ast.Svelte && a.Variant == ast.AttrSvelteBinding {
		return b.buildSvelteDirective(a, name)
	}

	if !a.HasValue {
		return idoc.Str(name)
	}
	if b.lang == ast.Vue && a.Variant == ast.AttrVueBind && truthy(b.opts.Vue.BindSameNameShort) &&
		isBareIdentifierExpr(a.Value, vueBoundPropName(a.Name)) {
		return idoc.Str(name)
	}

	value := a.Value
	if b.lang == ast.Vue && a.Variant == ast.AttrVueDirective && a.Name == "v-for" {
		value = rewriteVForDelimiter(value, b.opts.Vue.ForDelimiterStyle)
	}

	switch a.ValueKind {
	case ast.AttrExpression:
		return b.buildExpressionAttr(a, name, value)
	default:
		q := chooseQuote(value, b.opts.Quotes.Char())
		return idoc.Str(name + "=" + string(q) + value + string(q))
	}
}

// buildSvelteDirective renders a Svelte bind:/on:/use:/class:/... directive
// attribute, applying svelteDirectiveShorthand's collapse ("bind:value")
// versus expand ("bind:value={value}") between the directive suffix and an
// identically-named value (spec.md §4.4, §6 svelte.directiveShorthand).
func (b *Builder) buildSvelteDirective(a *ast.Attribute, name string) idoc.Doc {
	collapse := !a.HasValue
	if b.opts.Svelte.DirectiveShorthand != nil {
		collapse = *b.opts.Svelte.DirectiveShorthand
	}
	if collapse {
		return idoc.Str(name)
	}
	value := a.Value
	if !a.HasValue {
		value = a.Name[len(a.SveltePrefix)+1:]
	}
	if b.opts.Svelte.StrictAttr {
		q := chooseQuote(value, b.opts.Quotes.Char())
		return idoc.Str(name + "=" + string(q) + "{" + value + "}" + string(q))
	}
	return idoc.Str(name + "={" + value + "}")
}

// buildExpressionAttr renders a Svelte/Astro `{expr}` attribute value,
// applying the svelteAttrShorthand/astroAttrShorthand collapse (bare
// "{name}") versus expand ("name={name}") toggle when the name and value
// coincide, and strictSvelteAttr's quote-wrapping of the mustache form
// (spec.md §4.4, §6).
func (b *Builder) buildExpressionAttr(a *ast.Attribute, name, value string) idoc.Doc {
	shorthand := a.Shorthand
	switch b.lang {
	case ast.Svelte:
		if b.opts.Svelte.AttrShorthand != nil {
			shorthand = *b.opts.Svelte.AttrShorthand
		}
	case ast.Astro:
		if b.opts.Astro.AttrShorthand != nil {
			shorthand = *b.opts.Astro.AttrShorthand
		}
	}
	if shorthand && value == name {
		return idoc.Str("{" + value + "}")
	}
	if b.lang == ast.Svelte && b.opts.Svelte.StrictAttr {
		q := chooseQuote(value, b.opts.Quotes.Char())
		return idoc.Str(name + "=" + string(q) + "{" + value + "}" + string(q))
	}
	return idoc.Str(name + "={" + value + "}")
}

// chooseQuote returns preferred, unless value already contains that quote
// character and not the other one, in which case it switches to avoid
// having to escape anything (spec.md §6 "quotes").
func chooseQuote(value string, preferred byte) byte {
	other := byte('\'')
	if preferred == '\'' {
		other = '"'
	}
	if strings.IndexByte(value, preferred) >= 0 && strings.IndexByte(value, other) < 0 {
		return other
	}
	return preferred
}

// rewriteAttrName applies the Vue v-bind/v-on/v-slot shorthand-style
// options (spec.md §6 vue.bindStyle/onStyle/slotStyle and the default/named
// slot overrides).
func (b *Builder) rewriteAttrName(a *ast.Attribute) string {
	if b.lang != ast.Vue {
		return a.Name
	}
	switch a.Variant {
	case ast.AttrVueBind:
		return applyDirectiveStyle(a.Name, "v-bind:", ":", b.opts.Vue.BindStyle)
	case ast.AttrVueOn:
		return applyDirectiveStyle(a.Name, "v-on:", "@", b.opts.Vue.OnStyle)
	case ast.AttrVueSlot:
		return b.rewriteVSlotName(a.Name)
	default:
		return a.Name
	}
}

func applyDirectiveStyle(name, longPrefix, shortPrefix string, style config.DirectiveStyle) string {
	switch style {
	case config.StyleShort:
		if strings.HasPrefix(name, longPrefix) {
			return shortPrefix + name[len(longPrefix):]
		}
	case config.StyleLong:
		if strings.HasPrefix(name, shortPrefix) {
			return longPrefix + name[len(shortPrefix):]
		}
	}
	return name
}

func truthy(v config.TriBool) bool { return v != nil && *v }

// vueBoundPropName strips a v-bind attribute's prefix to recover the bound
// property name, e.g. ":foo" or "v-bind:foo" both yield "foo".
func vueBoundPropName(name string) string {
	switch {
	case strings.HasPrefix(name, "v-bind:"):
		return name[len("v-bind:"):]
	case strings.HasPrefix(name, ":"):
		return name[1:]
	default:
		return name
	}
}

// isBareIdentifierExpr reports whether value parses as a single bare
// identifier equal to want, using expr-lang/expr's parser rather than a
// hand-rolled identifier regex, so the same expression grammar markupfmt's
// domain dialects bind against (Vue/Angular attribute expressions) governs
// the classification (spec.md §4.2's bindSameNameShort shorthand rewrite,
// grounded on the teacher's own use of expr-lang/expr for its interpolation
// expressions in chtml/expr.go).
func isBareIdentifierExpr(value, want string) bool {
	tree, err := exprparser.Parse(value)
	if err != nil {
		return false
	}
	id, ok := tree.Node.(*exprast.IdentifierNode)
	return ok && id.Value == want
}

// rewriteVForDelimiter rewrites a v-for expression's "item in list" /
// "item of list" keyword to match style (spec.md §4.4, §6
// vue.forDelimiterStyle). VForPreserve leaves the source spelling alone.
func rewriteVForDelimiter(value string, style config.VForDelimiterStyle) string {
	if style == config.VForPreserve {
		return value
	}
	idx, kw := findVForKeyword(value)
	if idx < 0 {
		return value
	}
	want := string(style)
	if kw == want {
		return value
	}
	return value[:idx] + want + value[idx+len(kw):]
}

// findVForKeyword locates the top-level " in "/" of " keyword separating a
// v-for's alias from its iterable, skipping over any parens/brackets/braces
// the alias destructuring pattern or a computed expression may use (e.g.
// "(item, index) in list") and over quoted string literals in the iterable.
// It returns the byte offset of the keyword itself (not the surrounding
// spaces) and its text, or -1 if no top-level keyword is found.
func findVForKeyword(value string) (int, string) {
	depth := 0
	var quote byte
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"' || c == '`':
			quote = c
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case depth == 0 && c == ' ':
			if strings.HasPrefix(value[i:], " in ") {
				return i + 1, "in"
			}
			if strings.HasPrefix(value[i:], " of ") {
				return i + 1, "of"
			}
		}
	}
	return -1, ""
}

// slotName recovers the slot name a v-slot attribute targets: bare "v-slot"
// and "v-slot:default"/"#default" all denote the default slot.
func slotName(name string) string {
	var suffix string
	switch {
	case name == "v-slot":
		return "default"
	case strings.HasPrefix(name, "v-slot:"):
		suffix = name[len("v-slot:"):]
	case strings.HasPrefix(name, "#"):
		suffix = name[1:]
	default:
		return "default"
	}
	if suffix == "" {
		return "default"
	}
	return suffix
}

// rewriteVSlotName applies the vue.slotStyle option family: defaultSlotStyle
// and namedSlotStyle override the base slotStyle for their respective slot
// kind, a component-dialect element's own component.vSlotStyle overrides
// both, and the default slot may additionally take the bare "v-slot"
// keyword form (spec.md §4.4, §6).
func (b *Builder) rewriteVSlotName(name string) string {
	isDefault := slotName(name) == "default"

	style := b.opts.Vue.SlotStyle
	switch {
	case isDefault && b.opts.Vue.DefaultSlotStyle != config.VSlotPreserve:
		style = b.opts.Vue.DefaultSlotStyle
	case !isDefault && b.opts.Vue.NamedSlotStyle != config.VSlotPreserve:
		style = b.opts.Vue.NamedSlotStyle
	}
	if b.lang.IsComponentDialect() && b.opts.Component.VSlotStyle != config.VSlotPreserve {
		style = b.opts.Component.VSlotStyle
	}

	if isDefault && style == config.VSlotKeyword {
		return "v-slot"
	}
	return applyVSlotStyle(name, style)
}

func applyVSlotStyle(name string, style config.VSlotStyle) string {
	switch style {
	case config.VSlotShort:
		if strings.HasPrefix(name, "v-slot:") {
			return "#" + name[len("v-slot:"):]
		}
		if name == "v-slot" {
			return "#default"
		}
	case config.VSlotLong:
		if strings.HasPrefix(name, "#") {
			return "v-slot:" + name[1:]
		}
		if name == "v-slot" {
			return "v-slot:default"
		}
	}
	return name
}
