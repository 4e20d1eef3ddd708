package config

// LineBreak selects the line terminator the renderer emits for hardline and
// broken line/softline primitives.
type LineBreak string

const (
	LF   LineBreak = "lf"
	CRLF LineBreak = "crlf"
)

// Terminator returns the literal bytes for the line break kind.
func (l LineBreak) Terminator() string {
	if l == CRLF {
		return "\r\n"
	}
	return "\n"
}

// QuoteStyle selects the preferred attribute value quote character.
type QuoteStyle string

const (
	DoubleQuote QuoteStyle = "double"
	SingleQuote QuoteStyle = "single"
)

func (q QuoteStyle) Char() byte {
	if q == SingleQuote {
		return '\''
	}
	return '"'
}

// WhitespaceSensitivity selects how whitespace adjacent to a tag boundary is
// treated. See spec.md §4.4 "Children block".
type WhitespaceSensitivity string

const (
	WhitespaceCSS    WhitespaceSensitivity = "css"
	WhitespaceStrict WhitespaceSensitivity = "strict"
	WhitespaceIgnore WhitespaceSensitivity = "ignore"
)

// DoctypeKeywordCase selects the casing used to reprint the DOCTYPE keyword.
type DoctypeKeywordCase string

const (
	DoctypeUpper  DoctypeKeywordCase = "upper"
	DoctypeLower  DoctypeKeywordCase = "lower"
	DoctypeIgnore DoctypeKeywordCase = "ignore"
)

// ClosingTagLineBreak controls whether an empty element's closing tag
// (or the self-closing slash) sits on its own line.
type ClosingTagLineBreak string

const (
	ClosingAlways ClosingTagLineBreak = "always"
	ClosingFit    ClosingTagLineBreak = "fit"
	ClosingNever  ClosingTagLineBreak = "never"
)

// DirectiveStyle is a tri-state short/long/unset option, used for
// vBindStyle, vOnStyle and similar attribute-rewrite toggles. The zero value
// Preserve means "keep whatever form the source used".
type DirectiveStyle string

const (
	StylePreserve DirectiveStyle = ""
	StyleShort    DirectiveStyle = "short"
	StyleLong     DirectiveStyle = "long"
)

// VSlotStyle additionally allows the bare "v-slot" keyword form for the
// default slot.
type VSlotStyle string

const (
	VSlotPreserve VSlotStyle = ""
	VSlotShort    VSlotStyle = "short"
	VSlotLong     VSlotStyle = "long"
	VSlotKeyword  VSlotStyle = "vSlot"
)

// VForDelimiterStyle selects the keyword used to separate the loop variable
// from the iterable in a v-for expression.
type VForDelimiterStyle string

const (
	VForPreserve VForDelimiterStyle = ""
	VForIn       VForDelimiterStyle = "in"
	VForOf       VForDelimiterStyle = "of"
)

// ComponentCase selects how multi-word component tag names are rewritten.
type ComponentCase string

const (
	ComponentCaseIgnore ComponentCase = "ignore"
	ComponentCasePascal ComponentCase = "pascalCase"
	ComponentCaseKebab  ComponentCase = "kebabCase"
)

// CustomBlockMode selects how a Vue custom block's body is handled.
type CustomBlockMode string

const (
	CustomBlockLangAttribute CustomBlockMode = "lang-attribute"
	CustomBlockSquash        CustomBlockMode = "squash"
	CustomBlockNone          CustomBlockMode = "none"
)

// TriBool is a nullable boolean option: nil means "preserve source /
// inherit default", non-nil forces the value.
type TriBool = *bool

func TriTrue() TriBool  { v := true; return &v }
func TriFalse() TriBool { v := false; return &v }

// selfClosingOptions groups the closing-form overrides for each tag
// category named in spec.md §6.
type selfClosingOptions struct {
	Normal  TriBool // html.normal.selfClosing
	Void    TriBool // html.void.selfClosing
	Component TriBool // component.selfClosing
	Svg     TriBool // svg.selfClosing
	MathML  TriBool // mathml.selfClosing
}

// SelfClosingOptions is exported for embedding in Options.
type SelfClosingOptions = selfClosingOptions

// ScriptStyleIndentOptions groups the per-dialect scriptIndent/styleIndent
// overrides (html./vue./svelte./astro.{script,style}Indent).
type ScriptStyleIndentOptions struct {
	Script TriBool
	Style  TriBool
}

// VueOptions groups Vue-specific option families.
type VueOptions struct {
	BindStyle          DirectiveStyle
	OnStyle            DirectiveStyle
	ForDelimiterStyle  VForDelimiterStyle
	SlotStyle          VSlotStyle
	DefaultSlotStyle   VSlotStyle
	NamedSlotStyle     VSlotStyle
	BindSameNameShort  TriBool
	ComponentCase      ComponentCase
	CustomBlock        CustomBlockMode
	ScriptStyleIndent  ScriptStyleIndentOptions
}

// SvelteOptions groups Svelte-specific option families.
type SvelteOptions struct {
	AttrShorthand      TriBool
	DirectiveShorthand TriBool
	StrictAttr         bool
	ScriptStyleIndent  ScriptStyleIndentOptions
}

// AstroOptions groups Astro-specific option families.
type AstroOptions struct {
	AttrShorthand     TriBool
	ScriptStyleIndent ScriptStyleIndentOptions
}

// AngularOptions groups Angular-specific option families.
type AngularOptions struct {
	NextControlFlowSameLine bool
}

// ComponentOptions groups the "component.*" option family shared across
// component dialects.
type ComponentOptions struct {
	WhitespaceSensitivity WhitespaceSensitivity // "" means inherit the top-level value
	SelfClosing           TriBool
	VSlotStyle            VSlotStyle
}

// Options is the flat structure enumerated in spec.md §6. Zero value fields
// are filled in by DefaultOptions; callers typically start from
// DefaultOptions() and override individual fields.
type Options struct {
	PrintWidth  int
	UseTabs     bool
	IndentWidth int
	LineBreak   LineBreak
	Quotes      QuoteStyle

	FormatComments bool

	ScriptIndent bool
	StyleIndent  bool

	HTML   ScriptStyleIndentOptions
	SelfClosing selfClosingOptions

	ClosingBracketSameLine     bool
	ClosingTagLineBreakForEmpty ClosingTagLineBreak
	MaxAttrsPerLine            *int
	PreferAttrsSingleLine      bool
	SingleAttrSameLine         bool

	WhitespaceSensitivity WhitespaceSensitivity
	Component             ComponentOptions
	SVGSelfClosing         TriBool
	MathMLSelfClosing      TriBool

	DoctypeKeywordCase DoctypeKeywordCase

	Vue      VueOptions
	Svelte   SvelteOptions
	Astro    AstroOptions
	Angular  AngularOptions

	VueComponentCase ComponentCase

	HTMLParseJSExpressions bool

	IgnoreCommentDirective     string
	IgnoreFileCommentDirective string

	// ExtraIgnoreCommentDirectives adds additional accepted spellings for
	// the subtree-ignore directive, for interop with codebases that mix
	// markupfmt with another formatter's ignore convention. See
	// SPEC_FULL.md §4.
	ExtraIgnoreCommentDirectives []string

	// Logger, when non-nil, receives low-volume structured trace events
	// (callback invocation order, ignored subtrees, dialect fallbacks). It
	// is not part of the pretty-printing contract and never affects output.
	Logger logger
}

// DefaultOptions returns the option set spec.md §6 documents as defaults.
func DefaultOptions() Options {
	return Options{
		PrintWidth:                  80,
		UseTabs:                     false,
		IndentWidth:                 2,
		LineBreak:                   LF,
		Quotes:                      DoubleQuote,
		FormatComments:              false,
		ClosingBracketSameLine:      false,
		ClosingTagLineBreakForEmpty: ClosingFit,
		PreferAttrsSingleLine:       false,
		SingleAttrSameLine:          true,
		WhitespaceSensitivity:       WhitespaceCSS,
		DoctypeKeywordCase:          DoctypeUpper,
		VueComponentCase:            ComponentCaseIgnore,
		Vue: VueOptions{
			CustomBlock: CustomBlockLangAttribute,
		},
		Angular: AngularOptions{
			NextControlFlowSameLine: true,
		},
		IgnoreCommentDirective:     "markup-fmt-ignore",
		IgnoreFileCommentDirective: "markup-fmt-ignore-file",
	}
}

// IndentUnit returns the literal string emitted for one indentation step.
func (o Options) IndentUnit() string {
	if o.UseTabs {
		return "\t"
	}
	n := o.IndentWidth
	if n <= 0 {
		n = 2
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}

// IgnoreDirectives returns every comment body that suppresses formatting of
// the following subtree: the configured directive plus any extras.
func (o Options) IgnoreDirectives() []string {
	out := make([]string, 0, 1+len(o.ExtraIgnoreCommentDirectives))
	if o.IgnoreCommentDirective != "" {
		out = append(out, o.IgnoreCommentDirective)
	}
	out = append(out, o.ExtraIgnoreCommentDirectives...)
	return out
}
