package ast

// Node is implemented by every AST node. It is a small closed marker
// interface: the concrete set of implementers is fixed by this file, and
// consumers switch on the concrete type rather than adding new
// implementations (the "single tagged-union node type" design spec.md §9
// recommends over a subclassing hierarchy).
type Node interface {
	node()
	Loc() Span
}

// Base carries the fields common to every node: its source span. Embedding
// it satisfies the Loc() method for every variant and lets other packages
// (internal/parse, internal/build) construct nodes with a span directly as
// a struct literal field, since the field is exported.
type Base struct {
	Span Span
}

func (b Base) Loc() Span { return b.Span }
func (b *Base) SetSpan(s Span) { b.Span = s }

// Document is the root of a parsed source: an ordered sequence of top-level
// nodes. A Document may have more than one element root (Vue SFCs, Svelte
// fragments, bare template dialect files) — see SPEC_FULL.md §4.
type Document struct {
	Base
	Children []Node

	// FileIgnored is set when the document's first significant comment is
	// an IgnoreFileDirective; Format returns the original source verbatim
	// when true.
	FileIgnored bool
}

func (*Document) node() {}

// NamespaceHint records which foreign-content namespace an Element or its
// descendants are parsed under.
type NamespaceHint int

const (
	NamespaceHTML NamespaceHint = iota
	NamespaceSVG
	NamespaceMathML
)

// ClosingForm records how an element's end was spelled in the source,
// satisfying spec.md invariant 2 ("exactly one of paired, self-closed,
// void-implicit holds").
type ClosingForm int

const (
	ClosingPaired         ClosingForm = iota // <div>...</div>
	ClosingSelfClosed                        // <div />
	ClosingVoidImplicit                      // <br>, never has children
	ClosingUnclosedPermitted                  // e.g. <li> without </li> in the source
)

// Element is a markup element: an ordinary HTML/XML/SVG/MathML tag, or (in a
// component dialect) a capitalized/dash-containing custom element.
type Element struct {
	Base
	Name          string
	NameSpan      Span
	Namespace     NamespaceHint
	Attrs         []*Attribute
	Children      []Node
	Closing       ClosingForm
	SelfClosingSpelled bool // true if source literally wrote "/>" regardless of Closing
	WhitespacePreserved bool // inherited from tag category (pre/textarea/script/style)
	RawText       bool       // script/style/textarea/title/custom-block: exactly one text/embedded child
	IsComponent   bool       // capitalized or dash-containing tag in a component dialect

	// EndTagName, when non-empty, records the (possibly differently cased)
	// spelling of the observed end tag, for HTML's case-insensitive match.
	EndTagName string
}

func (*Element) node() {}

// AttrValueKind distinguishes how an attribute's value was spelled.
type AttrValueKind int

const (
	AttrNoValue     AttrValueKind = iota // boolean attribute, e.g. `disabled`
	AttrQuoted                           // "value" or 'value'
	AttrUnquoted                         // value
	AttrExpression                       // Svelte {expr} / Astro {expr}
	AttrMixed                            // Svelte "prefix{expr}suffix"
)

// QuoteKind records which quote character (if any) enclosed the value.
type QuoteKind int

const (
	QuoteNone QuoteKind = iota
	QuoteDouble
	QuoteSingle
)

// AttrVariant tags the dialect-specific meaning of an attribute name.
type AttrVariant int

const (
	AttrPlain AttrVariant = iota
	AttrVueBind
	AttrVueOn
	AttrVueSlot
	AttrVueDirective // other v-* directives (v-if, v-for, v-model, ...)
	AttrSvelteBinding
	AttrAstroShorthand
	AttrAngularEvent      // (event)
	AttrAngularProp       // [prop]
	AttrAngularBanana     // [(prop)]
	AttrAngularStructural // *ngIf etc.
	AttrTemplateExpr      // embedded-template expression straddling the attribute
)

// Attribute is a single attribute occurrence. Duplicates are preserved
// per spec.md invariant 4.
type Attribute struct {
	Base
	Name       string
	NameSpan   Span
	Value      string // raw value text, delimiters stripped
	ValueSpan  Span
	HasValue   bool
	ValueKind  AttrValueKind
	Quote      QuoteKind
	Variant    AttrVariant

	// SveltePrefix is the kind word before ':' for Svelte directives
	// (bind, on, use, class, style, animate, transition, in, out).
	SveltePrefix string

	// Shorthand records whether the attribute used a shorthand spelling
	// that is semantically equivalent to a longer form (":x" vs
	// "v-bind:x", "{x}" vs "x={x}", etc.).
	Shorthand bool
}

// TextChunk is a run of literal text between markup/template constructs.
type TextChunk struct {
	Base
	Data              string
	Whitespace        bool // Data is entirely whitespace
	LeadingSignificant  bool // adjacency to a preceding inline/pre-formatted neighbor
	TrailingSignificant bool // adjacency to a following inline/pre-formatted neighbor
}

func (*TextChunk) node() {}

// Comment is an HTML/XML comment. IgnoreSubtree and IgnoreFile record which
// ignore directive, if any, it matched.
type Comment struct {
	Base
	Data string

	IgnoreSubtree bool // trimmed body matches an ignoreCommentDirective
	IgnoreFile    bool // trimmed body matches ignoreFileCommentDirective
}

func (*Comment) node() {}

// CDATA carries a verbatim <![CDATA[ ... ]]> payload (Xml dialect).
type CDATA struct {
	Base
	Data string
}

func (*CDATA) node() {}

// ProcessingInstruction carries a verbatim <?...?> payload.
type ProcessingInstruction struct {
	Base
	Target string
	Data   string
}

func (*ProcessingInstruction) node() {}

// XmlDecl carries the <?xml ...?> declaration verbatim.
type XmlDecl struct {
	Base
	Data string
}

func (*XmlDecl) node() {}

// Doctype records the DOCTYPE keyword casing and body for reprint.
type Doctype struct {
	Base
	Keyword string // observed casing, e.g. "DOCTYPE" or "doctype"
	Body    string // everything between the keyword and the closing '>'
}

func (*Doctype) node() {}

// EmbeddedCodeKind classifies the parent construct of an EmbeddedCode node.
type EmbeddedCodeKind int

const (
	EmbedScript EmbeddedCodeKind = iota
	EmbedStyle
	EmbedCustomBlock
	EmbedJSONScript
	EmbedExpressionInterpolation
	EmbedFrontmatter // Astro "---" fenced frontmatter
)

// EmbeddedCode is a region whose contents are delegated to the external
// formatter callback rather than parsed as markup.
type EmbeddedCode struct {
	Base
	Kind        EmbeddedCodeKind
	LangHint    string // e.g. "ts", "scss", "json", "" if unspecified
	Raw         string
	ParentTag   string
	RequestedIndent int
}

func (*EmbeddedCode) node() {}

// TemplateNodeKind distinguishes the variants of TemplateNode.
type TemplateNodeKind int

const (
	TplInterpolation TemplateNodeKind = iota
	TplStatement
	TplComment
	TplBlock
	TplRaw
)

// TemplateNode represents a construct introduced by a template dialect's own
// delimiter family ({{ }}, {% %}, {# #}, {{# }}, ...). A Block's Children
// may mix ordinary markup nodes and further TemplateNodes, and may straddle
// element boundaries (spec.md §3, §9): the parser pairs start/end template
// tokens on its open-frame stack while it parses, so a Block's child list
// is not necessarily a proper subtree of one Element.
type TemplateNode struct {
	Base
	Kind         TemplateNodeKind
	StartKeyword string // "if", "for", "each", ... ("" for Interpolation/Comment/Raw)
	EndKeyword   string // matching end keyword observed, "" until paired
	Expr         string // raw expression/statement text, passed through verbatim
	Children     []Node // only meaningful for TplBlock
	Raw          string // only meaningful for TplRaw / TplComment
}

func (*TemplateNode) node() {}

// AngularControlFlowKind distinguishes @if/@else/@for/@switch/@defer.
type AngularControlFlowKind int

const (
	AngularIf AngularControlFlowKind = iota
	AngularElseIf
	AngularElse
	AngularFor
	AngularSwitch
	AngularCase
	AngularDefault
	AngularDefer
	AngularPlaceholder
	AngularLoading
	AngularError
)

// AngularControlFlow is a `@if`/`@else`/`@for`/`@switch`/`@defer` block.
type AngularControlFlow struct {
	Base
	Kind     AngularControlFlowKind
	Expr     string // the parenthesized clause, e.g. "user.isAdmin; as admin"
	Children []Node
	Next     *AngularControlFlow // linked @else/@else-if/@case chain
}

func (*AngularControlFlow) node() {}
