// Package doc implements the Wadler/Prettier-style doc-IR algebra and
// renderer described in spec.md §4.3 and §4.5: a tree of layout primitives
// (text, line-break candidates, nested groups, indentation, soft/hard
// breaks, alignment) rendered against a target print width using a
// best-fit algorithm.
package doc

// Doc is the interface implemented by every doc-IR node. Like ast.Node, it
// is a small closed tagged union: Kind identifies the concrete variant so
// the renderer can switch on it without a type assertion per node.
type Doc interface {
	Kind() Kind
}

// Kind enumerates the doc-IR primitives of spec.md §4.3.
type Kind int

const (
	KindText Kind = iota
	KindConcat
	KindLine
	KindSoftline
	KindHardline
	KindLiteralline
	KindIndent
	KindAlign
	KindGroup
	KindFill
	KindIfBreak
)

// Text is a literal string with a known display width, measured in
// grapheme columns (internal/doc/width.go).
type Text struct {
	S     string
	width int
	measured bool
}

func (*Text) Kind() Kind { return KindText }

// Concat is an ordered sequence of docs; its layout is the concatenation of
// its parts.
type Concat struct {
	Parts []Doc
}

func (*Concat) Kind() Kind { return KindConcat }

// Line renders as a newline if the enclosing group breaks, otherwise as a
// single space.
type Line struct{}

func (Line) Kind() Kind { return KindLine }

// Softline renders as a newline if the enclosing group breaks, otherwise as
// nothing.
type Softline struct{}

func (Softline) Kind() Kind { return KindSoftline }

// Hardline is an unconditional newline; it forces every enclosing group to
// break.
type Hardline struct{}

func (Hardline) Kind() Kind { return KindHardline }

// Literalline is a newline that does not participate in indentation, used
// for raw verbatim passages (pre/textarea/script/style bodies).
type Literalline struct{}

func (Literalline) Kind() Kind { return KindLiteralline }

// Indent increases the current indent level by one step for D.
type Indent struct {
	D Doc
}

func (*Indent) Kind() Kind { return KindIndent }

// Align indents D by N additional raw columns from the current ambient
// indent, used to line up wrapped content under a fixed column (e.g. a
// fill-wrapped attribute list under the first attribute) rather than by
// Indent's fixed one-step-per-nesting-level rule.
type Align struct {
	N int
	D Doc
}

func (*Align) Kind() Kind { return KindAlign }

// Group is an atomic layout unit: either it fits flat on the remaining
// line, or every soft break it (directly) encloses expands. Nested groups
// are decided independently, outermost first (spec.md §4.3).
type Group struct {
	D Doc

	// flatWidth caches the flat-rendering width computed once during
	// building rather than recomputed at render time (spec.md §9); measured
	// reports whether it has been computed yet. -1 serves as the "definitely
	// does not fit" value for groups containing a hardline or ShouldBreak.
	flatWidth int
	measured  bool

	// ShouldBreak forces the group to render broken regardless of fit,
	// used for elements whose source already spread attributes across
	// multiple lines (preferAttrsSingleLine == false, maxAttrsPerLine ==
	// nil case in spec.md §4.4).
	ShouldBreak bool
}

func (*Group) Kind() Kind { return KindGroup }

// Fill packs items greedily: each Line between items may break
// independently, minimizing height subject to width. Parts alternates
// content and separator (typically Line) docs, content first.
type Fill struct {
	Parts []Doc
}

func (*Fill) Kind() Kind { return KindFill }

// IfBreak renders as Broken when the enclosing group breaks, otherwise as
// Flat.
type IfBreak struct {
	Broken Doc
	Flat   Doc
}

func (*IfBreak) Kind() Kind { return KindIfBreak }

// --- constructors ---

func Str(s string) Doc { return &Text{S: s} }

func Concats(parts ...Doc) Doc {
	return &Concat{Parts: parts}
}

func Join(sep Doc, parts []Doc) Doc {
	if len(parts) == 0 {
		return Nil()
	}
	out := make([]Doc, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return &Concat{Parts: out}
}

func Nil() Doc { return &Concat{} }

var LineDoc Doc = Line{}
var SoftlineDoc Doc = Softline{}
var HardlineDoc Doc = Hardline{}
var LiterallineDoc Doc = Literalline{}

func Indented(d Doc) Doc { return &Indent{D: d} }

func Aligned(n int, d Doc) Doc { return &Align{N: n, D: d} }

func Grp(d Doc) Doc { return &Group{D: d, flatWidth: -1} }

// GrpBreak builds a group that always renders broken.
func GrpBreak(d Doc) Doc { return &Group{D: d, flatWidth: -1, ShouldBreak: true} }

func FillDoc(parts ...Doc) Doc { return &Fill{Parts: parts} }

func If(broken, flat Doc) Doc { return &IfBreak{Broken: broken, Flat: flat} }
