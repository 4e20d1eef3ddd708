// Package build turns an *ast.Document into the doc-IR tree
// (internal/doc.Doc) that internal/doc's Renderer lays out, implementing
// spec.md §4.4's element/attribute/text/comment rendering rules. It is the
// Printer/IR-builder stage between Parse and Render, kept in its own
// package for the same reason go/printer sits apart from go/parser: the
// AST and the pretty-printing policy evolve independently.
package build

import (
	"strings"

	"github.com/dpotapov/markupfmt/ast"
	"github.com/dpotapov/markupfmt/config"
	idoc "github.com/dpotapov/markupfmt/internal/doc"
)

// Builder holds the state shared across one document's build pass: the
// active dialect, the resolved options, and the external formatter
// callback for embedded code regions.
type Builder struct {
	lang ast.LanguageTag
	opts config.Options
	cb   config.ExternalFormatFunc
	src  string

	errs []error
}

// New returns a Builder for one Build call.
func New(lang ast.LanguageTag, opts config.Options, cb config.ExternalFormatFunc, src string) *Builder {
	return &Builder{lang: lang, opts: opts, cb: cb, src: src}
}

// Build converts doc into doc-IR. If any embedded-code callback invocation
// failed, it returns a non-nil *ast.ExternalError alongside the partial
// tree; the caller (markupfmt.Format) discards that tree and surfaces the
// error instead, per spec.md §7.
func (b *Builder) Build(document *ast.Document) (idoc.Doc, error) {
	body := b.buildChildren(document.Children, 0, b.opts.WhitespaceSensitivity)
	out := idoc.Concats(body, idoc.HardlineDoc)
	if len(b.errs) > 0 {
		return nil, &ast.ExternalError{Errors: b.errs}
	}
	return out, nil
}

// buildChildren lays out a sibling list as alternating block content
// separated by hardlines, collapsing runs of insignificant whitespace text
// nodes between block-level siblings (spec.md §4.4 "Children block").
func (b *Builder) buildChildren(children []ast.Node, depth int, ws config.WhitespaceSensitivity) idoc.Doc {
	var parts []idoc.Doc
	ignoreNext := false
	first := true
	for i, n := range children {
		if tc, ok := n.(*ast.TextChunk); ok && tc.Whitespace && ws != config.WhitespaceStrict {
			// A purely whitespace run between block content carries no
			// information beyond "these siblings are on separate lines",
			// which the hardline separator already encodes; drop it
			// unless whitespace is strictly significant.
			continue
		}
		if !first {
			parts = append(parts, idoc.HardlineDoc)
		}
		first = false
		if ignoreNext {
			parts = append(parts, b.verbatim(n.Loc()))
			ignoreNext = false
			continue
		}
		if c, ok := n.(*ast.Comment); ok && c.IgnoreSubtree {
			parts = append(parts, b.buildComment(c))
			ignoreNext = hasMoreSignificant(children[i+1:])
			if ignoreNext {
				b.opts.Log().Debug("reprinting ignored subtree verbatim")
			}
			continue
		}
		parts = append(parts, b.buildNode(n, depth, ws))
	}
	return idoc.Concats(parts...)
}

func hasMoreSignificant(rest []ast.Node) bool {
	for _, n := range rest {
		if tc, ok := n.(*ast.TextChunk); ok && tc.Whitespace {
			continue
		}
		return true
	}
	return false
}

// verbatim reprints the original source bytes of span unchanged, used for
// the subtree following a markup-fmt-ignore comment (spec.md §6).
func (b *Builder) verbatim(span ast.Span) idoc.Doc {
	return literalLines(span.Slice(b.src))
}

func (b *Builder) buildNode(n ast.Node, depth int, ws config.WhitespaceSensitivity) idoc.Doc {
	switch v := n.(type) {
	case *ast.Element:
		return b.buildElement(v, depth)
	case *ast.TextChunk:
		return b.buildText(v, ws)
	case *ast.Comment:
		return b.buildComment(v)
	case *ast.CDATA:
		return idoc.Concats(idoc.Str("<![CDATA["), idoc.Str(v.Data), idoc.Str("]]>"))
	case *ast.ProcessingInstruction:
		return idoc.Concats(idoc.Str("<?"+v.Target), idoc.Str(v.Data), idoc.Str("?>"))
	case *ast.XmlDecl:
		return idoc.Concats(idoc.Str("<?xml"), idoc.Str(v.Data), idoc.Str("?>"))
	case *ast.Doctype:
		return b.buildDoctype(v)
	case *ast.TemplateNode:
		return b.buildTemplateNode(v, depth, ws)
	case *ast.AngularControlFlow:
		return b.buildAngular(v, depth, ws)
	case *ast.EmbeddedCode:
		return b.buildEmbeddedCode(v, depth)
	default:
		return idoc.Nil()
	}
}

func (b *Builder) buildDoctype(d *ast.Doctype) idoc.Doc {
	kw := d.Keyword
	switch b.opts.DoctypeKeywordCase {
	case config.DoctypeUpper:
		kw = strings.ToUpper(kw)
	case config.DoctypeLower:
		kw = strings.ToLower(kw)
	}
	return idoc.Str("<!" + kw + d.Body + ">")
}

// buildComment reprints a comment's body raw by default. When
// formatComments is set, a single-line body gets its delimiters padded with
// a space and a multi-line body is re-indented under the current line
// (spec.md §4.4, §6 formatComments).
func (b *Builder) buildComment(c *ast.Comment) idoc.Doc {
	if !b.opts.FormatComments {
		return idoc.Str("<!--" + c.Data + "-->")
	}
	body := strings.TrimSpace(c.Data)
	if body == "" {
		return idoc.Str("<!---->")
	}
	if !strings.Contains(body, "\n") {
		return idoc.Str("<!-- " + body + " -->")
	}
	lines := strings.Split(body, "\n")
	parts := make([]idoc.Doc, 0, len(lines)*2-1)
	for i, l := range lines {
		if i > 0 {
			parts = append(parts, idoc.HardlineDoc)
		}
		parts = append(parts, idoc.Str(strings.TrimSpace(l)))
	}
	return idoc.Concats(
		idoc.Str("<!--"),
		idoc.Indented(idoc.Concats(idoc.HardlineDoc, idoc.Concats(parts...))),
		idoc.HardlineDoc,
		idoc.Str("-->"),
	)
}

// literalLines splits s on newlines and joins the pieces with Literalline,
// which the renderer emits without touching the ambient indent — used for
// content (raw textarea/title bodies, verbatim ignore passthrough) whose
// original line breaks must survive exactly as written.
func literalLines(s string) idoc.Doc {
	lines := strings.Split(s, "\n")
	parts := make([]idoc.Doc, 0, len(lines)*2-1)
	for i, l := range lines {
		if i > 0 {
			parts = append(parts, idoc.LiterallineDoc)
		}
		parts = append(parts, idoc.Str(l))
	}
	return idoc.Concats(parts...)
}
