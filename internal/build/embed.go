package build

import (
	"strings"

	"github.com/dpotapov/markupfmt/ast"
	"github.com/dpotapov/markupfmt/config"
	idoc "github.com/dpotapov/markupfmt/internal/doc"
)

// buildEmbeddedCode runs the external formatter callback (if any) over a
// script/style/custom-block/frontmatter region and lays out the result
// re-indented to the current depth (spec.md §4.4, §7, §9 "callback
// invocation ordering is document order").
func (b *Builder) buildEmbeddedCode(n *ast.EmbeddedCode, depth int) idoc.Doc {
	raw := strings.Trim(n.Raw, "\n")
	if raw == "" {
		return idoc.Nil()
	}

	if n.Kind == ast.EmbedCustomBlock {
		switch b.opts.Vue.CustomBlock {
		case config.CustomBlockNone:
			return idoc.Concats(idoc.HardlineDoc, literalLines(raw), idoc.HardlineDoc)
		case config.CustomBlockSquash:
			text := b.buildText(&ast.TextChunk{Data: raw}, config.WhitespaceCSS)
			return idoc.Concats(idoc.HardlineDoc, text, idoc.HardlineDoc)
		default: // "lang-attribute" (also the zero value)
			if n.LangHint == "" {
				return idoc.Concats(idoc.HardlineDoc, literalLines(raw), idoc.HardlineDoc)
			}
		}
	}

	formatted := raw
	if b.cb != nil {
		desc := config.EmbedDescriptor{
			LangHint:      n.LangHint,
			ParentTagKind: parentTagKind(n),
			Indent:        depth * len(b.opts.IndentUnit()),
		}
		b.opts.Log().Debug("invoking external formatter callback",
			"parentTagKind", desc.ParentTagKind, "langHint", desc.LangHint)
		out, err := b.cb(raw, desc)
		if err != nil {
			b.opts.Log().Warn("external formatter callback failed",
				"parentTagKind", desc.ParentTagKind, "error", err)
			b.errs = append(b.errs, err)
			formatted = raw
		} else {
			formatted = out
		}
	}
	lines := dedentLines(strings.Trim(formatted, "\n"))
	parts := make([]idoc.Doc, 0, len(lines)*2-1)
	for i, l := range lines {
		if i > 0 {
			parts = append(parts, idoc.HardlineDoc)
		}
		parts = append(parts, idoc.Str(l))
	}
	body := idoc.Doc(idoc.Concats(parts...))
	if b.extraIndent(n) {
		return idoc.Concats(idoc.Indented(idoc.Concats(idoc.HardlineDoc, body)), idoc.HardlineDoc)
	}
	return idoc.Concats(idoc.HardlineDoc, body, idoc.HardlineDoc)
}

// extraIndent resolves the scriptIndent/styleIndent switch for n's kind,
// falling back from the dialect-specific override to the top-level default
// (spec.md §6 "scriptIndent, styleIndent" / "*.{script,style}Indent"). The
// baseline (false) keeps the body flush with the tag's own indent; true adds
// one further step.
func (b *Builder) extraIndent(n *ast.EmbeddedCode) bool {
	var dialect config.ScriptStyleIndentOptions
	switch b.lang {
	case ast.Vue:
		dialect = b.opts.Vue.ScriptStyleIndent
	case ast.Svelte:
		dialect = b.opts.Svelte.ScriptStyleIndent
	case ast.Astro:
		dialect = b.opts.Astro.ScriptStyleIndent
	default:
		dialect = b.opts.HTML
	}
	switch n.Kind {
	case ast.EmbedStyle:
		if dialect.Style != nil {
			return *dialect.Style
		}
		return b.opts.StyleIndent
	default:
		if dialect.Script != nil {
			return *dialect.Script
		}
		return b.opts.ScriptIndent
	}
}

func parentTagKind(n *ast.EmbeddedCode) string {
	switch n.Kind {
	case ast.EmbedScript:
		return "script"
	case ast.EmbedStyle:
		return "style"
	case ast.EmbedJSONScript:
		return "json-script"
	case ast.EmbedFrontmatter:
		return "frontmatter"
	case ast.EmbedCustomBlock:
		return n.ParentTag
	default:
		return n.ParentTag
	}
}

// dedentLines strips the longest common leading whitespace run shared by
// every non-blank line, so re-indenting under the current element only
// adds one baseline rather than compounding whatever indent the callback's
// output already carried.
func dedentLines(s string) []string {
	lines := strings.Split(s, "\n")
	min := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if min == -1 || n < min {
			min = n
		}
	}
	if min <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if len(l) >= min {
			out[i] = l[min:]
		} else {
			out[i] = strings.TrimLeft(l, " \t")
		}
	}
	return out
}
