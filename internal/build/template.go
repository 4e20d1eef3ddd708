package build

import (
	"github.com/dpotapov/markupfmt/ast"
	"github.com/dpotapov/markupfmt/config"
	idoc "github.com/dpotapov/markupfmt/internal/doc"
)

// templateDelims mirrors internal/parse's dialectDelimiters table; kept as
// a small local copy rather than exported from internal/parse so build
// does not need to depend on parse's internal statement-keyword tables to
// get six strings back (spec.md §4.1).
func templateDelims(l ast.LanguageTag) (interpStart, interpEnd, stmtStart, stmtEnd, commentStart, commentEnd string) {
	switch l {
	case ast.Jinja, ast.Nunjucks, ast.Twig:
		return "{{", "}}", "{%", "%}", "{#", "#}"
	case ast.Vento:
		return "{{", "}}", "{{", "}}", "{{#", "}}"
	case ast.Mustache:
		return "{{", "}}", "{{", "}}", "{{!", "}}"
	case ast.Handlebars:
		return "{{", "}}", "{{", "}}", "{{!--", "--}}"
	default:
		return "", "", "", "", "", ""
	}
}

func (b *Builder) buildTemplateNode(n *ast.TemplateNode, depth int, ws config.WhitespaceSensitivity) idoc.Doc {
	interpStart, interpEnd, stmtStart, stmtEnd, commentStart, commentEnd := templateDelims(b.lang)
	switch n.Kind {
	case ast.TplInterpolation:
		return idoc.Str(interpStart + " " + n.Expr + " " + interpEnd)
	case ast.TplComment:
		return idoc.Str(commentStart + n.Raw + commentEnd)
	case ast.TplStatement:
		return idoc.Str(stmtStart + " " + statementText(n) + " " + stmtEnd)
	case ast.TplBlock:
		if b.lang == ast.Mustache {
			return b.buildMustacheBlock(n, depth, ws)
		}
		open := idoc.Str(stmtStart + " " + statementText(n) + " " + stmtEnd)
		if len(n.Children) == 0 {
			return idoc.Concats(open, idoc.Str(stmtStart+" "+n.EndKeyword+" "+stmtEnd))
		}
		children := b.buildChildren(n.Children, depth+1, ws)
		close := idoc.Str(stmtStart + " " + n.EndKeyword + " " + stmtEnd)
		return idoc.Concats(open, idoc.Indented(idoc.Concats(idoc.HardlineDoc, children)), idoc.HardlineDoc, close)
	default:
		return idoc.Str(n.Raw)
	}
}

// buildMustacheBlock renders a `{{#name}}...{{/name}}`-family section
// (StartKeyword holds the "#"/"^"/"$"/"<" sigil, Expr the section name).
// Unlike the keyword-table dialects, the sigil sits flush against the
// section name with no separating space (spec.md §3, original mustache
// grammar).
func (b *Builder) buildMustacheBlock(n *ast.TemplateNode, depth int, ws config.WhitespaceSensitivity) idoc.Doc {
	open := idoc.Str("{{" + n.StartKeyword + n.Expr + "}}")
	close := idoc.Str("{{/" + n.Expr + "}}")
	if len(n.Children) == 0 {
		return idoc.Concats(open, close)
	}
	children := b.buildChildren(n.Children, depth+1, ws)
	return idoc.Concats(open, idoc.Indented(idoc.Concats(idoc.HardlineDoc, children)), idoc.HardlineDoc, close)
}

func statementText(n *ast.TemplateNode) string {
	if n.Expr == "" {
		return n.StartKeyword
	}
	return n.StartKeyword + " " + n.Expr
}

// buildAngular renders an @if/@else/@for/@switch/@case/@defer chain,
// honoring angular.nextControlFlowSameLine for the join between a block's
// closing '}' and the next @else/@case in the chain (spec.md §6).
func (b *Builder) buildAngular(n *ast.AngularControlFlow, depth int, ws config.WhitespaceSensitivity) idoc.Doc {
	var parts []idoc.Doc
	for cur := n; cur != nil; cur = cur.Next {
		if len(parts) > 0 {
			if b.opts.Angular.NextControlFlowSameLine {
				parts = append(parts, idoc.Str(" "))
			} else {
				parts = append(parts, idoc.HardlineDoc)
			}
		}
		parts = append(parts, b.buildOneAngular(cur, depth, ws))
	}
	return idoc.Concats(parts...)
}

func (b *Builder) buildOneAngular(n *ast.AngularControlFlow, depth int, ws config.WhitespaceSensitivity) idoc.Doc {
	head := angularKeywordString(n.Kind)
	if n.Expr != "" {
		head += " (" + n.Expr + ")"
	}
	open := idoc.Str(head + " {")
	closeBrace := idoc.Str("}")
	if len(n.Children) == 0 {
		return idoc.Concats(open, closeBrace)
	}
	children := b.buildChildren(n.Children, depth+1, ws)
	return idoc.Concats(open, idoc.Indented(idoc.Concats(idoc.HardlineDoc, children)), idoc.HardlineDoc, closeBrace)
}

func angularKeywordString(k ast.AngularControlFlowKind) string {
	switch k {
	case ast.AngularIf:
		return "@if"
	case ast.AngularElseIf:
		return "@else if"
	case ast.AngularElse:
		return "@else"
	case ast.AngularFor:
		return "@for"
	case ast.AngularSwitch:
		return "@switch"
	case ast.AngularCase:
		return "@case"
	case ast.AngularDefault:
		return "@default"
	case ast.AngularDefer:
		return "@defer"
	case ast.AngularPlaceholder:
		return "@placeholder"
	case ast.AngularLoading:
		return "@loading"
	case ast.AngularError:
		return "@error"
	default:
		return "@if"
	}
}
