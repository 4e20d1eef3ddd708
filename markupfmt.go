// Package markupfmt formats HTML, XML, and the markup dialects layered on
// top of it (Vue single-file components, Svelte, Astro, Angular templates)
// plus the Jinja/Twig/Nunjucks/Vento/Mustache/Handlebars template
// languages, using a configurable Wadler/Prettier-style pretty-printer.
//
// Format is the package's only entry point; everything else (the parsed
// AST in package ast, the option set in package config, the internal
// scanner/parser/doc-IR/builder stages) exists to serve it, mirroring how
// go/format.Source sits on top of go/parser, go/ast, and go/printer.
package markupfmt

import (
	"github.com/dpotapov/markupfmt/ast"
	"github.com/dpotapov/markupfmt/config"
	"github.com/dpotapov/markupfmt/internal/build"
	idoc "github.com/dpotapov/markupfmt/internal/doc"
	"github.com/dpotapov/markupfmt/internal/parse"
)

// LanguageTag selects the dialect Format parses and prints src as.
type LanguageTag = ast.LanguageTag

const (
	Html       = ast.Html
	Xml        = ast.Xml
	Vue        = ast.Vue
	Svelte     = ast.Svelte
	Astro      = ast.Astro
	Angular    = ast.Angular
	Jinja      = ast.Jinja
	Twig       = ast.Twig
	Nunjucks   = ast.Nunjucks
	Vento      = ast.Vento
	Mustache   = ast.Mustache
	Handlebars = ast.Handlebars
)

// Options is the full set of formatting knobs spec.md §6 documents. Start
// from DefaultOptions and override individual fields.
type Options = config.Options

// DefaultOptions returns the documented default option set.
func DefaultOptions() Options { return config.DefaultOptions() }

// EmbedDescriptor is passed to an ExternalFormatFunc alongside the code it
// is asked to format.
type EmbedDescriptor = config.EmbedDescriptor

// ExternalFormatFunc formats the contents of an embedded script/style/
// custom-block/frontmatter region. A nil callback leaves such regions
// untouched apart from re-indentation.
type ExternalFormatFunc = config.ExternalFormatFunc

// SyntaxError is returned when src cannot be parsed as the given dialect.
type SyntaxError = ast.SyntaxError

// ExternalError aggregates every error an ExternalFormatFunc returned
// across a single Format call.
type ExternalError = ast.ExternalError

// FormatError is implemented by every error Format can return.
type FormatError = ast.FormatError

// Format parses src as lang and reprints it under opts, delegating any
// embedded script/style/custom-block/frontmatter regions to cb (which may
// be nil). It returns the formatted text, or a *SyntaxError if src could
// not be parsed, or an *ExternalError if cb failed for one or more regions
// (spec.md §7: both cases return no partial output).
func Format(src string, lang LanguageTag, opts Options, cb ExternalFormatFunc) (string, error) {
	doc, err := parse.Parse(src, lang, opts)
	if err != nil {
		return "", err
	}
	if doc.FileIgnored {
		return src, nil
	}

	ir, err := build.New(lang, opts, cb, src).Build(doc)
	if err != nil {
		return "", err
	}

	r := &idoc.Renderer{
		Width:      opts.PrintWidth,
		IndentUnit: opts.IndentUnit(),
		Terminator: opts.LineBreak.Terminator(),
	}
	return r.Render(ir), nil
}
