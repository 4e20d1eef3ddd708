package parse

import (
	"github.com/dpotapov/markupfmt/ast"
	"github.com/dpotapov/markupfmt/config"
)

// Parse turns src into an *ast.Document for the given dialect, or returns
// the first *ast.SyntaxError encountered. It is the main entry point of
// this package (spec.md §4.1's Parser stage), mirroring the
// stdlib's go/parser.ParseFile in shape: one function, dialect and options
// as arguments, a tree or an error back.
func Parse(src string, lang ast.LanguageTag, opts config.Options) (*ast.Document, error) {
	p := New(src, lang, opts)
	doc, err := p.Document()
	if err != nil {
		return nil, err
	}
	if fileIgnored(doc, opts) {
		doc.FileIgnored = true
	}
	return doc, nil
}

// fileIgnored reports whether the document's first significant node is a
// comment matching IgnoreFileCommentDirective, in which case Format returns
// src verbatim (spec.md §6).
func fileIgnored(doc *ast.Document, opts config.Options) bool {
	for _, n := range doc.Children {
		switch v := n.(type) {
		case *ast.TextChunk:
			if v.Whitespace {
				continue
			}
			return false
		case *ast.Comment:
			return v.IgnoreFile
		default:
			return false
		}
	}
	return false
}
