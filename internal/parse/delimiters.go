package parse

import "github.com/dpotapov/markupfmt/ast"

// delimiters names the opening/closing marker pairs a template dialect's
// tokenizer must recognize inside text and attribute values (spec.md §4.1).
type delimiters struct {
	interpStart, interpEnd string // {{ }}
	stmtStart, stmtEnd     string // {% %} (Vento/Handlebars reuse mustache-family delimiters, see below)
	commentStart, commentEnd string
}

// dialectDelimiters returns the delimiter family for a template dialect.
// Non-template dialects (Html, Xml, Vue, Svelte, Astro, Angular) have their
// own attribute/expression syntax handled separately (attrs.go, angular.go)
// and return the zero value (no {{ }}-style scanning).
func dialectDelimiters(l ast.LanguageTag) delimiters {
	switch l {
	case ast.Jinja, ast.Nunjucks:
		return delimiters{"{{", "}}", "{%", "%}", "{#", "#}"}
	case ast.Twig:
		return delimiters{"{{", "}}", "{%", "%}", "{#", "#}"}
	case ast.Vento:
		// Vento uses {{ }} for both statements and interpolation; the
		// leading keyword inside disambiguates (spec.md §3: "Statement
		// ({{ ... }} for Vento)").
		return delimiters{"{{", "}}", "{{", "}}", "{{#", "}}"}
	case ast.Mustache:
		return delimiters{"{{", "}}", "{{", "}}", "{{!", "}}"}
	case ast.Handlebars:
		return delimiters{"{{", "}}", "{{", "}}", "{{!--", "--}}"}
	default:
		return delimiters{}
	}
}

// blockKeyword names a statement keyword that opens a Block and the
// end-keyword(s) that close it; blockKeywords lists them per dialect.
// Jinja/Twig/Nunjucks use "end"+name; Vento and Handlebars use "/"+name.
type blockKeyword struct {
	start string
	ends  []string // any of these keywords closes the block
	// midKeywords continue the same block without closing it
	// (elif/else/elseif...); they are kept as statements among the
	// block's children.
	midKeywords []string
}

func blockKeywords(l ast.LanguageTag) []blockKeyword {
	switch l {
	case ast.Jinja, ast.Nunjucks:
		return []blockKeyword{
			{"if", []string{"endif"}, []string{"elif", "else"}},
			{"for", []string{"endfor"}, []string{"else"}},
			{"block", []string{"endblock"}, nil},
			{"macro", []string{"endmacro"}, nil},
			{"filter", []string{"endfilter"}, nil},
			{"set", []string{"endset"}, nil},
			{"with", []string{"endwith"}, nil},
			{"call", []string{"endcall"}, nil},
			{"autoescape", []string{"endautoescape"}, nil},
			{"raw", []string{"endraw"}, nil},
			{"verbatim", []string{"endverbatim"}, nil},
		}
	case ast.Twig:
		return []blockKeyword{
			{"if", []string{"endif"}, []string{"elseif", "else"}},
			{"for", []string{"endfor"}, []string{"else"}},
			{"block", []string{"endblock"}, nil},
			{"macro", []string{"endmacro"}, nil},
			{"filter", []string{"endfilter"}, nil},
			{"set", []string{"endset"}, nil},
			{"with", []string{"endwith"}, nil},
			{"embed", []string{"endembed"}, nil},
			{"apply", []string{"endapply"}, nil},
			{"verbatim", []string{"endverbatim"}, nil},
			{"spaceless", []string{"endspaceless"}, nil},
		}
	case ast.Vento:
		return []blockKeyword{
			{"if", []string{"/if"}, []string{"else"}},
			{"for", []string{"/for"}, nil},
			{"function", []string{"/function"}, nil},
			{"export", []string{"/export"}, nil},
			{"layout", []string{"/layout"}, nil},
			{"set", []string{"/set"}, nil},
		}
	case ast.Handlebars:
		return []blockKeyword{
			{"#if", []string{"/if"}, []string{"else"}},
			{"#unless", []string{"/unless"}, []string{"else"}},
			{"#each", []string{"/each"}, []string{"else"}},
			{"#with", []string{"/with"}, nil},
		}
	default:
		return nil
	}
}
