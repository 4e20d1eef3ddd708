package ast

// LanguageTag selects both the parsing rules and the doc-IR build rules for
// a source document. It is supplied by the caller of Format; markupfmt does
// not attempt to sniff a language from content or file extension (that
// belongs to the host embedding, per spec.md's Non-goals).
type LanguageTag int

const (
	Html LanguageTag = iota
	Xml
	Vue
	Svelte
	Astro
	Angular
	Jinja
	Twig
	Nunjucks
	Vento
	Mustache
	Handlebars
)

func (l LanguageTag) String() string {
	switch l {
	case Html:
		return "html"
	case Xml:
		return "xml"
	case Vue:
		return "vue"
	case Svelte:
		return "svelte"
	case Astro:
		return "astro"
	case Angular:
		return "angular"
	case Jinja:
		return "jinja"
	case Twig:
		return "twig"
	case Nunjucks:
		return "nunjucks"
	case Vento:
		return "vento"
	case Mustache:
		return "mustache"
	case Handlebars:
		return "handlebars"
	default:
		return "unknown"
	}
}

// IsComponentDialect reports whether the dialect has first-class component
// tags (capitalized or dash-containing tag names that are not plain HTML
// elements). This drives vueComponentCase rewriting and the
// component.selfClosing/component.whitespaceSensitivity option families.
func (l LanguageTag) IsComponentDialect() bool {
	switch l {
	case Vue, Svelte, Astro, Angular:
		return true
	default:
		return false
	}
}

// IsTemplateDialect reports whether the dialect embeds expression/statement
// blocks into markup using its own delimiter family, distinct from the
// component-attribute dialects (Vue/Svelte/Astro/Angular).
func (l LanguageTag) IsTemplateDialect() bool {
	switch l {
	case Jinja, Twig, Nunjucks, Vento, Mustache, Handlebars:
		return true
	default:
		return false
	}
}

// HostMarkup reports the underlying markup grammar a dialect layers on top
// of: Xml for the Xml tag itself, Html for everything else (all template
// and component dialects parse the HTML superset per spec.md §4.2).
func (l LanguageTag) HostMarkup() LanguageTag {
	if l == Xml {
		return Xml
	}
	return Html
}
