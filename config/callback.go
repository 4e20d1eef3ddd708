package config

// EmbedDescriptor is passed to the external-formatter callback alongside a
// code slice; it tells the callback what kind of content it is formatting
// and where it will be re-embedded.
type EmbedDescriptor struct {
	// LangHint is the language of the embedded code, derived from the
	// element's `lang`/`type` attribute (e.g. "ts", "scss", "json"). Empty
	// when the source did not specify one.
	LangHint string

	// ParentTagKind names the construct the code lives in: "script",
	// "style", "json-script", "frontmatter", or, for vue.customBlock
	// content, the custom block's own tag name.
	ParentTagKind string

	// Indent is the current indentation depth in columns; the callback may
	// use it to produce code that is already correctly indented, though
	// markupfmt re-indents the returned text regardless.
	Indent int
}

// ExternalFormatFunc formats the contents of a script/style/JSON/custom
// block. It is invoked once per embedded region in document order (spec.md
// §9, "Callback-invocation ordering is document order"). Returning a
// non-nil error causes that region's original, unformatted slice to be
// substituted in the output and the error to be collected into the
// aggregate *ExternalError (spec.md §7); it does not abort formatting of
// the rest of the document.
type ExternalFormatFunc func(code string, desc EmbedDescriptor) (string, error)
