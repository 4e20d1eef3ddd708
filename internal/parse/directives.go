package parse

import "github.com/dpotapov/markupfmt/ast"

// vueKnownCustomBlockDefaults maps a Vue SFC custom block tag name to the
// language its contents are conventionally written in, when the block
// carries no explicit `lang` attribute (SPEC_FULL.md §4, supplemented from
// the original implementation's block-default table: i18n and docs blocks
// are common enough in the wild to special-case rather than fall back to
// plain-text passthrough).
var vueKnownCustomBlockDefaults = map[string]string{
	"i18n": "json",
	"docs": "md",
}

// isVueCustomBlock reports whether name is a Vue SFC top-level block other
// than the three standard ones (template/script/style), which markupfmt
// treats as an EmbeddedCode region delegated to the external formatter
// callback (spec.md §4.2 "Vue-specific").
func isVueCustomBlock(lang ast.LanguageTag, name string) bool {
	if lang != ast.Vue {
		return false
	}
	switch name {
	case "template", "script", "style":
		return false
	default:
		return true
	}
}

func vueCustomBlockLangHint(name, explicitLang string) string {
	if explicitLang != "" {
		return explicitLang
	}
	return vueKnownCustomBlockDefaults[name]
}
