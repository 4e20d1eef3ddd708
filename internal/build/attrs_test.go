package build

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpotapov/markupfmt/ast"
	"github.com/dpotapov/markupfmt/config"
	idoc "github.com/dpotapov/markupfmt/internal/doc"
)

func TestChooseQuote_SwitchesOnlyWhenPreferredClashesAndOtherDoesNot(t *testing.T) {
	require.Equal(t, byte('"'), chooseQuote("plain", '"'))
	require.Equal(t, byte('\''), chooseQuote(`has "double"`, '"'))
	require.Equal(t, byte('"'), chooseQuote(`has "double" and 'single'`, '"'))
	require.Equal(t, byte('"'), chooseQuote("has 'single'", '"'))
}

func TestApplyDirectiveStyle_ShortAndLong(t *testing.T) {
	require.Equal(t, ":foo", applyDirectiveStyle("v-bind:foo", "v-bind:", ":", config.StyleShort))
	require.Equal(t, "v-bind:foo", applyDirectiveStyle(":foo", "v-bind:", ":", config.StyleLong))
	require.Equal(t, ":foo", applyDirectiveStyle(":foo", "v-bind:", ":", config.StyleShort))
	require.Equal(t, ":foo", applyDirectiveStyle(":foo", "v-bind:", ":", config.StylePreserve))
}

func TestApplyVSlotStyle(t *testing.T) {
	require.Equal(t, "#default", applyVSlotStyle("v-slot:default", config.VSlotShort))
	require.Equal(t, "v-slot:default", applyVSlotStyle("#default", config.VSlotLong))
	require.Equal(t, "v-slot:default", applyVSlotStyle("v-slot:default", config.VSlotPreserve))
}

func TestVueBoundPropName(t *testing.T) {
	require.Equal(t, "foo", vueBoundPropName(":foo"))
	require.Equal(t, "foo", vueBoundPropName("v-bind:foo"))
	require.Equal(t, "foo", vueBoundPropName("foo"))
}

func TestIsBareIdentifierExpr(t *testing.T) {
	require.True(t, isBareIdentifierExpr("value", "value"))
	require.False(t, isBareIdentifierExpr("value", "other"))
	require.False(t, isBareIdentifierExpr("value + 1", "value"))
	require.False(t, isBareIdentifierExpr("obj.value", "value"))
	require.False(t, isBareIdentifierExpr("(", "value"))
}

func TestTruthy(t *testing.T) {
	require.False(t, truthy(nil))
	require.False(t, truthy(config.TriFalse()))
	require.True(t, truthy(config.TriTrue()))
}

func TestFindVForKeyword(t *testing.T) {
	idx, kw := findVForKeyword("item in list")
	require.Equal(t, 5, idx)
	require.Equal(t, "in", kw)

	idx, kw = findVForKeyword("(item, index) in list")
	require.Equal(t, 14, idx)
	require.Equal(t, "in", kw)

	idx, kw = findVForKeyword("item of items")
	require.Equal(t, 5, idx)
	require.Equal(t, "of", kw)

	idx, _ = findVForKeyword("items")
	require.Equal(t, -1, idx)
}

func TestRewriteVForDelimiter(t *testing.T) {
	require.Equal(t, "item in list", rewriteVForDelimiter("item in list", config.VForPreserve))
	require.Equal(t, "item of list", rewriteVForDelimiter("item in list", config.VForOf))
	require.Equal(t, "item in list", rewriteVForDelimiter("item of list", config.VForIn))
	require.Equal(t, "item in list", rewriteVForDelimiter("item in list", config.VForIn))
	require.Equal(t, "(item, i) of list", rewriteVForDelimiter("(item, i) in list", config.VForOf))
}

func TestBuildAttr_SvelteExpressionShorthand(t *testing.T) {
	b := &Builder{lang: ast.Svelte}
	shorthand := &ast.Attribute{Name: "active", HasValue: true, Value: "active", ValueKind: ast.AttrExpression, Shorthand: true}

	require.Equal(t, "{active}", render(t, b.buildAttr(shorthand)))

	on := &Builder{lang: ast.Svelte, opts: config.Options{Svelte: config.SvelteOptions{AttrShorthand: config.TriFalse()}}}
	require.Equal(t, "active={active}", render(t, on.buildAttr(shorthand)))

	full := &ast.Attribute{Name: "active", HasValue: true, Value: "active", ValueKind: ast.AttrExpression, Shorthand: false}
	forceOn := &Builder{lang: ast.Svelte, opts: config.Options{Svelte: config.SvelteOptions{AttrShorthand: config.TriTrue()}}}
	require.Equal(t, "{active}", render(t, forceOn.buildAttr(full)))
}

func TestBuildAttr_AstroExpressionShorthand(t *testing.T) {
	b := &Builder{lang: ast.Astro, opts: config.Options{Astro: config.AstroOptions{AttrShorthand: config.TriFalse()}}}
	shorthand := &ast.Attribute{Name: "id", HasValue: true, Value: "id", ValueKind: ast.AttrExpression, Shorthand: true}
	require.Equal(t, "id={id}", render(t, b.buildAttr(shorthand)))
}

func TestBuildAttr_StrictSvelteAttrQuotesExpression(t *testing.T) {
	b := &Builder{lang: ast.Svelte, opts: config.Options{Svelte: config.SvelteOptions{StrictAttr: true}}}
	full := &ast.Attribute{Name: "class", HasValue: true, Value: "cls", ValueKind: ast.AttrExpression, Shorthand: false}
	require.Equal(t, `class="{cls}"`, render(t, b.buildAttr(full)))
}

func TestBuildAttr_SvelteDirectiveShorthand(t *testing.T) {
	collapsed := &ast.Attribute{Name: "bind:value", Variant: ast.AttrSvelteBinding, SveltePrefix: "bind", HasValue: false}
	expand := &Builder{lang: ast.Svelte, opts: config.Options{Svelte: config.SvelteOptions{DirectiveShorthand: config.TriFalse()}}}
	require.Equal(t, "bind:value={value}", render(t, expand.buildAttr(collapsed)))

	full := &ast.Attribute{Name: "bind:value", Variant: ast.AttrSvelteBinding, SveltePrefix: "bind", HasValue: true, Value: "value"}
	collapse := &Builder{lang: ast.Svelte, opts: config.Options{Svelte: config.SvelteOptions{DirectiveShorthand: config.TriTrue()}}}
	require.Equal(t, "bind:value", render(t, collapse.buildAttr(full)))
}

func TestRewriteVSlotName_DefaultAndNamedOverrides(t *testing.T) {
	b := &Builder{lang: ast.Vue, opts: config.Options{Vue: config.VueOptions{
		SlotStyle:        config.VSlotLong,
		DefaultSlotStyle: config.VSlotShort,
	}}}
	require.Equal(t, "#default", b.rewriteVSlotName("v-slot"))
	require.Equal(t, "v-slot:foo", b.rewriteVSlotName("#foo"))
}

func TestRewriteVSlotName_KeywordForm(t *testing.T) {
	b := &Builder{lang: ast.Vue, opts: config.Options{Vue: config.VueOptions{DefaultSlotStyle: config.VSlotKeyword}}}
	require.Equal(t, "v-slot", b.rewriteVSlotName("#default"))
}

func TestRewriteVSlotName_ComponentOverridesBoth(t *testing.T) {
	b := &Builder{lang: ast.Vue, opts: config.Options{
		Vue:       config.VueOptions{SlotStyle: config.VSlotShort},
		Component: config.ComponentOptions{VSlotStyle: config.VSlotLong},
	}}
	require.Equal(t, "v-slot:default", b.rewriteVSlotName("#default"))
}

// TestBuildAttrs_FillWrapAlignsUnderFirstAttrColumn covers maxAttrsPerLine's
// fill layout: once none of the wrapped attributes fit their neighbor,
// every continuation line lines up under the first attribute's own column
// (len("<div ") == 5), not one flat indent step in from the tag.
func TestBuildAttrs_FillWrapAlignsUnderFirstAttrColumn(t *testing.T) {
	one := 1
	b := &Builder{opts: config.Options{MaxAttrsPerLine: &one}}
	attrs := []*ast.Attribute{
		{Name: "a", HasValue: true, Value: "11111"},
		{Name: "b", HasValue: true, Value: "22222"},
		{Name: "c", HasValue: true, Value: "33333"},
	}

	r := &idoc.Renderer{Width: 20, IndentUnit: "  ", Terminator: "\n"}
	got := r.Render(idoc.Concats(idoc.Str("<div"), b.buildAttrs("div", attrs)))
	require.Equal(t, "<div\n     a=\"11111\"\n     b=\"22222\"\n     c=\"33333\"", got)
}
