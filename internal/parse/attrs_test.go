package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpotapov/markupfmt/ast"
	"github.com/dpotapov/markupfmt/config"
)

func TestParse_SvelteShorthandAttr(t *testing.T) {
	doc := mustParse(t, `<div {value}></div>`, ast.Svelte)
	el := doc.Children[0].(*ast.Element)
	require.Len(t, el.Attrs, 1)
	a := el.Attrs[0]
	require.True(t, a.Shorthand)
	require.Equal(t, "value", a.Name)
	require.Equal(t, "value", a.Value)
	require.Equal(t, ast.AttrExpression, a.ValueKind)
}

func TestParse_SvelteExpressionAttrValue(t *testing.T) {
	doc := mustParse(t, `<div class={active ? "a" : "b"}></div>`, ast.Svelte)
	el := doc.Children[0].(*ast.Element)
	a := el.Attrs[0]
	require.Equal(t, `active ? "a" : "b"`, a.Value)
	require.Equal(t, ast.AttrExpression, a.ValueKind)
}

func TestParse_SvelteMixedAttrValueClassification(t *testing.T) {
	doc := mustParse(t, `<div class="a {b} c"></div>`, ast.Svelte)
	el := doc.Children[0].(*ast.Element)
	a := el.Attrs[0]
	require.Equal(t, ast.AttrMixed, a.ValueKind)
}

func TestParse_SveltePureBracedQuotedValueIsExpression(t *testing.T) {
	doc := mustParse(t, `<div class="{expr}"></div>`, ast.Svelte)
	el := doc.Children[0].(*ast.Element)
	a := el.Attrs[0]
	require.Equal(t, ast.AttrExpression, a.ValueKind)
}

func TestParse_SvelteDirectiveBindingVariant(t *testing.T) {
	doc := mustParse(t, `<div on:click={handler}></div>`, ast.Svelte)
	el := doc.Children[0].(*ast.Element)
	a := el.Attrs[0]
	require.Equal(t, ast.AttrSvelteBinding, a.Variant)
	require.Equal(t, "on", a.SveltePrefix)
}

func TestParse_AstroShorthandVariant(t *testing.T) {
	doc := mustParse(t, `<div {value}></div>`, ast.Astro)
	el := doc.Children[0].(*ast.Element)
	require.Equal(t, ast.AttrAstroShorthand, el.Attrs[0].Variant)
}

func TestScanBraced_HandlesNestedBracesAndStrings(t *testing.T) {
	p := New(`{ {a: "}"} }rest`, ast.Svelte, config.DefaultOptions())
	body, err := p.scanBraced()
	require.NoError(t, err)
	require.Equal(t, ` {a: "}"} `, body)
}

func TestIsVueCustomBlock(t *testing.T) {
	require.True(t, isVueCustomBlock(ast.Vue, "i18n"))
	require.True(t, isVueCustomBlock(ast.Vue, "docs"))
	require.False(t, isVueCustomBlock(ast.Vue, "template"))
	require.False(t, isVueCustomBlock(ast.Vue, "script"))
	require.False(t, isVueCustomBlock(ast.Vue, "style"))
	require.False(t, isVueCustomBlock(ast.Html, "i18n"))
}

func TestVueCustomBlockLangHint(t *testing.T) {
	require.Equal(t, "json", vueCustomBlockLangHint("i18n", ""))
	require.Equal(t, "md", vueCustomBlockLangHint("docs", ""))
	require.Equal(t, "yaml", vueCustomBlockLangHint("i18n", "yaml"))
	require.Equal(t, "", vueCustomBlockLangHint("unknown", ""))
}
