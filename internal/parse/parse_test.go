package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/dpotapov/markupfmt/ast"
	"github.com/dpotapov/markupfmt/config"
)

// ignoreSpans drops every ast.Span value from the comparison: expected trees
// below are written without byte offsets, so only the parsed shape (names,
// attributes, nesting, text) is checked, the same way the teacher's
// chtml render/scope tests cmp.Diff against a value built by hand.
var ignoreSpans = cmpopts.IgnoreTypes(ast.Span{})

func mustParse(t *testing.T, src string, lang ast.LanguageTag) *ast.Document {
	t.Helper()
	doc, err := Parse(src, lang, config.DefaultOptions())
	require.NoError(t, err)
	return doc
}

func TestParse_UnquotedAttributeGetsCollected(t *testing.T) {
	doc := mustParse(t, `<div class=container></div>`, ast.Html)
	require.Len(t, doc.Children, 1)
	el := doc.Children[0].(*ast.Element)
	require.Equal(t, "div", el.Name)
	require.Len(t, el.Attrs, 1)
	require.Equal(t, "class", el.Attrs[0].Name)
	require.Equal(t, "container", el.Attrs[0].Value)
	require.Equal(t, ast.AttrUnquoted, el.Attrs[0].ValueKind)
	require.Equal(t, ast.ClosingPaired, el.Closing)
}

func TestParse_VoidElementNeedsNoEndTag(t *testing.T) {
	doc := mustParse(t, `<br>`, ast.Html)
	require.Len(t, doc.Children, 1)
	el := doc.Children[0].(*ast.Element)
	require.Equal(t, ast.ClosingVoidImplicit, el.Closing)
}

func TestParse_SelfClosingTagOutsideVoidSet(t *testing.T) {
	doc := mustParse(t, `<my-widget/>`, ast.Html)
	el := doc.Children[0].(*ast.Element)
	require.Equal(t, ast.ClosingSelfClosed, el.Closing)
	require.True(t, el.SelfClosingSpelled)
}

func TestParse_NestedElements(t *testing.T) {
	doc := mustParse(t, `<div><p>hi</p></div>`, ast.Html)
	div := doc.Children[0].(*ast.Element)
	require.Len(t, div.Children, 1)
	p := div.Children[0].(*ast.Element)
	require.Equal(t, "p", p.Name)
	require.Len(t, p.Children, 1)
	text := p.Children[0].(*ast.TextChunk)
	require.Equal(t, "hi", text.Data)
	require.False(t, text.Whitespace)
}

func TestParse_ImplicitlyClosedListItems(t *testing.T) {
	doc := mustParse(t, `<ul><li>a<li>b</ul>`, ast.Html)
	ul := doc.Children[0].(*ast.Element)
	require.Len(t, ul.Children, 2)
	li0 := ul.Children[0].(*ast.Element)
	require.Equal(t, ast.ClosingUnclosedPermitted, li0.Closing)
	li1 := ul.Children[1].(*ast.Element)
	require.Equal(t, ast.ClosingUnclosedPermitted, li1.Closing)
}

func TestParse_StructuralTreeMatchesExpected(t *testing.T) {
	doc := mustParse(t, `<div class="a"><p>hi</p></div>`, ast.Html)

	want := &ast.Document{Children: []ast.Node{
		&ast.Element{
			Name:    "div",
			Closing: ast.ClosingPaired,
			Attrs: []*ast.Attribute{
				{Name: "class", HasValue: true, Value: "a", ValueKind: ast.AttrQuoted, Quote: ast.QuoteDouble},
			},
			Children: []ast.Node{
				&ast.Element{
					Name:     "p",
					Closing:  ast.ClosingPaired,
					Children: []ast.Node{&ast.TextChunk{Data: "hi"}},
				},
			},
		},
	}}

	if diff := cmp.Diff(want, doc, ignoreSpans); diff != "" {
		t.Errorf("parsed tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_StructuralTreePreservesDuplicateAttrsAndVoidClosing(t *testing.T) {
	doc := mustParse(t, `<img src="a.png" src="b.png">`, ast.Html)

	want := &ast.Document{Children: []ast.Node{
		&ast.Element{
			Name:    "img",
			Closing: ast.ClosingVoidImplicit,
			Attrs: []*ast.Attribute{
				{Name: "src", HasValue: true, Value: "a.png", ValueKind: ast.AttrQuoted, Quote: ast.QuoteDouble},
				{Name: "src", HasValue: true, Value: "b.png", ValueKind: ast.AttrQuoted, Quote: ast.QuoteDouble},
			},
		},
	}}

	if diff := cmp.Diff(want, doc, ignoreSpans); diff != "" {
		t.Errorf("parsed tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_UnmatchedEndTagIsSyntaxError(t *testing.T) {
	_, err := Parse(`<div></span></div>`, ast.Html, config.DefaultOptions())
	require.Error(t, err)
	var syn *ast.SyntaxError
	require.ErrorAs(t, err, &syn)
	require.Equal(t, ast.UnmatchedEndTag, syn.Kind)
}

func TestParse_UnterminatedCommentIsSyntaxError(t *testing.T) {
	_, err := Parse(`<!-- oops`, ast.Html, config.DefaultOptions())
	require.Error(t, err)
	var syn *ast.SyntaxError
	require.ErrorAs(t, err, &syn)
	require.Equal(t, ast.UnterminatedComment, syn.Kind)
}

func TestParse_CommentMatchingIgnoreDirectiveTagsIgnoreSubtree(t *testing.T) {
	doc := mustParse(t, `<!-- markup-fmt-ignore -->`, ast.Html)
	c := doc.Children[0].(*ast.Comment)
	require.True(t, c.IgnoreSubtree)
	require.False(t, c.IgnoreFile)
}

func TestParse_FileIgnoreCommentSetsDocumentFlag(t *testing.T) {
	doc := mustParse(t, "<!-- markup-fmt-ignore-file -->\n<div></div>", ast.Html)
	require.True(t, doc.FileIgnored)
}

func TestParse_DoctypePreservesObservedKeywordCase(t *testing.T) {
	doc := mustParse(t, "<!doctype html>", ast.Html)
	dt := doc.Children[0].(*ast.Doctype)
	require.Equal(t, "doctype", dt.Keyword)
	require.Equal(t, " html", dt.Body)
}

func TestParse_RawTextScriptBodyBecomesEmbeddedCode(t *testing.T) {
	doc := mustParse(t, "<script>\nconst a = 1 < 2;\n</script>", ast.Html)
	el := doc.Children[0].(*ast.Element)
	require.True(t, el.RawText)
	require.Len(t, el.Children, 1)
	code := el.Children[0].(*ast.EmbeddedCode)
	require.Equal(t, ast.EmbedScript, code.Kind)
	require.Contains(t, code.Raw, "const a = 1 < 2;")
}

func TestParse_JSONScriptEmbedKind(t *testing.T) {
	doc := mustParse(t, `<script type="application/json">{"a":1}</script>`, ast.Html)
	el := doc.Children[0].(*ast.Element)
	code := el.Children[0].(*ast.EmbeddedCode)
	require.Equal(t, ast.EmbedJSONScript, code.Kind)
}

func TestParse_VueBindAttributeVariant(t *testing.T) {
	doc := mustParse(t, `<input :value="v" />`, ast.Vue)
	el := doc.Children[0].(*ast.Element)
	require.Equal(t, ast.AttrVueBind, el.Attrs[0].Variant)
}

func TestParse_AngularBracketAttrVariants(t *testing.T) {
	doc := mustParse(t, `<div [prop]="a" (click)="b" [(model)]="c"></div>`, ast.Angular)
	el := doc.Children[0].(*ast.Element)
	require.Equal(t, ast.AttrAngularProp, el.Attrs[0].Variant)
	require.Equal(t, ast.AttrAngularEvent, el.Attrs[1].Variant)
	require.Equal(t, ast.AttrAngularBanana, el.Attrs[2].Variant)
}

func TestParse_AngularIfElseChaining(t *testing.T) {
	doc := mustParse(t, "@if (c) {\n<div></div>\n}\n@else {\n<div></div>\n}", ast.Angular)
	require.Len(t, doc.Children, 1)
	ifBlock := doc.Children[0].(*ast.AngularControlFlow)
	require.Equal(t, ast.AngularIf, ifBlock.Kind)
	require.NotNil(t, ifBlock.Next)
	require.Equal(t, ast.AngularElse, ifBlock.Next.Kind)
	require.Nil(t, ifBlock.Next.Next)
}

func TestParse_UnclosedAngularBlockIsSyntaxError(t *testing.T) {
	_, err := Parse("@if (c) {\n<div></div>", ast.Angular, config.DefaultOptions())
	require.Error(t, err)
	var syn *ast.SyntaxError
	require.ErrorAs(t, err, &syn)
	require.Equal(t, ast.UnclosedBlock, syn.Kind)
}
