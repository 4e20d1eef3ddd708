package parse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dpotapov/markupfmt/ast"
	"github.com/dpotapov/markupfmt/config"
)

func TestParse_JinjaInterpolation(t *testing.T) {
	doc := mustParse(t, `{{ user.name }}`, ast.Jinja)
	require.Len(t, doc.Children, 1)
	n := doc.Children[0].(*ast.TemplateNode)
	require.Equal(t, ast.TplInterpolation, n.Kind)
	require.Equal(t, "user.name", n.Expr)
}

func TestParse_JinjaComment(t *testing.T) {
	doc := mustParse(t, `{# a note #}`, ast.Jinja)
	n := doc.Children[0].(*ast.TemplateNode)
	require.Equal(t, ast.TplComment, n.Kind)
	require.Equal(t, " a note ", n.Raw)
}

func TestParse_JinjaIfElseBlockChain(t *testing.T) {
	doc := mustParse(t, "{% if a %}x{% else %}y{% endif %}", ast.Jinja)
	require.Len(t, doc.Children, 1)
	block := doc.Children[0].(*ast.TemplateNode)
	require.Equal(t, ast.TplBlock, block.Kind)
	require.Equal(t, "if", block.StartKeyword)
	require.Equal(t, "a", block.Expr)
	require.Equal(t, "endif", block.EndKeyword)
	// x, else-statement, y
	require.Len(t, block.Children, 3)
	text0 := block.Children[0].(*ast.TextChunk)
	require.Equal(t, "x", text0.Data)
	elseStmt := block.Children[1].(*ast.TemplateNode)
	require.Equal(t, ast.TplStatement, elseStmt.Kind)
	require.Equal(t, "else", elseStmt.StartKeyword)
	text1 := block.Children[2].(*ast.TextChunk)
	require.Equal(t, "y", text1.Data)
}

func TestParse_JinjaUnclosedBlockIsSyntaxError(t *testing.T) {
	_, err := Parse("{% if a %}x", ast.Jinja, testOpts())
	require.Error(t, err)
	var syn *ast.SyntaxError
	require.ErrorAs(t, err, &syn)
	require.Equal(t, ast.UnclosedBlock, syn.Kind)
}

func TestParse_TwigElseifKeyword(t *testing.T) {
	doc := mustParse(t, "{% if a %}x{% elseif b %}y{% endif %}", ast.Twig)
	block := doc.Children[0].(*ast.TemplateNode)
	mid := block.Children[1].(*ast.TemplateNode)
	require.Equal(t, "elseif", mid.StartKeyword)
	require.Equal(t, "b", mid.Expr)
}

func TestParse_VentoDisambiguatesStatementFromInterpolation(t *testing.T) {
	doc := mustParse(t, "{{ if a }}x{{ /if }}", ast.Vento)
	require.Len(t, doc.Children, 1)
	block := doc.Children[0].(*ast.TemplateNode)
	require.Equal(t, ast.TplBlock, block.Kind)
	require.Equal(t, "if", block.StartKeyword)
	require.Equal(t, "/if", block.EndKeyword)

	doc2 := mustParse(t, "{{ user.name }}", ast.Vento)
	n := doc2.Children[0].(*ast.TemplateNode)
	require.Equal(t, ast.TplInterpolation, n.Kind)
}

func TestParse_HandlebarsEachBlock(t *testing.T) {
	doc := mustParse(t, "{{#each items}}x{{/each}}", ast.Handlebars)
	block := doc.Children[0].(*ast.TemplateNode)
	require.Equal(t, ast.TplBlock, block.Kind)
	require.Equal(t, "#each", block.StartKeyword)
	require.Equal(t, "items", block.Expr)
	require.Equal(t, "/each", block.EndKeyword)
}

func TestParse_MustachePartialIsPlainInterpolation(t *testing.T) {
	// ">" (a partial reference) is not one of Mustache's section sigils
	// (#^$<), so it parses as a bare interpolation node rather than opening
	// a section.
	doc := mustParse(t, "{{> partial}}", ast.Mustache)
	n := doc.Children[0].(*ast.TemplateNode)
	require.Equal(t, ast.TplInterpolation, n.Kind)
	require.Equal(t, "> partial", n.Expr)
}

func TestParse_MustacheComment(t *testing.T) {
	doc := mustParse(t, "{{! a note }}", ast.Mustache)
	n := doc.Children[0].(*ast.TemplateNode)
	require.Equal(t, ast.TplComment, n.Kind)
}

func TestParse_MustacheSectionPairsIntoBlock(t *testing.T) {
	doc := mustParse(t, "{{#items}}<li>{{name}}</li>{{/items}}", ast.Mustache)
	require.Len(t, doc.Children, 1)
	block := doc.Children[0].(*ast.TemplateNode)
	require.Equal(t, ast.TplBlock, block.Kind)
	require.Equal(t, "#", block.StartKeyword)
	require.Equal(t, "items", block.Expr)
	require.Equal(t, "/items", block.EndKeyword)
	require.Len(t, block.Children, 1)
	li := block.Children[0].(*ast.Element)
	require.Equal(t, "li", li.Name)
	require.Len(t, li.Children, 1)
	interp := li.Children[0].(*ast.TemplateNode)
	require.Equal(t, ast.TplInterpolation, interp.Kind)
	require.Equal(t, "name", interp.Expr)
}

func TestParse_MustacheInvertedSection(t *testing.T) {
	doc := mustParse(t, "{{^empty}}none{{/empty}}", ast.Mustache)
	block := doc.Children[0].(*ast.TemplateNode)
	require.Equal(t, ast.TplBlock, block.Kind)
	require.Equal(t, "^", block.StartKeyword)
	require.Equal(t, "empty", block.Expr)
}

func TestParse_MustacheUnmatchedSectionCloseIsSyntaxError(t *testing.T) {
	_, err := Parse("{{/items}}", ast.Mustache, config.DefaultOptions())
	require.Error(t, err)
	var syn *ast.SyntaxError
	require.ErrorAs(t, err, &syn)
	require.Equal(t, ast.UnclosedBlock, syn.Kind)
}

func TestParse_MustacheUnclosedSectionIsSyntaxError(t *testing.T) {
	_, err := Parse("{{#items}}<li></li>", ast.Mustache, config.DefaultOptions())
	require.Error(t, err)
	var syn *ast.SyntaxError
	require.ErrorAs(t, err, &syn)
	require.Equal(t, ast.UnclosedBlock, syn.Kind)
}

func testOpts() config.Options {
	return config.DefaultOptions()
}
