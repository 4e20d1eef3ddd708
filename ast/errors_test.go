package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyntaxError_ErrorWithoutContext(t *testing.T) {
	e := &SyntaxError{Kind: UnexpectedChar, Span: Span{Start: 7, End: 7}, Msg: "unexpected '<'"}
	require.Equal(t, `UnexpectedChar at byte 7: unexpected '<'`, e.Error())
}

func TestSyntaxError_ErrorWithContextUsesLineCol(t *testing.T) {
	src := "<div>\n<span></div>"
	e := &SyntaxError{Kind: UnmatchedEndTag, Span: Span{Start: 13, End: 13}, Msg: "unmatched end tag: div"}
	e = e.WithContext(src, nil, 0)
	require.Equal(t, `UnmatchedEndTag at line 2, column 8: unmatched end tag: div`, e.Error())
}

func TestSyntaxError_ContextIncludesSiblings(t *testing.T) {
	src := `<p>a</p><span>bad</span><p>b</p>`
	siblings := []Node{
		&Element{Base: Base{Span: Span{Start: 0, End: 8}}, Name: "p"},
		&Element{Base: Base{Span: Span{Start: 8, End: 25}}, Name: "span"},
		&Element{Base: Base{Span: Span{Start: 25, End: 33}}, Name: "p"},
	}
	e := &SyntaxError{Kind: InvalidAttributeForm, Span: Span{Start: 8, End: 8}, Msg: "bad attribute"}
	e = e.WithContext(src, siblings, 1)

	ctx := e.Context()
	require.Contains(t, ctx, "<p")
	require.NotEmpty(t, ctx)
}

func TestSyntaxError_ContextEmptyWithoutWithContext(t *testing.T) {
	e := &SyntaxError{Kind: UnexpectedChar, Span: Span{Start: 0, End: 0}, Msg: "x"}
	require.Empty(t, e.Context())
}

func TestExternalError_ErrorSingular(t *testing.T) {
	e := &ExternalError{Errors: []error{errString("boom")}}
	require.Equal(t, "external formatter failed: boom", e.Error())
}

func TestExternalError_ErrorPlural(t *testing.T) {
	e := &ExternalError{Errors: []error{errString("a"), errString("b")}}
	require.Equal(t, "2 external formatter errors: a; b", e.Error())
}

func TestExternalError_Unwrap(t *testing.T) {
	inner := []error{errString("a"), errString("b")}
	e := &ExternalError{Errors: inner}
	require.Equal(t, inner, e.Unwrap())
}

func TestFormatError_ImplementedByBothKinds(t *testing.T) {
	var _ FormatError = (*SyntaxError)(nil)
	var _ FormatError = (*ExternalError)(nil)
}

type errString string

func (e errString) Error() string { return string(e) }
