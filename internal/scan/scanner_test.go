package scan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCursor_PeekAndAdvance(t *testing.T) {
	c := New("abc")
	require.Equal(t, byte('a'), c.PeekByte())
	require.Equal(t, byte('a'), c.Advance())
	require.Equal(t, byte('b'), c.PeekByte())
	require.Equal(t, byte('c'), c.PeekByteAt(1))
	require.False(t, c.Eof())
	c.AdvanceN(2)
	require.True(t, c.Eof())
	require.Equal(t, byte(0), c.PeekByte())
}

func TestCursor_MatchAndFold(t *testing.T) {
	c := New("DIV class")
	require.False(t, c.Match("div"))
	require.True(t, c.MatchFold("div"))
	require.Equal(t, 3, c.Pos())
	c.SkipSpace()
	require.True(t, c.HasPrefix("class"))
}

func TestCursor_TakeWhileAndUntil(t *testing.T) {
	c := New("  hello world")
	ws := c.SkipSpace()
	require.Equal(t, "  ", ws)
	word := c.TakeWhile(func(b byte) bool { return b != ' ' })
	require.Equal(t, "hello", word)

	c2 := New("abc</div>rest")
	text, found := c2.TakeUntil("</div>")
	require.Equal(t, "abc", text)
	require.Equal(t, "</div>", found)
}

func TestCursor_TakeUntilFold(t *testing.T) {
	c := New("const a = 1</SCRIPT>")
	text, found := c.TakeUntilFold("</script>")
	require.Equal(t, "const a = 1", text)
	require.Equal(t, "</SCRIPT>", found)
}

func TestCursor_SeekToAndRest(t *testing.T) {
	c := New("hello")
	c.SeekTo(2)
	require.Equal(t, "llo", c.Rest())
	require.Equal(t, "hello", c.Source())
}

func TestCursor_PeekRuneAndAdvanceRune(t *testing.T) {
	c := New("é中")
	r, n := c.PeekRune()
	require.Equal(t, 'é', r)
	require.Equal(t, 2, n)
	require.Equal(t, 'é', c.AdvanceRune())
	require.Equal(t, '中', c.AdvanceRune())
	require.True(t, c.Eof())
}

func TestIsSpace(t *testing.T) {
	for _, b := range []byte(" \t\n\r\f") {
		require.True(t, IsSpace(b), "expected %q to be space", b)
	}
	require.False(t, IsSpace('a'))
}

func TestUnescapeEntities(t *testing.T) {
	require.Equal(t, "a & b", UnescapeEntities("a &amp; b"))
	require.Equal(t, "<tag>", UnescapeEntities("&lt;tag&gt;"))
	require.Equal(t, "no entities", UnescapeEntities("no entities"))
}

func TestLineCol(t *testing.T) {
	src := "line one\nline two\nline three"
	line, col := LineCol(src, 0)
	require.Equal(t, 1, line)
	require.Equal(t, 1, col)

	line, col = LineCol(src, len("line one\n"))
	require.Equal(t, 2, line)
	require.Equal(t, 1, col)

	line, col = LineCol(src, len("line one\nline "))
	require.Equal(t, 2, line)
	require.Equal(t, 6, col)
}
