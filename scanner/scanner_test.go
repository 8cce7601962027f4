package scanner

import (
	"testing"

	"github.com/cloudcmds/gramtree/token"
	"github.com/stretchr/testify/require"
)

func TestEatLiteralAdvancesCursor(t *testing.T) {
	s := New("foo bar")
	tok, ok := s.Eat(token.Literal("foo"))
	require.True(t, ok)
	require.Equal(t, "foo", tok.Value)
	require.Equal(t, 3, s.Cursor())
}

func TestEatLiteralFailureLeavesCursorUntouched(t *testing.T) {
	s := New("foo bar")
	start := s.Cursor()
	_, ok := s.Eat(token.Literal("bar"))
	require.False(t, ok)
	require.Equal(t, start, s.Cursor())
}

func TestTasteDoesNotConsume(t *testing.T) {
	s := New("foo bar")
	m, ok := s.Taste(token.Literal("foo"))
	require.True(t, ok)
	require.Equal(t, "foo", m.Value)
	require.Equal(t, 0, s.Cursor())
}

func TestPushPopCursorSymmetry(t *testing.T) {
	s := New("abcdef")
	s.Eat(token.Literal("abc"))
	s.PushCursor()
	s.Eat(token.Literal("def"))
	require.Equal(t, 6, s.Cursor())
	s.PopCursor()
	require.Equal(t, 3, s.Cursor())
}

func TestPopCursorOnEmptyStackIsNoop(t *testing.T) {
	s := New("abc")
	s.Eat(token.Literal("ab"))
	s.PopCursor()
	require.Equal(t, 2, s.Cursor())
}

func TestEatWhitespaceSkipsSpacesAndNewline(t *testing.T) {
	s := New("  \nrest")
	tok, ok := s.EatWhitespace()
	require.True(t, ok)
	require.True(t, tok.IsWhitespace())
	require.Equal(t, "  \n", tok.Value)
	require.Equal(t, 3, s.Cursor())
}

func TestNewPatternStripsLeadingCaret(t *testing.T) {
	p := NewPattern("^[0-9]+")
	s := New("123abc")
	m, ok := s.Taste(p)
	require.True(t, ok)
	require.Equal(t, "123", m.Value)
}

func TestLineIndentAndContentBounds(t *testing.T) {
	s := New("  foo\n    bar\n")
	require.Equal(t, 2, s.LineIndent(0))
	require.Equal(t, 4, s.LineIndent(1))
	require.Equal(t, 2, s.LineContentStart(0))
}

func TestControllingIndentFindsPrecedingToken(t *testing.T) {
	s := New("if x:\n    y")
	s.SetCursor(len("if x:\n    "))
	line, indent, ok := s.ControllingIndent()
	require.True(t, ok)
	require.Equal(t, 0, line)
	require.Equal(t, 0, indent)
}

func TestControllingIndentAtStartOfInput(t *testing.T) {
	s := New("   x")
	_, _, ok := s.ControllingIndent()
	require.False(t, ok)
}

func TestPeekContentLineDoesNotConsume(t *testing.T) {
	s := New("  \n  next")
	line, indent, ok := s.PeekContentLine()
	require.True(t, ok)
	require.Equal(t, 1, line)
	require.Equal(t, 2, indent)
	require.Equal(t, 0, s.Cursor())
}

func TestCacheGetSetRoundTrip(t *testing.T) {
	s := New("x")
	_, ok := s.CacheGet("k")
	require.False(t, ok)
	s.CacheSet("k", 42)
	v, ok := s.CacheGet("k")
	require.True(t, ok)
	require.Equal(t, 42, v)
}
