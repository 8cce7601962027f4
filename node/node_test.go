package node

import (
	"testing"

	"github.com/cloudcmds/gramtree/grammar"
	"github.com/cloudcmds/gramtree/scanner"
	"github.com/stretchr/testify/require"
)

func TestParseBasicShape(t *testing.T) {
	greeting := NewKind("GREETING")
	greeting.SetShape(grammar.Of("hello", grammar.Pat(`[a-z]+`)))

	s := scanner.New("hello world")
	n, ok := Parse(greeting, s)
	require.True(t, ok, "parse tree: %s", Dump(n))
	require.Equal(t, "hello world", n.Text())
	require.Equal(t, "GREETING", n.Kind())
}

func TestDumpRendersStructuralTree(t *testing.T) {
	greeting := NewKind("GREETING")
	greeting.SetShape(grammar.Of("hello", grammar.Pat(`[a-z]+`)))

	s := scanner.New("hello world")
	n, ok := Parse(greeting, s)
	require.True(t, ok)
	dump := Dump(n)
	require.Contains(t, dump, "GREETING")
	require.Contains(t, dump, "hello")
}

func TestParseFailureRestoresCursor(t *testing.T) {
	greeting := NewKind("GREETING")
	greeting.SetShape(grammar.Of("hello", grammar.Pat(`[a-z]+`)))

	s := scanner.New("goodbye world")
	_, ok := Parse(greeting, s)
	require.False(t, ok)
	require.Equal(t, 0, s.Cursor())
}

func TestFallbackToFirstExp(t *testing.T) {
	// Second position can never match; with fallback enabled (the default),
	// the kind still succeeds, producing just the first position's result
	// (a sub-node, since only NodeRef/Alternation/SubShape/Lazy positions
	// contribute to the fallback) and leaving the rest unconsumed.
	word := NewKind("WORD")
	word.SetShape(grammar.Of(grammar.Pat(`[a-z]+`)))

	k := NewKind("MAYBE")
	k.SetShape(grammar.Of(grammar.Ref(word), "IMPOSSIBLE"))

	s := scanner.New("word rest")
	n, ok := Parse(k, s)
	require.True(t, ok)
	require.Equal(t, "word", n.Text())
	require.Equal(t, "WORD", n.Kind())
}

func TestWithoutFallbackFailsInstead(t *testing.T) {
	word := NewKind("WORD")
	word.SetShape(grammar.Of(grammar.Pat(`[a-z]+`)))

	k := NewKind("MAYBE", WithoutFallback())
	k.SetShape(grammar.Of(grammar.Ref(word), "IMPOSSIBLE"))

	s := scanner.New("word rest")
	_, ok := Parse(k, s)
	require.False(t, ok)
	require.Equal(t, 0, s.Cursor())
}

func TestAllowIncompleteParseInsertsMissingToken(t *testing.T) {
	k := NewKind("PAIR", WithIncompleteParse(1))
	k.SetShape(grammar.Of(grammar.Pat(`[a-z]+`), ":", grammar.Pat(`[a-z]+`)))

	s := scanner.New("key:")
	n, ok := Parse(k, s)
	require.True(t, ok)

	diags := n.Validate()
	require.Len(t, diags, 1)
}

func TestValidateFindsNoDiagnosticsOnCompleteParse(t *testing.T) {
	k := NewKind("PAIR", WithIncompleteParse(1))
	k.SetShape(grammar.Of(grammar.Pat(`[a-z]+`), ":", grammar.Pat(`[a-z]+`)))

	s := scanner.New("key:value")
	n, ok := Parse(k, s)
	require.True(t, ok)
	require.Empty(t, n.Validate())
}

func TestContentExpsExcludesWhitespace(t *testing.T) {
	k := NewKind("PAIR")
	k.SetShape(grammar.Of(grammar.Pat(`[a-z]+`), ":", grammar.Pat(`[a-z]+`)))

	s := scanner.New("key : value")
	n, ok := Parse(k, s)
	require.True(t, ok)
	for _, e := range n.ContentExps() {
		tok, isTok := e.(interface{ IsWhitespace() bool })
		if isTok {
			require.False(t, tok.IsWhitespace())
		}
	}
}
