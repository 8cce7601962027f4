package node

import (
	"testing"

	"github.com/cloudcmds/gramtree/grammar"
	"github.com/cloudcmds/gramtree/scanner"
	"github.com/stretchr/testify/require"
)

func newLineKind() *Def {
	line := NewKind("LINE")
	line.SetShape(grammar.Of(grammar.Pat(`[a-zA-Z0-9]+`)))
	return line
}

func TestIndentBlockInlineMode(t *testing.T) {
	line := newLineKind()
	block := NewIndentBlockKind("BLOCK")
	block.SetShape(grammar.Of(grammar.Ref(line)))

	s := scanner.New("if: stmt")
	s.SetCursor(len("if: "))
	n, ok := ParseIndentBlock(block.Def, s)
	require.True(t, ok)
	require.Equal(t, "stmt", n.Text())
}

func TestIndentBlockBlockMode(t *testing.T) {
	line := newLineKind()
	block := NewIndentBlockKind("BLOCK")
	block.SetShape(grammar.Of(grammar.Ref(line)))

	text := "if:\n    first\n    second\nafter"
	s := scanner.New(text)
	s.SetCursor(len("if:\n"))
	n, ok := ParseIndentBlock(block.Def, s)
	require.True(t, ok)
	require.Equal(t, 2, len(n.ContentExps()))
}

func TestIndentBlockStopsAtDedent(t *testing.T) {
	line := newLineKind()
	block := NewIndentBlockKind("BLOCK")
	block.SetShape(grammar.Of(grammar.Ref(line)))

	text := "if:\n    inside\nback"
	s := scanner.New(text)
	s.SetCursor(len("if:\n"))
	n, ok := ParseIndentBlock(block.Def, s)
	require.True(t, ok)
	require.Equal(t, "    inside", n.Text())

	// The dedented "back" line must remain unconsumed.
	remaining := s.Text()[s.Cursor():]
	require.Contains(t, remaining, "back")
}
