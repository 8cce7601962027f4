package grammar

import (
	"testing"

	"github.com/cloudcmds/gramtree/scanner"
	"github.com/cloudcmds/gramtree/token"
	"github.com/stretchr/testify/require"
)

func TestLitParseSingleOccurrence(t *testing.T) {
	s := scanner.New("abc")
	e := Lit("abc")
	results, ok := e.Parse(s)
	require.True(t, ok)
	require.Len(t, results, 1)
	require.Equal(t, 3, s.Cursor())
}

func TestLitParseFailureRestoresCursor(t *testing.T) {
	s := scanner.New("xyz")
	e := Lit("abc")
	_, ok := e.Parse(s)
	require.False(t, ok)
	require.Equal(t, 0, s.Cursor())
}

func TestRepeatMinZeroAllowsNoMatch(t *testing.T) {
	s := scanner.New("xyz")
	e := Lit("a").Repeat(0, 3)
	results, ok := e.Parse(s)
	require.True(t, ok)
	require.Empty(t, results)
	require.Equal(t, 0, s.Cursor())
}

func TestRepeatStopsAtMax(t *testing.T) {
	s := scanner.New("aaaa")
	e := Lit("a").Repeat(0, 2)
	_, ok := e.Parse(s)
	require.True(t, ok)
	require.Equal(t, 2, s.Cursor())
}

func TestRepeatBelowMinFailsAndRestores(t *testing.T) {
	s := scanner.New("a")
	e := Lit("a").Repeat(3, 0)
	_, ok := e.Parse(s)
	require.False(t, ok)
	require.Equal(t, 0, s.Cursor())
}

func TestRepeatUntilDelimiterStopsBeforeConsumingIt(t *testing.T) {
	s := scanner.New("a a a; rest")
	e := Lit("a").Repeat(1, 0).Until(token.Literal(";"))
	results, ok := e.Parse(s)
	require.True(t, ok)
	require.NotEmpty(t, results)
	// The delimiter itself must remain unconsumed.
	m, ok := s.Taste(token.Literal(";"))
	require.True(t, ok)
	require.Equal(t, ";", m.Value)
}

func TestAltTriesBranchesInOrder(t *testing.T) {
	e := Alt(Lit("foo"), Lit("bar"))
	s := scanner.New("bar")
	results, ok := e.Parse(s)
	require.True(t, ok)
	require.Len(t, results, 1)
}

func TestAltFailsWhenNoBranchMatches(t *testing.T) {
	e := Alt(Lit("foo"), Lit("bar"))
	s := scanner.New("baz")
	_, ok := e.Parse(s)
	require.False(t, ok)
}

func TestUnwrapStripsRefBack(t *testing.T) {
	s := scanner.New("abc")
	e := Lit("abc")
	results, _ := e.Parse(s)
	tok, ok := Unwrap(results[0]).(token.Token)
	require.True(t, ok)
	require.Equal(t, "abc", tok.Value)
}

func TestSourceExprReturnsProducingExpr(t *testing.T) {
	s := scanner.New("abc")
	e := Lit("abc")
	results, _ := e.Parse(s)
	require.Equal(t, e, SourceExpr(results[0]))
}

func TestOfInfersRightDelimiterFromFollowingLiteral(t *testing.T) {
	shape := Of(Pat(`[0-9]+`), ";")
	require.NotNil(t, shape.Exprs[0].RightDelimiter)
	require.Equal(t, ";", shape.Exprs[0].RightDelimiter.Describe())
}

func TestOfLimitSugarBindsToPrecedingExpr(t *testing.T) {
	shape := Of(Lit("a"), Limit{Min: 2, Max: 4})
	require.Equal(t, 2, shape.Exprs[0].Min)
	require.Equal(t, 4, shape.Exprs[0].Max)
}
