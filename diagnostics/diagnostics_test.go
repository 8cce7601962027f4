package diagnostics

import (
	"testing"

	"github.com/cloudcmds/gramtree/grammar"
	"github.com/cloudcmds/gramtree/node"
	"github.com/cloudcmds/gramtree/scanner"
	"github.com/stretchr/testify/require"
)

func TestFromNodeReturnsOneDiagnosticPerMissingElement(t *testing.T) {
	k := node.NewKind("PAIR", node.WithIncompleteParse(1))
	k.SetShape(grammar.Of(grammar.Pat(`[a-z]+`), ":", grammar.Pat(`[a-z]+`)))

	s := scanner.New("key:")
	n, ok := node.Parse(k, s)
	require.True(t, ok)

	diags := FromNode(n)
	require.Len(t, diags, 1)
	require.Equal(t, MissingElement, diags[0].Kind)
}

func TestNewReportNilWhenEmpty(t *testing.T) {
	require.Nil(t, NewReport(nil))
}

func TestReportAggregatesDiagnostics(t *testing.T) {
	diags := []Diagnostic{
		{Kind: MissingElement, Line: 0, Col: 3, Message: "expected value"},
		{Kind: MissingElement, Line: 1, Col: 0, Message: "expected key"},
	}
	r := NewReport(diags)
	require.NotNil(t, r)
	require.Equal(t, 2, r.Count())
	require.Len(t, r.Diagnostics(), 2)
	require.Contains(t, r.Error(), "expected value")
}
