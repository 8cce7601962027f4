package node

import (
	"github.com/cloudcmds/gramtree/grammar"
	"github.com/cloudcmds/gramtree/internal/tracelog"
	"github.com/cloudcmds/gramtree/scanner"
	"github.com/cloudcmds/gramtree/token"
)

// contributesSubnode reports whether a Shape position contributes a
// sub-node (NodeRef/Alternation/SubShape/Lazy) rather than a bare
// Literal/Pattern token, per spec §4.3 step 2.
func contributesSubnode(e *grammar.Expr) bool {
	switch e.Kind {
	case grammar.KindLiteral, grammar.KindPattern:
		return false
	default:
		return true
	}
}

// Parse drives k's Shape against s per spec §4.3: the fallback-to-first-exp
// and partial-match policies, returning the constructed Node (or, under
// fallback, the unwrapped first successful child) or nothing.
func Parse(k Kind, s *scanner.Scanner) (*Node, bool) {
	shape := k.Shape()
	startCursor := s.Cursor()

	var firstExp any
	firstExpCursor := startCursor
	var exps []any

	for i, g := range shape.Exprs {
		tracelog.Trace(k.Name(), i, s.Cursor())
		produced, ok := g.Parse(s)
		if ok && i == 0 && contributesSubnode(g) && len(produced) > 0 {
			firstExp = grammar.Unwrap(produced[0])
			firstExpCursor = s.Cursor()
		}
		if ok {
			for _, p := range produced {
				exps = append(exps, grammar.Unwrap(p))
			}
			continue
		}

		if k.AllowIncompleteParse() && countContent(exps) >= k.IncompleteParseThreshold() {
			exps = append(exps, missingToken(s, g))
			continue
		}

		if k.FallbackToFirstExp() && firstExp != nil {
			s.SetCursor(firstExpCursor)
			if n, ok := firstExp.(*Node); ok {
				return n, true
			}
			// Fallback unwraps to a bare Token; wrap it so the result type
			// stays *Node-shaped for callers expecting one, while retaining
			// the original token as the sole, faithful child.
			return &Node{KindName: k.Name(), Exps: []any{firstExp}}, true
		}

		s.SetCursor(startCursor)
		return nil, false
	}

	return &Node{KindName: k.Name(), Exps: exps}, true
}

// countContent counts already-accumulated content children: Nodes, or
// Tokens whose trimmed value is non-empty.
func countContent(exps []any) int {
	n := 0
	for _, e := range exps {
		switch v := e.(type) {
		case *Node:
			n++
		case token.Token:
			if !v.IsWhitespace() && v.Value != "" {
				n++
			}
		}
	}
	return n
}

// missingToken constructs the synthetic "missing" sentinel for the
// grammar expression g that failed to match at the scanner's current
// position, carrying g's expectation message for diagnostics.
func missingToken(s *scanner.Scanner, g *grammar.Expr) token.Token {
	line := s.CurrentLine()
	col := s.CurrentCol()
	msg := g.Expectation
	if msg == "" && g.RightDelimiter != nil {
		msg = g.RightDelimiter.Describe()
	}
	return token.Token{
		Value:      "",
		IsMissing:  true,
		ExpectedBy: msg,
		Start: token.Position{
			Line: line, Col: col, Offset: s.Cursor(), Indent: 0,
		},
		End: token.Position{
			Line: line, Col: col, Offset: s.Cursor(), Indent: 0,
		},
	}
}
