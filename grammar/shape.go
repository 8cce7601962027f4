package grammar

import (
	"github.com/cloudcmds/gramtree/scanner"
	"github.com/cloudcmds/gramtree/token"
)

// Shape is an ordered sequence of grammar expressions defining a node
// kind's body (spec §3/§6).
type Shape struct {
	Exprs []*Expr
}

// Limit is the inline descriptor sugar `{Min, Max}` that may follow an
// expression in an author's positional Of() list, binding repetition
// bounds to the immediately preceding item without becoming its own Shape
// position.
type Limit struct {
	Min int
	Max int // 0 means unbounded
}

// Of builds a Shape from an author's flat positional item list, recognizing
// the two sugars from spec §6:
//
//  1. a Limit immediately following an expression binds Min/Max to it;
//  2. a literal/pattern immediately after an expression
//     (skipping an optional intervening Limit) is additionally recorded as
//     that expression's RightDelimiter, while remaining an independent Shape
//     position in its own right.
//
// Items may be *Expr (built via Lit/Pat/Ref/Alt/Embed/LazyRef), a bare
// string (sugar for Lit), *Shape (sugar for Embed), or Limit.
func Of(items ...any) *Shape {
	s := &Shape{}
	var exprs []*Expr
	for _, raw := range items {
		if lim, ok := raw.(Limit); ok {
			if len(exprs) > 0 {
				last := exprs[len(exprs)-1]
				exprs[len(exprs)-1] = last.Repeat(lim.Min, lim.Max)
			}
			continue
		}
		exprs = append(exprs, toExpr(raw))
	}
	s.Exprs = exprs
	inferRightDelimiters(s.Exprs)
	return s
}

func toExpr(raw any) *Expr {
	switch v := raw.(type) {
	case *Expr:
		return v
	case string:
		return Lit(v)
	case *Shape:
		return Embed(v)
	default:
		return Lit("")
	}
}

// inferRightDelimiters implements sugar (2): for each expression at position
// i, if the expression immediately following it (at i+1) is a plain
// literal/pattern, record it as i's RightDelimiter while leaving it in place
// as its own expression at i+1.
func inferRightDelimiters(exprs []*Expr) {
	for i := 0; i < len(exprs)-1; i++ {
		next := exprs[i+1]
		if next.Kind == KindLiteral || next.Kind == KindPattern {
			var delim interface {
				Describe() string
			}
			if next.Kind == KindLiteral {
				delim = token.Literal(next.Literal)
			} else {
				delim = next.Pattern
			}
			if exprs[i].RightDelimiter == nil {
				c := *exprs[i]
				c.RightDelimiter = delim
				exprs[i] = &c
			}
		}
	}
}

// parseInline drives this Shape's expressions against s as an anonymous
// inline kind (used by SubShape): every expression must succeed in order,
// with no fallback/partial-match policy (those are the node-kind driver's
// concerns, not a bare Shape's). On any failure the scanner cursor is
// restored and parseInline returns false.
func (s *Shape) parseInline(sc *scanner.Scanner) ([]any, bool) {
	start := sc.Cursor()
	var out []any
	for _, e := range s.Exprs {
		children, ok := e.Parse(sc)
		if !ok {
			sc.SetCursor(start)
			return nil, false
		}
		out = append(out, children...)
	}
	return out, true
}
