package node

import (
	"github.com/cloudcmds/gramtree/grammar"
	"github.com/cloudcmds/gramtree/scanner"
	"github.com/cloudcmds/gramtree/token"
)

// LeftRecursive is the specialized driver for shapes of the form
// [X, delim, ...] where a binary/chained operator would otherwise
// left-recurse (spec §4.4). It wraps a *Def so it inherits the same
// Name/Shape/policy accessors and LeadExpr, overriding only ParseKind.
type LeftRecursive struct {
	*Def
}

// NewLeftRecursiveKind constructs a LeftRecursive kind. Its Shape must name
// the repeated operand first, followed by the delimiter and one more operand
// occurrence, e.g. grammar.Of(grammar.Ref(number), "+", grammar.Ref(number)).
// ParseKind folds additional operands onto a growing left-associative parent
// itself, iteratively; the tail must never reference this kind, or each
// iteration would recurse instead of loop.
func NewLeftRecursiveKind(name string, opts ...KindOption) *LeftRecursive {
	return &LeftRecursive{Def: NewKind(name, opts...)}
}

// ParseKind drives the left-recursive algorithm, satisfying
// grammar.NodeRefTarget.
func (lr *LeftRecursive) ParseKind(s *scanner.Scanner) (any, bool) {
	return ParseLeftRecursive(lr.Def, s)
}

// firstContent returns the first non-whitespace-token element of produced
// (a grammar.Expr.Parse result), unwrapped, or nil if produced holds only
// whitespace.
func firstContent(produced []any) any {
	for _, p := range produced {
		v := grammar.Unwrap(p)
		if tok, ok := v.(token.Token); ok && tok.IsWhitespace() {
			continue
		}
		return v
	}
	return nil
}

// ParseLeftRecursive implements spec §4.4 directly: parse d.Shape()[0] to
// produce $left, then repeatedly lookahead for its right-delimiter and, while
// present, parse a tail against a synthetic kind whose Shape is
// d.Shape()[1:], folding successes into a growing left-associative parent.
func ParseLeftRecursive(d *Def, s *scanner.Scanner) (*Node, bool) {
	exprs := d.Shape().Exprs
	if len(exprs) < 2 {
		return Parse(d, s)
	}
	first := exprs[0]

	produced, ok := first.Parse(s)
	if !ok {
		return nil, false
	}
	left := firstContent(produced)
	if left == nil {
		return nil, false
	}

	tailShape := &grammar.Shape{Exprs: exprs[1:]}
	tailKind := &Def{
		KindName:   d.Name() + ".tail",
		ShapeVal:   tailShape,
		NoFallback: true,
	}

	for first.TasteRightDelimiter(s) {
		tail, ok := Parse(tailKind, s)
		if !ok {
			break
		}
		parent := &Node{KindName: d.Name(), Exps: append([]any{left}, tail.Exps...)}
		left = parent
	}

	if n, ok := left.(*Node); ok {
		return n, true
	}
	return &Node{KindName: d.Name(), Exps: []any{left}}, true
}
