// Package grammar implements the grammar-expression algebra described in
// spec §3/§4.2: literals, patterns, node-kind references, alternations,
// sub-shapes, and lazy thunks, each with optional repetition bounds and an
// optional right-delimiter terminator.
package grammar

import (
	"github.com/cloudcmds/gramtree/scanner"
	"github.com/cloudcmds/gramtree/token"
)

// Kind tags the variant an Expr holds.
type Kind int

const (
	KindLiteral Kind = iota
	KindPattern
	KindNodeRef
	KindAlternation
	KindSubShape
	KindLazy
)

// NodeRefTarget is the interface a referenced node kind must satisfy so an
// Expr can drive its parse without the grammar package importing the node
// package (which itself imports grammar). Kept deliberately tiny.
type NodeRefTarget interface {
	// LeadExpr returns this kind's own Shape's first expression, or nil if
	// the shape is empty. Used for the lead-character short-circuit.
	LeadExpr() *Expr
	// ParseKind drives this kind's full parse policy against s, returning
	// the produced value (for the node package's kinds, a *node.Node) or nil.
	ParseKind(s *scanner.Scanner) (any, bool)
}

// Thunk resolves a forward grammar reference on first use. Implementations
// must memoize: Expr.resolve overwrites the Lazy's own fields in place after
// the first call so later parses skip straight to the resolved kind.
type Thunk func() *Expr

// Expr is a single grammar expression: one of the six kinds in spec §3, plus
// the Min/Max repetition bounds and an optional RightDelimiter.
type Expr struct {
	Kind Kind

	Literal string
	Pattern *scanner.RegexPattern
	NodeRef NodeRefTarget
	Alts    []*Expr
	Sub     *Shape
	Lazy    Thunk

	Min            int
	Max            int
	RightDelimiter token.Pattern

	// Expectation, if set, is the author-supplied message attached to a
	// missing-element diagnostic when this Expr is the one that failed to
	// match under allowIncompleteParse.
	Expectation string

	resolved bool
}

// Lit constructs a non-repeating Literal expression.
func Lit(s string) *Expr {
	return &Expr{Kind: KindLiteral, Literal: s, Min: 1, Max: 1}
}

// Pat constructs a non-repeating Pattern expression from a regular
// expression source string (normalized per spec §6).
func Pat(src string) *Expr {
	return &Expr{Kind: KindPattern, Pattern: scanner.NewPattern(src), Min: 1, Max: 1}
}

// Ref constructs a non-repeating reference to a node kind.
func Ref(target NodeRefTarget) *Expr {
	return &Expr{Kind: KindNodeRef, NodeRef: target, Min: 1, Max: 1}
}

// Alt constructs an ordered, first-match-wins Alternation over branches.
// Each branch must itself be a Literal, Pattern, NodeRef, SubShape, or Lazy
// expression (never another Alternation; flatten by hand if needed).
func Alt(branches ...*Expr) *Expr {
	return &Expr{Kind: KindAlternation, Alts: branches, Min: 1, Max: 1}
}

// Embed constructs a SubShape expression wrapping an inline Shape.
func Embed(s *Shape) *Expr {
	return &Expr{Kind: KindSubShape, Sub: s, Min: 1, Max: 1}
}

// LazyRef constructs a Lazy expression from a thunk, used for forward
// references to node kinds not yet defined at Shape-construction time.
func LazyRef(t Thunk) *Expr {
	return &Expr{Kind: KindLazy, Lazy: t, Min: 1, Max: 1}
}

// Repeat returns a copy of e with repetition bounds min/max. max == 0 means
// unbounded.
func (e *Expr) Repeat(min, max int) *Expr {
	c := *e
	c.Min = min
	if max <= 0 {
		c.Max = int(^uint(0) >> 1) // effectively unbounded
	} else {
		c.Max = max
	}
	return &c
}

// Until attaches a right-delimiter to e: a literal or pattern whose
// lookahead match (after the first iteration) terminates e's repetition
// without being consumed by e itself.
func (e *Expr) Until(delim token.Pattern) *Expr {
	c := *e
	c.RightDelimiter = delim
	return &c
}

// Expect attaches an author-supplied expectation message, surfaced in
// missing-element diagnostics.
func (e *Expr) Expect(msg string) *Expr {
	c := *e
	c.Expectation = msg
	return &c
}

// ownLeadExpr returns e's own first expression for the lead-character
// short-circuit: for a SubShape this is the sub-shape's own first
// expression (spec §9(b) correction: never an ambient object's), for other
// kinds it is e itself.
func (e *Expr) ownLeadExpr() *Expr {
	e.resolve()
	if e.Kind == KindSubShape {
		if len(e.Sub.Exprs) == 0 {
			return nil
		}
		return e.Sub.Exprs[0].resolve()
	}
	return e
}

// resolve evaluates a Lazy expression's thunk once, memoizing the result's
// classification fields onto e in place, per spec §3/§9's Lazy contract.
func (e *Expr) resolve() *Expr {
	if e.Kind != KindLazy {
		return e
	}
	if !e.resolved {
		target := e.Lazy()
		e.Kind = target.Kind
		e.Literal = target.Literal
		e.Pattern = target.Pattern
		e.NodeRef = target.NodeRef
		e.Alts = target.Alts
		e.Sub = target.Sub
		e.Lazy = target.Lazy
		e.resolved = true
	}
	return e
}

// produceOne attempts a single non-repeating occurrence of e (post Lazy
// resolution) and returns the children it produced — a single Token, a
// single Node produced by a NodeRef, or a spliced SubShape exps list — or
// (nil, false) on failure. The scanner cursor is NOT restored by
// produceOne on failure; that is the caller's (Expr.Parse's) responsibility.
func (e *Expr) produceOne(s *scanner.Scanner) ([]any, bool) {
	e.resolve()
	switch e.Kind {
	case KindLiteral:
		tok, ok := s.Eat(token.Literal(e.Literal))
		if !ok {
			return nil, false
		}
		return []any{annotate(tok, e)}, true
	case KindPattern:
		tok, ok := s.Eat(e.Pattern)
		if !ok {
			return nil, false
		}
		return []any{annotate(tok, e)}, true
	case KindNodeRef:
		if lead := e.NodeRef.LeadExpr(); lead != nil {
			if own := lead.ownLeadExpr(); own != nil && (own.Kind == KindLiteral || own.Kind == KindPattern) {
				if !own.taste(s) {
					return nil, false
				}
			}
		}
		v, ok := e.NodeRef.ParseKind(s)
		if !ok {
			return nil, false
		}
		return []any{annotate(v, e)}, true
	case KindAlternation:
		for _, branch := range e.Alts {
			branch.resolve()
			switch branch.Kind {
			case KindLiteral:
				if tok, ok := s.Eat(token.Literal(branch.Literal)); ok {
					return []any{annotate(tok, branch)}, true
				}
			case KindPattern:
				if tok, ok := s.Eat(branch.Pattern); ok {
					return []any{annotate(tok, branch)}, true
				}
			default:
				if res, ok := branch.produceOne(s); ok {
					return res, true
				}
			}
		}
		return nil, false
	case KindSubShape:
		own := e.ownLeadExpr()
		if own != nil && own != e && (own.Kind == KindLiteral || own.Kind == KindPattern) {
			if !own.taste(s) {
				return nil, false
			}
		}
		exps, ok := e.Sub.parseInline(s)
		if !ok {
			return nil, false
		}
		out := make([]any, len(exps))
		for i, v := range exps {
			out[i] = v
		}
		return out, true
	}
	return nil, false
}

// taste performs a non-consuming lookahead of a Literal or Pattern
// expression, used for the lead-character short-circuit on NodeRef/SubShape.
func (e *Expr) taste(s *scanner.Scanner) bool {
	switch e.Kind {
	case KindLiteral:
		_, ok := s.Taste(token.Literal(e.Literal))
		return ok
	case KindPattern:
		_, ok := s.Taste(e.Pattern)
		return ok
	default:
		return true
	}
}

// taste of the right-delimiter, used by Parse's repetition guard.
func (e *Expr) tasteDelimiter(s *scanner.Scanner) bool {
	if e.RightDelimiter == nil {
		return false
	}
	_, ok := s.Taste(e.RightDelimiter)
	return ok
}

// TasteRightDelimiter performs a non-consuming lookahead for e's
// right-delimiter, exported for the left-recursive driver (spec §4.4),
// which lookahead-tests SHAPE[0].RightDelimiter directly rather than
// through Expr.Parse's repetition loop.
func (e *Expr) TasteRightDelimiter(s *scanner.Scanner) bool {
	return e.tasteDelimiter(s)
}

// refBack is attached to every Token/Node produced by this Expr so that the
// node driver's missing-element diagnostics can name the Expr that failed
// when an incomplete parse leaves a gap at this shape position.
type refBack struct {
	Value any
	Expr  *Expr
}

func annotate(v any, e *Expr) any { return refBack{Value: v, Expr: e} }

// Unwrap strips the refBack annotation (if present) from a value produced by
// produceOne/Parse, returning the underlying token.Token or node.Node.
func Unwrap(v any) any {
	if rb, ok := v.(refBack); ok {
		return rb.Value
	}
	return v
}

// SourceExpr returns the Expr that produced v, if v was annotated via
// produceOne, else nil.
func SourceExpr(v any) *Expr {
	if rb, ok := v.(refBack); ok {
		return rb.Expr
	}
	return nil
}

// Parse drives the §4.2 algorithm: zero-or-more (bounded by Min/Max)
// occurrences of e against s, honoring the right-delimiter lookahead guard
// and collecting whitespace tokens between occurrences. Returns the ordered
// list of produced children (Tokens and/or Nodes, each still refBack-wrapped
// — callers should Unwrap) or nil on failure, with the scanner cursor
// restored to its entry position on failure (invariant I4).
func (e *Expr) Parse(s *scanner.Scanner) ([]any, bool) {
	startCursor := s.Cursor()
	var results []any

	max := e.Max
	if max == 0 {
		max = 1
	}
	min := e.Min

	for i := 0; i < max; i++ {
		if i > 0 && e.RightDelimiter != nil && e.tasteDelimiter(s) {
			break
		}
		for {
			wsTok, ok := s.EatWhitespace()
			if !ok {
				break
			}
			results = append(results, wsTok)
		}
		sub, ok := e.produceOne(s)
		if ok {
			results = append(results, sub...)
			continue
		}
		if i >= min {
			break
		}
		s.SetCursor(startCursor)
		return nil, false
	}
	return results, true
}
