// Package node implements the parse-tree Node type and the node-kind parse
// driver: the base fallback/partial-match policy (spec §4.3) plus the
// left-recursive (§4.4) and indent-block (§4.5) parse-strategy variants.
package node

import (
	"strings"

	"github.com/cloudcmds/gramtree/grammar"
	"github.com/cloudcmds/gramtree/scanner"
	"github.com/cloudcmds/gramtree/token"
	"github.com/davecgh/go-spew/spew"
)

// Node is an immutable parse-tree node: a kind name plus the ordered
// sequence of child expressions actually matched, each either a Token or a
// *Node. Node is constructed exclusively by the parse driver.
type Node struct {
	KindName string
	Exps     []any // token.Token or *Node, in matched order
}

// Kind is the name of the node kind that produced this node.
func (n *Node) Kind() string { return n.KindName }

// Tokens returns the pre-order flattening of every Token contained in this
// node, including whitespace and synthetic missing tokens.
func (n *Node) Tokens() []token.Token {
	var out []token.Token
	for _, e := range n.Exps {
		switch v := e.(type) {
		case token.Token:
			out = append(out, v)
		case *Node:
			out = append(out, v.Tokens()...)
		}
	}
	return out
}

// ContentExps returns Exps filtered to exclude pure-whitespace tokens.
func (n *Node) ContentExps() []any {
	var out []any
	for _, e := range n.Exps {
		if tok, ok := e.(token.Token); ok && tok.IsWhitespace() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ContentTokens returns Tokens filtered to exclude pure-whitespace tokens.
func (n *Node) ContentTokens() []token.Token {
	var out []token.Token
	for _, t := range n.Tokens() {
		if t.IsWhitespace() {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Text concatenates every token's value in order, preserving whitespace
// (invariant I1): the result equals the input substring spanning this
// node's first token's start to its last token's end.
func (n *Node) Text() string {
	var b strings.Builder
	for _, t := range n.Tokens() {
		b.WriteString(t.Value)
	}
	return b.String()
}

// Line and Col return the position of this node's first token.
func (n *Node) Line() int {
	toks := n.Tokens()
	if len(toks) == 0 {
		return 0
	}
	return toks[0].Start.Line
}

func (n *Node) Col() int {
	toks := n.Tokens()
	if len(toks) == 0 {
		return 0
	}
	return toks[0].Start.Col
}

// LineStart and LineEnd return the first and last line spanned by this
// node's tokens.
func (n *Node) LineStart() int {
	toks := n.Tokens()
	if len(toks) == 0 {
		return 0
	}
	return toks[0].Start.Line
}

func (n *Node) LineEnd() int {
	toks := n.Tokens()
	if len(toks) == 0 {
		return 0
	}
	return toks[len(toks)-1].End.Line
}

// Diagnostic is reported by Validate for each missing-element found within
// this node's subtree (spec §7).
type Diagnostic struct {
	Line    int
	Col     int
	Message string
}

// Validate walks this node's subtree collecting one Diagnostic per
// synthetic missing token, per spec §7. The core never panics; this is the
// only validation catalogue the core defines.
func (n *Node) Validate() []Diagnostic {
	var out []Diagnostic
	var walk func(e any)
	walk = func(e any) {
		switch v := e.(type) {
		case token.Token:
			if v.IsMissing {
				out = append(out, Diagnostic{
					Line:    v.Start.Line,
					Col:     v.Start.Col,
					Message: v.ExpectedBy,
				})
			}
		case *Node:
			for _, c := range v.Exps {
				walk(c)
			}
		}
	}
	for _, e := range n.Exps {
		walk(e)
	}
	return out
}

// Dump renders n's full structural tree via go-spew, the same dependency
// testify itself pulls in for failure-diff output. Intended for test failure
// messages and ad hoc debugging of a Shape; the core never calls it.
func Dump(n *Node) string { return spew.Sdump(n) }

// Kind is the author-facing description of one grammar rule: a name, a
// Shape, and the fallback/partial-match policy flags from spec §4.3.
type Kind interface {
	Name() string
	Shape() *grammar.Shape
	FallbackToFirstExp() bool
	AllowIncompleteParse() bool
	IncompleteParseThreshold() int
}

// Def is the base, concrete Kind implementation authors construct via
// NewKind. It also implements grammar.NodeRefTarget so it can be the target
// of a grammar.Ref, driving its own parse through the base driver (Parse).
type Def struct {
	KindName        string
	ShapeVal        *grammar.Shape
	NoFallback      bool
	AllowIncomplete bool
	IncompleteMin   int
}

// KindOption configures a Def at construction time, following the same
// functional-options convention as the teacher parser's Option type.
type KindOption func(*Def)

// WithIncompleteParse enables the partial-match policy with the given
// content-child threshold (spec §4.3/§7).
func WithIncompleteParse(threshold int) KindOption {
	return func(d *Def) {
		d.AllowIncomplete = true
		d.IncompleteMin = threshold
	}
}

// WithoutFallback disables fallbackToFirstExp for this kind.
func WithoutFallback() KindOption {
	return func(d *Def) { d.NoFallback = true }
}

// NewKind constructs a Def with the given name and default policy
// (fallbackToFirstExp=true, allowIncompleteParse=false,
// incompleteParseThreshold=1). Its Shape must be attached afterward via
// SetShape, so that a kind's own Shape can reference the kind itself for
// direct (non-Lazy) self-recursion.
func NewKind(name string, opts ...KindOption) *Def {
	d := &Def{KindName: name, IncompleteMin: 1}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetShape attaches s as this kind's Shape.
func (d *Def) SetShape(s *grammar.Shape) { d.ShapeVal = s }

func (d *Def) Name() string                  { return d.KindName }
func (d *Def) Shape() *grammar.Shape         { return d.ShapeVal }
func (d *Def) FallbackToFirstExp() bool      { return !d.NoFallback }
func (d *Def) AllowIncompleteParse() bool    { return d.AllowIncomplete }
func (d *Def) IncompleteParseThreshold() int { return d.IncompleteMin }

// LeadExpr returns this kind's own Shape's first expression, for the
// grammar package's lead-character short-circuit.
func (d *Def) LeadExpr() *grammar.Expr {
	if d.ShapeVal == nil || len(d.ShapeVal.Exprs) == 0 {
		return nil
	}
	return d.ShapeVal.Exprs[0]
}

// ParseKind drives this kind's full base parse policy, satisfying
// grammar.NodeRefTarget.
func (d *Def) ParseKind(s *scanner.Scanner) (any, bool) {
	return Parse(d, s)
}
