package node

import "github.com/cloudcmds/gramtree/scanner"

// IndentBlock is the specialized driver for a run of child expressions
// subordinate to a controlling previous token (spec §4.5): either a single
// inline child on the controlling token's own line, or a block of children
// each indented strictly deeper than the controlling token.
type IndentBlock struct {
	*Def
}

// NewIndentBlockKind constructs an IndentBlock kind whose Shape describes
// exactly one child expression, parsed repeatedly (in Block mode) or once
// (in Inline mode).
func NewIndentBlockKind(name string, opts ...KindOption) *IndentBlock {
	return &IndentBlock{Def: NewKind(name, opts...)}
}

// ParseKind drives the indent-block algorithm, satisfying
// grammar.NodeRefTarget.
func (ib *IndentBlock) ParseKind(s *scanner.Scanner) (any, bool) {
	return ParseIndentBlock(ib.Def, s)
}

// ParseIndentBlock implements spec §4.5. d.Shape() is driven once per child
// via the base driver (Parse); its result's Exps are spliced into the
// block's own children (for Block mode) or used directly (for Inline mode).
func ParseIndentBlock(d *Def, s *scanner.Scanner) (*Node, bool) {
	start := s.Cursor()

	controllingLine, controllingIndent, haveControl := s.ControllingIndent()
	currentLine := s.CurrentLine()

	if haveControl && controllingLine == currentLine {
		child, ok := Parse(d, s)
		if !ok {
			s.SetCursor(start)
			return nil, false
		}
		return &Node{KindName: d.Name(), Exps: child.Exps}, true
	}

	if !haveControl {
		controllingIndent = -1
	}
	if s.LineIndent(currentLine) <= controllingIndent {
		s.SetCursor(start)
		return nil, false
	}

	var children []any
	for {
		_, indent, ok := s.PeekContentLine()
		if !ok || indent <= controllingIndent {
			break
		}
		save := s.Cursor()
		child, ok := Parse(d, s)
		if !ok {
			s.SetCursor(save)
			break
		}
		children = append(children, child.Exps...)
	}

	if len(children) == 0 {
		s.SetCursor(start)
		return nil, false
	}
	return &Node{KindName: d.Name(), Exps: children}, true
}
