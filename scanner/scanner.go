// Package scanner implements the input cursor, lookahead, and backtracking
// machinery that drives a grammar-expression parse: Scanner owns the input
// text, the main cursor, a scratch lookahead cursor, and a LIFO cursor stack.
package scanner

import (
	"regexp"

	"github.com/cloudcmds/gramtree/internal/lineindex"
	"github.com/cloudcmds/gramtree/token"
)

// whitespaceRun matches the scanner's implicit whitespace skip: a run of
// spaces optionally followed by a single newline, or a bare newline.
var whitespaceRun = regexp.MustCompile(`^[ ]*\n|^[ ]+`)

// Scanner owns an immutable input string and the mutable cursor state used
// to drive a backtracking recursive-descent parse. A Scanner is never safe
// to share across concurrent parses (spec §5); callers needing concurrency
// must construct one Scanner per parse.
type Scanner struct {
	text string
	idx  *lineindex.Index

	cursor      int
	tasteCursor int
	cursorStack []int

	cache map[string]any
}

// New constructs a Scanner over the given input text. The text is never
// copied again or mutated after construction.
func New(text string) *Scanner {
	return &Scanner{
		text: text,
		idx:  lineindex.New(text),
	}
}

// Text returns the full input string.
func (s *Scanner) Text() string { return s.text }

// Cursor returns the current main cursor offset.
func (s *Scanner) Cursor() int { return s.cursor }

// SetCursor forcibly repositions the main cursor. Used by drivers to commit
// or abandon speculative advances; grammar-expression code should prefer
// PushCursor/PopCursor.
func (s *Scanner) SetCursor(pos int) { s.cursor = pos }

// AtEnd reports whether the cursor has reached the end of input.
func (s *Scanner) AtEnd() bool { return s.cursor >= len(s.text) }

// PushCursor snapshots the current cursor onto the LIFO stack.
func (s *Scanner) PushCursor() { s.cursorStack = append(s.cursorStack, s.cursor) }

// PopCursor restores the most recently pushed cursor and discards it. A pop
// against an empty stack is a no-op (invariant I3).
func (s *Scanner) PopCursor() {
	n := len(s.cursorStack)
	if n == 0 {
		return
	}
	s.cursor = s.cursorStack[n-1]
	s.cursorStack = s.cursorStack[:n-1]
}

// CurrentLine returns the 0-indexed line containing the main cursor.
func (s *Scanner) CurrentLine() int { return s.idx.LineAt(s.cursor) }

// CurrentCol returns the 0-indexed column of the main cursor within its
// line, clamped at zero.
func (s *Scanner) CurrentCol() int {
	col := s.cursor - s.LineStart(s.CurrentLine())
	if col < 0 {
		return 0
	}
	return col
}

// LineStart returns the absolute offset of the first character of line i.
func (s *Scanner) LineStart(i int) int { return s.idx.Span(i).Start }

// LineEnd returns the absolute offset just past the last character of line
// i (LineStart(i) plus the line's length, excluding the separating newline).
func (s *Scanner) LineEnd(i int) int { return s.idx.Span(i).End }

// LineIndent returns the count of leading space characters on line i.
func (s *Scanner) LineIndent(i int) int { return s.idx.Indent(i) }

// LineContentStart returns LineStart(i) + LineIndent(i).
func (s *Scanner) LineContentStart(i int) int { return s.idx.ContentStart(i) }

// LineContentEnd returns the offset just past the right-trimmed content of
// line i.
func (s *Scanner) LineContentEnd(i int) int { return s.idx.ContentEnd(i) }

// LinesInRange returns every line index whose span overlaps [a, b].
func (s *Scanner) LinesInRange(a, b int) []int { return s.idx.LinesInRange(a, b) }

// ControllingIndent walks backward from the main cursor over whitespace to
// find the preceding non-whitespace character — the "controlling" token for
// an indentation-sensitive block (spec §4.5) — and reports the line and
// indent it belongs to. ok is false if the input up to the cursor is empty
// or entirely whitespace.
func (s *Scanner) ControllingIndent() (line, indent int, ok bool) {
	pos := s.cursor
	for pos > 0 {
		c := s.text[pos-1]
		if c == ' ' || c == '\n' || c == '\t' || c == '\r' {
			pos--
			continue
		}
		break
	}
	if pos == 0 {
		return 0, 0, false
	}
	ln := s.idx.LineAt(pos - 1)
	return ln, s.idx.Indent(ln), true
}

// PeekContentLine looks forward from the main cursor, skipping whitespace
// without consuming it, and reports the line containing the next
// non-whitespace character and that line's indent. ok is false at EOF.
func (s *Scanner) PeekContentLine() (line, indent int, ok bool) {
	pos := s.skipWhitespace(s.cursor)
	if pos >= len(s.text) {
		return 0, 0, false
	}
	ln := s.idx.LineAt(pos)
	return ln, s.idx.Indent(ln), true
}

// Match is the non-empty result of a successful Taste or Eat.
type Match struct {
	Value string
}

// skipWhitespace advances cur past any run matched by whitespaceRun, ASCII
// spaces and newlines only. Horizontal tabs, CR, and other whitespace are
// deliberately not skipped (spec §4.1).
func (s *Scanner) skipWhitespace(cur int) int {
	for cur < len(s.text) {
		loc := whitespaceRun.FindStringIndex(s.text[cur:])
		if loc == nil || loc[0] != 0 {
			break
		}
		cur += loc[1]
	}
	return cur
}

// Taste attempts a non-consuming lookahead match of p: it resets the scratch
// tasteCursor to the main cursor and matches from there. It never touches
// the main cursor.
func (s *Scanner) Taste(p token.Pattern) (Match, bool) {
	s.tasteCursor = s.cursor
	return s.taste(p)
}

// taste performs the actual lookahead from the current tasteCursor value,
// without resetting it first. Taste and Eat set tasteCursor before calling it.
func (s *Scanner) taste(p token.Pattern) (Match, bool) {
	cur := s.skipWhitespace(s.tasteCursor)
	switch v := p.(type) {
	case token.Literal:
		lit := string(v)
		if lit == "" {
			return Match{}, false
		}
		if cur+len(lit) > len(s.text) {
			return Match{}, false
		}
		if s.text[cur:cur+len(lit)] != lit {
			return Match{}, false
		}
		s.tasteCursor = cur + len(lit)
		return Match{Value: lit}, true
	case *RegexPattern:
		loc := v.re.FindStringIndex(s.text[cur:])
		if loc == nil || loc[0] != 0 {
			return Match{}, false
		}
		matched := s.text[cur : cur+loc[1]]
		s.tasteCursor = cur + loc[1]
		return Match{Value: matched}, true
	default:
		return Match{}, false
	}
}

// Eat attempts to match p the same way Taste does, but on success commits
// the match: the main cursor advances past it and a Token is produced. On
// failure the main cursor is left exactly where it was.
func (s *Scanner) Eat(p token.Pattern) (token.Token, bool) {
	s.tasteCursor = s.cursor
	m, ok := s.taste(p)
	if !ok {
		return token.Token{}, false
	}
	start := s.tasteCursor - len(m.Value)
	line := s.idx.LineAt(start)
	col := start - s.LineStart(line)
	if col < 0 {
		col = 0
	}
	tok := token.Token{
		Pattern: p,
		Value:   m.Value,
		Start: token.Position{
			Line: line, Col: col, Offset: start, Indent: s.idx.Indent(line),
		},
	}
	s.cursor = start + len(m.Value)
	endLine := s.idx.LineAt(s.cursor)
	endCol := s.cursor - s.LineStart(endLine)
	if endCol < 0 {
		endCol = 0
	}
	tok.End = token.Position{
		Line: endLine, Col: endCol, Offset: s.cursor, Indent: s.idx.Indent(endLine),
	}
	return tok, true
}

// EatWhitespace consumes one run of whitespace (per skipWhitespace) if one
// is present at the cursor, returning its Token. This is the primitive the
// repetition loop in grammar.Expr.Parse uses to collect whitespace tokens
// between content matches.
func (s *Scanner) EatWhitespace() (token.Token, bool) {
	start := s.cursor
	loc := whitespaceRun.FindStringIndex(s.text[start:])
	if loc == nil || loc[0] != 0 {
		return token.Token{}, false
	}
	value := s.text[start : start+loc[1]]
	line := s.idx.LineAt(start)
	col := start - s.LineStart(line)
	tok := token.Token{
		Pattern: whitespacePattern{},
		Value:   value,
		Start:   token.Position{Line: line, Col: col, Offset: start, Indent: s.idx.Indent(line)},
	}
	s.cursor = start + len(value)
	endLine := s.idx.LineAt(s.cursor)
	tok.End = token.Position{
		Line: endLine, Col: s.cursor - s.LineStart(endLine), Offset: s.cursor, Indent: s.idx.Indent(endLine),
	}
	return tok, true
}

type whitespacePattern struct{}

func (whitespacePattern) Describe() string { return "whitespace" }

// RegexPattern adapts a user-supplied regular expression into a
// token.Pattern. Authors should construct one via NewPattern, which performs
// the normalization of spec §6: a leading ^ is stripped and the pattern is
// always matched anchored at the current cursor.
type RegexPattern struct {
	re   *regexp.Regexp
	desc string
}

// NewPattern compiles src (after stripping a leading '^', since anchoring is
// always performed by the scanner rather than by the regex itself) into a
// RegexPattern. Panics if src does not compile, mirroring regexp.MustCompile
// since grammar authors supply patterns at init time.
func NewPattern(src string) *RegexPattern {
	trimmed := src
	if len(trimmed) > 0 && trimmed[0] == '^' {
		trimmed = trimmed[1:]
	}
	return &RegexPattern{re: regexp.MustCompile("^(?:" + trimmed + ")"), desc: src}
}

func (p *RegexPattern) Describe() string { return p.desc }

// CacheGet/CacheSet expose a keyed scratch cache for grammar-author
// Packrat-style memoization. The core driver never consults this cache
// itself; it is purely an author convenience hook (spec §9).
func (s *Scanner) CacheGet(key string) (any, bool) {
	if s.cache == nil {
		return nil, false
	}
	v, ok := s.cache[key]
	return v, ok
}

func (s *Scanner) CacheSet(key string, value any) {
	if s.cache == nil {
		s.cache = make(map[string]any)
	}
	s.cache[key] = value
}
