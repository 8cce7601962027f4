// Package lineindex precomputes line/column/indent lookups over an
// immutable input string, once at construction, for its owning scanner.
package lineindex

import "sort"

// Span is the half-open-by-content [Start, End) offset range of one line,
// excluding its terminating newline.
type Span struct {
	Start int
	End   int
}

// Index holds the precomputed per-line offsets and indents for a fixed input
// string. It never mutates after New returns.
type Index struct {
	lines   []string
	offsets []Span
	indents []int
}

// New splits text at line feeds and precomputes each line's offsets and
// leading-space indent.
func New(text string) *Index {
	idx := &Index{}
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			line := text[start:i]
			idx.lines = append(idx.lines, line)
			idx.offsets = append(idx.offsets, Span{Start: start, End: start + len(line)})
			idx.indents = append(idx.indents, countIndent(line))
			start = i + 1
		}
	}
	if len(idx.lines) == 0 {
		idx.lines = []string{""}
		idx.offsets = []Span{{Start: 0, End: 0}}
		idx.indents = []int{0}
	}
	return idx
}

func countIndent(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// LineCount returns the number of lines in the indexed text.
func (idx *Index) LineCount() int { return len(idx.lines) }

// Line returns the raw content of line i, excluding its newline.
func (idx *Index) Line(i int) string { return idx.lines[i] }

// Span returns the [start, end) offsets of line i.
func (idx *Index) Span(i int) Span { return idx.offsets[i] }

// Indent returns the count of leading space characters on line i.
func (idx *Index) Indent(i int) int { return idx.indents[i] }

// LineAt performs a binary search for the line containing offset, using the
// rule that a position exactly at a line's End belongs to that line (a
// trailing position coincident with a newline is the preceding line, not the
// following one).
func (idx *Index) LineAt(offset int) int {
	n := len(idx.offsets)
	i := sort.Search(n, func(i int) bool { return idx.offsets[i].End >= offset })
	if i >= n {
		return n - 1
	}
	return i
}

// ContentStart returns the offset of the first non-space character on line
// i, or its End if the line is entirely whitespace.
func (idx *Index) ContentStart(i int) int {
	return idx.offsets[i].Start + idx.indents[i]
}

// ContentEnd returns the offset just past the last non-space character on
// line i (right-trimmed), or Start if the line is entirely whitespace.
func (idx *Index) ContentEnd(i int) int {
	line := idx.lines[i]
	end := len(line)
	for end > 0 && line[end-1] == ' ' {
		end--
	}
	return idx.offsets[i].Start + end
}

// LinesInRange returns every line index whose span overlaps [a, b]
// inclusively.
func (idx *Index) LinesInRange(a, b int) []int {
	var out []int
	for i, span := range idx.offsets {
		if span.End >= a && span.Start <= b {
			out = append(out, i)
		}
	}
	return out
}
