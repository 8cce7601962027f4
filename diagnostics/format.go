package diagnostics

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders Diagnostics in the Rust-style "error: msg / --> loc /
// source snippet with caret" layout the teacher's errors.Formatter uses,
// adapted to use github.com/fatih/color (the teacher's own direct
// dependency) in place of its internal, undeclared wonton/color import.
type Formatter struct {
	UseColor bool
	// Filename is included in the location line when non-empty.
	Filename string
}

// NewFormatter creates a Formatter. useColor should generally follow
// whether stdout/stderr is a terminal (see cmd/gramtree for the isatty
// check via fatih/color's own NoColor default).
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

var (
	colorKind   = color.New(color.FgRed, color.Bold)
	colorArrow  = color.New(color.FgCyan)
	colorLineNo = color.New(color.FgHiBlack)
	colorCaret  = color.New(color.FgHiRed, color.Bold)
)

func (f *Formatter) paint(c *color.Color, s string) string {
	if !f.UseColor {
		return s
	}
	return c.Sprint(s)
}

// Format renders a single Diagnostic. sourceLine, if non-empty, is the raw
// text of d.Line, used to draw a caret under the offending column.
func (f *Formatter) Format(d Diagnostic, sourceLine string) string {
	var b strings.Builder

	header := fmt.Sprintf("%s: %s", d.Kind.String(), d.Message)
	if d.Message == "" {
		header = d.Kind.String()
	}
	b.WriteString(f.paint(colorKind, header))
	b.WriteString("\n")

	loc := fmt.Sprintf("%d:%d", d.Line+1, d.Col+1)
	if f.Filename != "" {
		loc = f.Filename + ":" + loc
	}
	b.WriteString("  ")
	b.WriteString(f.paint(colorArrow, "--> "))
	b.WriteString(loc)
	b.WriteString("\n")

	if sourceLine != "" {
		lineNo := fmt.Sprintf("%d", d.Line+1)
		b.WriteString(f.paint(colorLineNo, lineNo+" | "))
		b.WriteString(sourceLine)
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", len(lineNo)+3+d.Col))
		b.WriteString(f.paint(colorCaret, "^"))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatAll renders every diagnostic in a Report, looking up each one's
// source line from lines (e.g. strings.Split(input, "\n")).
func (f *Formatter) FormatAll(r *Report, lines []string) string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	for _, d := range r.Diagnostics() {
		var src string
		if d.Line >= 0 && d.Line < len(lines) {
			src = lines[d.Line]
		}
		b.WriteString(f.Format(d, src))
	}
	return b.String()
}
