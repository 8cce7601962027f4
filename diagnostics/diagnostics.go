// Package diagnostics generalizes the teacher's errors/errz packages to the
// one validation catalogue this grammar core defines (spec §7): a
// missing-element diagnostic per synthetic token left behind by a partial
// parse under allowIncompleteParse. The core itself never raises; Report is
// how a caller collects and presents what node.Node.Validate found.
package diagnostics

import (
	"fmt"

	"github.com/cloudcmds/gramtree/node"
	multierror "github.com/hashicorp/go-multierror"
)

// Kind categorizes a Diagnostic. The core currently only produces
// MissingElement; ScanError is reserved for embedders that want to surface
// a scanner-level anomaly (the scanner itself is total and never raises,
// per spec §4.1, so nothing in this package constructs one today).
type Kind int

const (
	MissingElement Kind = iota
	ScanError
)

func (k Kind) String() string {
	switch k {
	case MissingElement:
		return "missing element"
	case ScanError:
		return "scan error"
	default:
		return "diagnostic"
	}
}

// Diagnostic is one reportable finding: a kind, a source location, and a
// message, matching spec §7's {line, col, message} triple.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Col     int
	Message string
}

// Error implements the error interface so a Diagnostic can be wrapped by a
// multierror.Error alongside its peers.
func (d Diagnostic) Error() string {
	loc := fmt.Sprintf("%d:%d", d.Line+1, d.Col+1)
	if d.Message == "" {
		return fmt.Sprintf("%s: %s", loc, d.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", loc, d.Kind, d.Message)
}

// FromNode walks n's subtree (via node.Node.Validate) and converts every
// missing-element finding into a Diagnostic.
func FromNode(n *node.Node) []Diagnostic {
	found := n.Validate()
	out := make([]Diagnostic, 0, len(found))
	for _, f := range found {
		out = append(out, Diagnostic{
			Kind:    MissingElement,
			Line:    f.Line,
			Col:     f.Col,
			Message: f.Message,
		})
	}
	return out
}

// Report aggregates Diagnostics using hashicorp/go-multierror, the same
// multi-error dependency the teacher's own go.mod declares but left
// unexercised, in place of the teacher's hand-rolled parser.Errors slice
// wrapper.
type Report struct {
	merr *multierror.Error
}

// NewReport builds a Report from a slice of Diagnostics. Returns nil if
// diags is empty, matching the teacher's NewErrors(nil)-is-nil convention.
func NewReport(diags []Diagnostic) *Report {
	if len(diags) == 0 {
		return nil
	}
	r := &Report{merr: &multierror.Error{}}
	for _, d := range diags {
		r.merr = multierror.Append(r.merr, d)
	}
	return r
}

// Error implements the error interface.
func (r *Report) Error() string {
	if r == nil || r.merr == nil {
		return ""
	}
	return r.merr.Error()
}

// Diagnostics returns the underlying Diagnostic slice.
func (r *Report) Diagnostics() []Diagnostic {
	if r == nil || r.merr == nil {
		return nil
	}
	out := make([]Diagnostic, 0, len(r.merr.Errors))
	for _, e := range r.merr.Errors {
		if d, ok := e.(Diagnostic); ok {
			out = append(out, d)
		}
	}
	return out
}

// Count returns the number of diagnostics in the report.
func (r *Report) Count() int {
	if r == nil || r.merr == nil {
		return 0
	}
	return len(r.merr.Errors)
}
