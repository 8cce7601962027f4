// Package tracelog provides an opt-in structured trace of the node parse
// driver, the zerolog-based analogue of the `debug`-flag `log.Printf` trace
// line in hand-rolled recursive-descent parsers (see DESIGN.md grounding).
// Tracing is disabled by default and never required for correctness.
package tracelog

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var enabled atomic.Bool

// Logger returns the package-level zerolog.Logger used for driver tracing.
func Logger() *zerolog.Logger { return &logger }

// Enable turns driver tracing on or off. Disabled by default.
func Enable(on bool) { enabled.Store(on) }

// Enabled reports whether tracing is currently on.
func Enabled() bool { return enabled.Load() }

// Trace logs one node-kind Shape position being attempted, when enabled.
func Trace(kindName string, shapeIndex int, cursor int) {
	if !enabled.Load() {
		return
	}
	logger.Debug().
		Str("kind", kindName).
		Int("shape_index", shapeIndex).
		Int("cursor", cursor).
		Msg("parse attempt")
}
