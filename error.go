// Package xgxreport renders an error and its chain of causes as a plain,
// human-readable report. It focuses on a deterministic layout and nothing
// else, while remaining interoperable with the Go standard library.
//
// Design tenets:
//   - Interop-first: causes are discovered through Unwrap, so any error built
//     with fmt.Errorf("%w"), errors.Join or github.com/pkg/errors participates.
//   - Minimal surface: no stacks, no source locations, no colors.
//   - Non-mutating ergonomics: Report builders return a new value.
//   - Borrow only: rendering reads errors and never retains them.
package xgxreport

import "io"

// Handler renders an error into a sink.
//
// alternate requests the raw structural dump of err instead of the
// human report. Implementations MUST return the first write error of w
// unchanged and MUST NOT retain err or w after Render returns.
//
// Handlers hold no per-call state, so one value may serve concurrent renders
// into distinct sinks.
type Handler interface {
	Render(w io.Writer, err error, alternate bool) error
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(w io.Writer, err error, alternate bool) error

// Render calls f(w, err, alternate).
func (f HandlerFunc) Render(w io.Writer, err error, alternate bool) error {
	return f(w, err, alternate)
}

// defaultHandler serves Render, Sprint and Reports built without WithHandler.
// It is never reassigned.
var defaultHandler Handler = Minimal{}

var (
	_ Handler = Minimal{}
	_ Handler = HandlerFunc(nil)
)
