// construct.go — the Report container and its constructors.
//
// A Report owns one error plus the Handler that renders it. It is the value
// callers return from functions and print at the top of a program:
//
//	if err := run(); err != nil {
//		fmt.Fprintf(os.Stderr, "Error: %+v\n", xgxreport.From(err))
//		os.Exit(1)
//	}
//
// Notes:
//   - Copy-on-write everywhere: Wrap and WithHandler return a fresh value.
//   - A Report is transparent to the chain walker: its text is the inner
//     error's text and its cause is the inner error's cause, so the inner
//     error never shows up twice in a report.
package xgxreport

import (
	"errors"
	"fmt"
	"io"
)

// Report is an error paired with the Handler that renders it.
//
// The zero value is not usable; build Reports with New, Errorf, From or Wrap.
type Report struct {
	err     error
	handler Handler
}

// New returns a Report whose root error has the text msg.
func New(msg string) *Report {
	return &Report{err: errors.New(msg)}
}

// Errorf returns a Report around fmt.Errorf(format, args...).
//
// A %w operand becomes the cause, but its text also stays in the formatted
// message; use Wrap to keep each message on its own line of the report.
func Errorf(format string, args ...any) *Report {
	return &Report{err: fmt.Errorf(format, args...)}
}

// From converts any error into a Report.
//   - nil → nil
//   - *Report → returned as-is
//   - other error → wrapped with the default handler
func From(err error) *Report {
	if err == nil {
		return nil
	}
	if r, ok := err.(*Report); ok {
		return r
	}
	return &Report{err: err}
}

// Error returns the root error's own text, without its causes.
func (r *Report) Error() string { return r.err.Error() }

// Unwrap returns the direct cause of the root error. The root itself is
// reachable through Inner, Is and As.
func (r *Report) Unwrap() error { return Cause(r.err) }

// Is reports whether the root error or anything in its chain matches target.
func (r *Report) Is(target error) bool { return errors.Is(r.err, target) }

// As finds the first error in the root's chain that matches target.
func (r *Report) As(target any) bool { return errors.As(r.err, target) }

// Inner returns the root error the Report was built from.
func (r *Report) Inner() error { return r.err }

// Wrap returns a NEW Report whose root is a context layer with text msg and
// whose cause is r's root. The handler is kept.
func (r *Report) Wrap(msg string) *Report {
	n := r.clone()
	n.err = &contextErr{msg: msg, cause: r.err}
	return n
}

// Wrapf is like Wrap with a formatted message.
func (r *Report) Wrapf(format string, args ...any) *Report {
	return r.Wrap(fmt.Sprintf(format, args...))
}

// WithHandler returns a NEW Report rendered by h. A nil h restores the
// default handler.
func (r *Report) WithHandler(h Handler) *Report {
	n := r.clone()
	n.handler = h
	return n
}

// Handler returns the handler that renders r.
func (r *Report) Handler() Handler {
	if r.handler == nil {
		return defaultHandler
	}
	return r.handler
}

// Render writes r to w with its handler.
func (r *Report) Render(w io.Writer, alternate bool) error {
	return r.Handler().Render(w, r.err, alternate)
}

func (r *Report) clone() *Report {
	n := *r
	return &n
}

var (
	_ error         = (*Report)(nil)
	_ fmt.Formatter = (*Report)(nil)
	_ error         = (*contextErr)(nil)
	_ fmt.Formatter = (*contextErr)(nil)
)
