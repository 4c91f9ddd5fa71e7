// wrap.go — attach a context message to any error.
//
// Purpose
//   - Add a layer whose own text is the message alone and whose cause is the
//     wrapped error, so a report lists the original under "Caused by:" rather
//     than repeating it inline the way fmt.Errorf("...: %w") does.
//   - Preserve interop with the standard library: the layer unwraps, so
//     errors.Is/As see the original.
package xgxreport

import "fmt"

// contextErr is one context layer in a chain.
type contextErr struct {
	msg   string
	cause error
}

func (e *contextErr) Error() string { return e.msg }
func (e *contextErr) Unwrap() error { return e.cause }

// Format prints the full report for %+v and the dump for %#v, so a wrapped
// error is useful with plain fmt verbs even outside a Report.
func (e *contextErr) Format(s fmt.State, verb rune) {
	formatError(s, verb, e, defaultHandler)
}

// Wrap returns err with msg attached as its new top-level text. It returns
// nil if err is nil.
//
// If err is a *Report the result keeps its handler.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	if r, ok := err.(*Report); ok {
		return r.Wrap(msg)
	}
	return &Report{err: &contextErr{msg: msg, cause: err}}
}

// Wrapf is like Wrap with a formatted message. It returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
