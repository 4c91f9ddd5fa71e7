// format.go — fmt.Formatter implementations.
//
// Behavior:
//
//   %s, %v   → the root error's own text (Error()).
//   %+v      → the full report:
//                <root text>
//
//                Caused by:
//                    0: <cause>
//                    1: <cause of cause>
//   %#v      → alternate form: the root error's structure, no report layout.
//   %q       → quoted Error().
//
// Formatting paths ignore write errors; fmt offers no way to return them.
// Callers that need the error use Render.
package xgxreport

import (
	"fmt"
	"io"
)

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	_, _ = io.WriteString(w, e.Error())
}

// formatError dispatches a verb for e, rendering reports with h.
func formatError(s fmt.State, verb rune, e error, h Handler) {
	switch verb {
	case 'v':
		if s.Flag('#') {
			_ = h.Render(s, e, true)
			return
		}
		if s.Flag('+') {
			_ = h.Render(s, e, false)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%s)", verb, e.Error())
	}
}

// Format implements fmt.Formatter. The report is rendered for r's root error
// with r's handler.
func (r *Report) Format(s fmt.State, verb rune) {
	formatError(s, verb, r.err, r.Handler())
}
