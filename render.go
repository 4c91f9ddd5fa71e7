package xgxreport

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// causedByHeader opens the cause section: a blank line, then the header line.
const causedByHeader = "\n\nCaused by:"

// Minimal is the default Handler: the error's own text followed by an indented
// "Caused by:" section, with no stacks, locations or colors.
//
//	db error
//
//	Caused by:
//	    0: connection reset
//	    1: socket closed
//
// Causes are numbered only when the direct cause has a cause of its own; a
// single cause is indented without a label.
type Minimal struct {
	// MaxDepth bounds the number of causes listed. Zero or negative selects
	// the default of 4096, which only matters for cause chains that loop
	// through non-comparable values.
	MaxDepth int
}

// Render implements Handler.
func (h Minimal) Render(w io.Writer, err error, alternate bool) error {
	if err == nil {
		_, werr := io.WriteString(w, "<nil>")
		return werr
	}
	if alternate {
		return dump(w, err)
	}

	if _, werr := io.WriteString(w, err.Error()); werr != nil {
		return werr
	}

	causes := collect(err, h.MaxDepth)
	if len(causes) == 0 {
		return nil
	}
	if _, werr := io.WriteString(w, causedByHeader); werr != nil {
		return werr
	}

	numbered := Cause(causes[0]) != nil
	for n, cause := range causes {
		if _, werr := w.Write(newline); werr != nil {
			return werr
		}
		in := uniformIndenter(w)
		if numbered {
			in = numberedIndenter(w, n)
		}
		if werr := writeIndented(in, cause.Error()); werr != nil {
			return werr
		}
	}
	return nil
}

// Render writes the report for err to w with the default handler. When
// alternate is true it writes the structural dump of err instead.
//
// The first write error of w is returned unchanged; w may then hold a partial
// report.
func Render(w io.Writer, err error, alternate bool) error {
	return defaultHandler.Render(w, err, alternate)
}

// Sprint returns the report for err as a string.
func Sprint(err error) string {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	// ByteBuffer writes never fail.
	_ = Render(bb, err, false)
	return bb.String()
}
