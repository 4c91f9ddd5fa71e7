package xgxreport

import (
	"bytes"
	"io"
	"strconv"
	"strings"
)

// indentWidth is the fixed indentation of every line under "Caused by:".
const indentWidth = 4

var (
	indentUniform = strings.Repeat(" ", indentWidth)
	newline       = []byte{'\n'}
)

// indenter is a line-prefixing io.Writer decorator. It lives for exactly one
// chain element: the first line of the element gets first, every later line
// gets rest. Line state carries across Write calls.
//
// Empty continuation lines are written bare so the report has no trailing
// whitespace. The first line always gets its prefix (trimmed when the line is
// empty) so a numbered label is never lost.
type indenter struct {
	w           io.Writer
	first, rest string
	line        int
	needsIndent bool
}

func newIndenter(w io.Writer, first, rest string) *indenter {
	return &indenter{w: w, first: first, rest: rest, needsIndent: true}
}

// uniformIndenter prefixes every line with the fixed indent.
func uniformIndenter(w io.Writer) *indenter {
	return newIndenter(w, indentUniform, indentUniform)
}

// numberedIndenter labels the first line "    n: " and aligns continuation
// lines under the text that follows the label.
func numberedIndenter(w io.Writer, n int) *indenter {
	first := indentUniform + strconv.Itoa(n) + ": "
	return newIndenter(w, first, strings.Repeat(" ", len(first)))
}

// Write implements io.Writer. The returned count is the number of bytes of p
// consumed, not the number written to the underlying sink.
func (in *indenter) Write(p []byte) (int, error) {
	consumed := 0
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		seg := p
		if i >= 0 {
			seg = p[:i]
		}
		if len(seg) > 0 {
			if err := in.indent(false); err != nil {
				return consumed, err
			}
			if _, err := in.w.Write(seg); err != nil {
				return consumed, err
			}
		}
		consumed += len(seg)
		if i < 0 {
			break
		}
		if in.line == 0 {
			if err := in.indent(true); err != nil {
				return consumed, err
			}
		}
		if _, err := in.w.Write(newline); err != nil {
			return consumed, err
		}
		consumed++
		in.line++
		in.needsIndent = true
		p = p[i+1:]
	}
	return consumed, nil
}

// indent writes the pending prefix for the current line, if any.
func (in *indenter) indent(empty bool) error {
	if !in.needsIndent {
		return nil
	}
	in.needsIndent = false
	prefix := in.rest
	if in.line == 0 {
		prefix = in.first
	}
	if empty {
		prefix = strings.TrimRight(prefix, " ")
	}
	if prefix == "" {
		return nil
	}
	_, err := io.WriteString(in.w, prefix)
	return err
}

// Close flushes the label of an element whose text was empty. It does not
// close the underlying writer.
func (in *indenter) Close() error {
	if in.line == 0 {
		return in.indent(true)
	}
	return nil
}

// writeIndented writes text through in and flushes it. After a failed write
// nothing more reaches the sink.
func writeIndented(in *indenter, text string) error {
	if _, err := io.WriteString(in, text); err != nil {
		return err
	}
	return in.Close()
}
