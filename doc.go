// doc.go — package documentation for xgx-report
//
// Package xgxreport prints an error together with its causes as a plain,
// deterministic report. It captures nothing (no stacks, no source locations)
// and is meant as the baseline against which richer renderers are compared.
//
// # Report Layout
//
// An error without a cause renders as its own text:
//
//	config invalid
//
// An error whose single cause has no further cause gets an unnumbered,
// indented "Caused by:" section:
//
//	config invalid
//
//	Caused by:
//	    missing field `name`
//
// Deeper chains are numbered from 0, and continuation lines of a multi-line
// cause align under its text, not under its label:
//
//	db error
//
//	Caused by:
//	    0: connection reset
//	    1: socket closed
//	    2: line A
//	       line B
//
// Numbering is decided once, from whether the direct cause has a cause of its
// own.
//
// # Causes
//
// The chain is found by following one direct cause at a time:
//
//	+------------------------------+------------------------------------------+
//	| Error implements             | Direct cause                             |
//	+------------------------------+------------------------------------------+
//	| Unwrap() error               | its result                               |
//	| Unwrap() []error             | the only non-nil child, else none        |
//	| Cause() error (pkg/errors)   | its result                               |
//	+------------------------------+------------------------------------------+
//
// A chain that loops back on itself stops at the first repeated error.
//
// # Formatting
//
// Report and the errors returned by Wrap implement fmt.Formatter:
//   - `%v`, `%s`   → the error's own text only
//   - `%+v`        → the full report
//   - `%#v`        → alternate form: the error's Go structure, no report layout
//   - `%q`         → quoted own text
//
// # Context Messages
//
// fmt.Errorf("loading config: %w", err) repeats err's text inside the new
// message, so a report would print it twice. Wrap adds a layer whose text is
// the message alone:
//
//	err := xgxreport.Wrap(io.ErrUnexpectedEOF, "reading header")
//	fmt.Printf("%+v\n", err)
//	// reading header
//	//
//	// Caused by:
//	//     unexpected EOF
//
// # Concurrency
//
// Rendering is synchronous and keeps no state between calls. Renders of
// different errors into different sinks may run concurrently; writes from
// several renders into one sink must be serialized by the caller.
package xgxreport
