// predicates.go — small questions about a cause chain.
//
// Scope:
//   • Answer "how deep", "what started it" and "is X in there" over the same
//     chain the report prints.
//   • Interop-first: Has defers to errors.Is so joins and custom Is methods
//     keep their stdlib meaning.
package xgxreport

import "errors"

// RootCause returns the last error of err's chain, or err itself when it has
// no cause. If err is nil, RootCause returns nil.
func RootCause(err error) error {
	root := err
	for e := range Chain(err) {
		root = e
	}
	return root
}

// Depth returns the number of causes below err, that is, the number of
// entries a report of err lists under "Caused by:".
func Depth(err error) int {
	n := 0
	for range Chain(err) {
		n++
	}
	return n
}

// Numbered reports whether a report of err labels its causes with indexes.
// That is the case when the direct cause has a cause of its own.
func Numbered(err error) bool {
	return Cause(Cause(err)) != nil
}

// Has reports whether target appears anywhere in err's unwrap graph.
// It wraps errors.Is with nil-safety.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
