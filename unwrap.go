// unwrap.go — the causal chain walker.
//
// Scope:
//   - Resolve the single direct cause of an error (Cause).
//   - Walk cause → cause-of-cause → … lazily (Chain) or eagerly (Causes).
//
// Direct-cause resolution, first match wins:
//   - Unwrap() error    (fmt.Errorf("%w"), Wrap, most wrappers). A nil result
//     means "no cause"; other forms are not consulted.
//   - Unwrap() []error  (errors.Join, multi-%w). Followed only when exactly one
//     child is non-nil; a real fan-out has no single direct cause, and the
//     joined Error() text already lists every child.
//   - Cause() error     (github.com/pkg/errors causers, legacy wrappers).
//
// Cycles:
//   - A cause graph SHOULD be acyclic, but a malformed one must not hang a
//     render. The walk stops at the first error already seen, using a dual
//     guard because interface values whose dynamic type is not comparable
//     panic as map keys:
//       • seenPtr  (map[uintptr]struct{}) — pointer identity, checked first
//       • seenErr  (map[error]struct{})   — other comparable dynamic types
//     Non-comparable, non-pointer dynamics are bounded by the depth cap.
package xgxreport

import (
	"iter"
	"reflect"
)

// single/multi unwrap interfaces (stdlib-compatible) and the pkg/errors causer
type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }
type causer interface{ Cause() error }

// defaultMaxDepth caps a walk when the visited set cannot recognise a loop.
const defaultMaxDepth = 1 << 12

// ---------- small helpers ----------------------------------------------------

// fastIsPointer returns true if err's dynamic type is a pointer.
// Fast path for package types; fallback to reflect for others.
func fastIsPointer(err error) bool {
	switch err.(type) {
	case *Report, *contextErr:
		return true
	}
	return reflect.ValueOf(err).Kind() == reflect.Ptr
}

// isComparable reports whether err's dynamic type is safe as a map key.
func isComparable(err error) bool {
	return reflect.TypeOf(err).Comparable()
}

// ptrID returns a pointer identity for pointer-typed dynamic errors.
func ptrID(err error) (uintptr, bool) {
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Pointer(), true
	}
	return 0, false
}

// visited remembers the errors a single walk has produced.
type visited struct {
	seenErr map[error]struct{}
	seenPtr map[uintptr]struct{}
}

func newVisited() *visited {
	return &visited{
		seenErr: make(map[error]struct{}, 8),
		seenPtr: make(map[uintptr]struct{}, 8),
	}
}

// mark returns true if err was newly marked; false if already seen.
// Pointer identity is preferred: pointers always hash.
func (v *visited) mark(err error) bool {
	if fastIsPointer(err) {
		if id, ok := ptrID(err); ok {
			if _, dup := v.seenPtr[id]; dup {
				return false
			}
			v.seenPtr[id] = struct{}{}
			return true
		}
	}
	if isComparable(err) {
		fresh, ok := v.markValue(err)
		if ok {
			return fresh
		}
	}
	// Neither hashable nor a pointer: allow; bounded by the depth cap.
	return true
}

// markValue records a comparable err. ok is false when hashing panicked, which
// happens when a comparable struct holds an unhashable value in an interface
// field.
func (v *visited) markValue(err error) (fresh, ok bool) {
	defer func() {
		if recover() != nil {
			fresh, ok = true, false
		}
	}()
	if _, dup := v.seenErr[err]; dup {
		return false, true
	}
	v.seenErr[err] = struct{}{}
	return true, true
}

// ---------- API: Cause / Chain / Causes --------------------------------------

// Cause returns the direct cause of err, or nil when err is nil or has none.
func Cause(err error) error {
	switch e := err.(type) {
	case nil:
		return nil
	case singleUnwrapper:
		return e.Unwrap()
	case multiUnwrapper:
		var only error
		for _, c := range e.Unwrap() {
			if c == nil {
				continue
			}
			if only != nil {
				return nil
			}
			only = c
		}
		return only
	case causer:
		return e.Cause()
	}
	return nil
}

// Chain returns the causes of err in causal order: the direct cause first,
// the root cause last. err itself is not part of the sequence.
//
// The sequence is lazy and finite; each range over it walks the chain again
// from err, so it reproduces the same elements every time.
func Chain(err error) iter.Seq[error] {
	return walk(err, defaultMaxDepth)
}

// Causes is like Chain but returns the materialized sequence. It returns nil
// when err has no cause.
func Causes(err error) []error {
	return collect(err, defaultMaxDepth)
}

func walk(err error, maxDepth int) iter.Seq[error] {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	return func(yield func(error) bool) {
		if err == nil {
			return
		}
		seen := newVisited()
		seen.mark(err)
		cur := Cause(err)
		for depth := 0; cur != nil && depth < maxDepth; depth++ {
			if !seen.mark(cur) {
				return
			}
			if !yield(cur) {
				return
			}
			cur = Cause(cur)
		}
	}
}

func collect(err error, maxDepth int) []error {
	var out []error
	for e := range walk(err, maxDepth) {
		out = append(out, e)
	}
	return out
}
