// unwrap_test.go — verification of Cause / Chain / Causes semantics.
package xgxreport

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

// ---------- helpers -----------------------------------------------------------

type leafErr struct{ s string }

func (e leafErr) Error() string { return e.s }

// pointer-typed single wrapper with a fixed message (safe inside cycles)
type loopErr struct {
	msg  string
	next error
}

func (e *loopErr) Error() string { return e.msg }
func (e *loopErr) Unwrap() error { return e.next }

// legacy causer: exposes Cause() only, like pkg/errors before Unwrap existed
type legacyErr struct {
	msg   string
	cause error
}

func (e *legacyErr) Error() string { return e.msg }
func (e *legacyErr) Cause() error  { return e.cause }

// comparable type that panics when hashed if inner holds a slice
type ifaceErr struct {
	inner any
	cause error
}

func (e ifaceErr) Error() string { return "iface" }
func (e ifaceErr) Unwrap() error { return e.cause }

// build a chain root → c1 → … → cN where every link has its own text
func makeChain(msgs ...string) error {
	var err error
	for i := len(msgs) - 1; i >= 0; i-- {
		err = &loopErr{msg: msgs[i], next: err}
	}
	return err
}

func texts(errs []error) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ---------- tests: Cause ------------------------------------------------------

func TestCause_Forms(t *testing.T) {
	t.Parallel()

	leaf := leafErr{"leaf"}
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"leaf has no cause", leaf, nil},
		{"fmt %w", fmt.Errorf("ctx: %w", leaf), leaf},
		{"Unwrap() error returning nil", &loopErr{msg: "top"}, nil},
		{"join of one", errors.Join(nil, leaf, nil), leaf},
		{"join of two has no single cause", errors.Join(leaf, leafErr{"other"}), nil},
		{"legacy causer", &legacyErr{msg: "top", cause: leaf}, leaf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cause(tt.err); got != tt.want {
				t.Fatalf("Cause(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestCause_PkgErrors(t *testing.T) {
	t.Parallel()

	base := pkgerrors.New("base")
	withMsg := pkgerrors.WithMessage(base, "context")
	if got := Cause(withMsg); got != base {
		t.Fatalf("Cause(WithMessage) = %v, want base", got)
	}

	wrapped := pkgerrors.Wrap(base, "context")
	got := texts(Causes(wrapped))
	want := []string{"context: base", "base"}
	if !equalStrings(got, want) {
		t.Fatalf("Causes(pkgerrors.Wrap) = %q, want %q", got, want)
	}
}

// ---------- tests: Chain / Causes ---------------------------------------------

func TestChain_NilAndLeafAreEmpty(t *testing.T) {
	t.Parallel()
	for _, err := range []error{nil, leafErr{"x"}, errors.New("y")} {
		for range Chain(err) {
			t.Fatalf("Chain(%v) yielded an element, want none", err)
		}
		if got := Causes(err); got != nil {
			t.Fatalf("Causes(%v) = %v, want nil", err, got)
		}
	}
}

func TestChain_ExcludesStartAndKeepsCausalOrder(t *testing.T) {
	t.Parallel()
	err := makeChain("root", "c0", "c1", "c2")
	got := texts(Causes(err))
	want := []string{"c0", "c1", "c2"}
	if !equalStrings(got, want) {
		t.Fatalf("Causes = %q, want %q", got, want)
	}
}

func TestChain_RestartableByReinvocation(t *testing.T) {
	t.Parallel()
	err := makeChain("root", "a", "b")

	var first, second []string
	for e := range Chain(err) {
		first = append(first, e.Error())
	}
	for e := range Chain(err) {
		second = append(second, e.Error())
	}
	if !equalStrings(first, second) || len(first) != 2 {
		t.Fatalf("two walks differ: %q vs %q", first, second)
	}
}

func TestChain_StopsEarlyOnBreak(t *testing.T) {
	t.Parallel()
	err := makeChain("root", "a", "b", "c")
	count := 0
	for range Chain(err) {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
}

func TestChain_SelfCycleIsEmpty(t *testing.T) {
	t.Parallel()
	self := &loopErr{msg: "self"}
	self.next = self
	if got := Causes(self); len(got) != 0 {
		t.Fatalf("Causes(self-loop) = %q, want empty", texts(got))
	}
}

func TestChain_TwoNodeCycleTerminates(t *testing.T) {
	t.Parallel()
	a := &loopErr{msg: "a"}
	b := &loopErr{msg: "b", next: a}
	a.next = b

	got := texts(Causes(a))
	want := []string{"b"}
	if !equalStrings(got, want) {
		t.Fatalf("Causes(a↔b) = %q, want %q", got, want)
	}
}

func TestChain_CycleBelowRootTerminates(t *testing.T) {
	t.Parallel()
	x := &loopErr{msg: "x"}
	y := &loopErr{msg: "y", next: x}
	x.next = y
	root := &loopErr{msg: "root", next: x}

	got := texts(Causes(root))
	want := []string{"x", "y"}
	if !equalStrings(got, want) {
		t.Fatalf("Causes = %q, want %q", got, want)
	}
}

func TestChain_UnhashableComparableDoesNotPanic(t *testing.T) {
	t.Parallel()
	leaf := leafErr{"leaf"}
	err := ifaceErr{inner: []int{1, 2}, cause: ifaceErr{inner: map[string]int{}, cause: leaf}}

	got := Causes(err)
	if len(got) != 2 || got[1] != leaf {
		t.Fatalf("Causes = %v, want [iface leaf]", got)
	}
}

func TestWalk_DepthCap(t *testing.T) {
	t.Parallel()
	err := makeChain("root", "a", "b", "c", "d")
	got := texts(collect(err, 2))
	want := []string{"a", "b"}
	if !equalStrings(got, want) {
		t.Fatalf("collect(depth=2) = %q, want %q", got, want)
	}
	if n := len(collect(err, 0)); n != 4 {
		t.Fatalf("collect(depth=0) len = %d, want default cap (4 causes)", n)
	}
}

func TestChain_ThroughReportIsTransparent(t *testing.T) {
	t.Parallel()
	inner := makeChain("inner", "cause")
	wrapped := fmt.Errorf("outer: %w", From(inner))

	got := texts(Causes(wrapped))
	// The Report contributes the inner text once; its own cause follows.
	want := []string{"inner", "cause"}
	if !equalStrings(got, want) {
		t.Fatalf("Causes = %q, want %q", got, want)
	}
}
