package harness

import "cmp"

// Assertion primitives. Each one either returns normally or fails the running
// test by raising the failed signal; none of them returns a value and none
// can pass a test early (use TestCase.Pass for that).

// Assert fails the running test if condition is false.
func Assert(condition bool) {
	if !condition {
		raiseFailed()
	}
}

// AssertCompletes invokes fn and fails the running test if fn panics for any
// reason, including a failure raised by a nested assertion. Use it to express
// "this procedure must complete without faulting".
func AssertCompletes(fn func()) {
	if !completes(fn) {
		raiseFailed()
	}
}

func completes(fn func()) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	fn()
	return true
}

// AssertSequenceEqual fails the running test unless a and b have the same
// length and equal elements in the same order. Empty sequences are equal. The
// first mismatch aborts the check.
func AssertSequenceEqual[E comparable](a, b []E) {
	Assert(len(a) == len(b))

	for i := range a {
		if a[i] != b[i] {
			raiseFailed()
		}
	}
}

// AssertSequenceInRange fails the running test if any element of seq is
// outside the inclusive range [min, max]. An empty sequence passes.
func AssertSequenceInRange[E cmp.Ordered](seq []E, min, max E) {
	for _, v := range seq {
		if v < min || v > max {
			raiseFailed()
		}
	}
}
