package main

import (
	"time"

	"github.com/unitkit/unitkit/harness"
)

// registerSampleTests registers the built-in demo suite, leaving out whatever
// the filter excludes. The suite exercises every assertion primitive plus the
// explicit pass/fail calls, and deliberately contains failing tests.
func registerSampleTests(tc *harness.TestCase, filter harness.Filter) {
	register := func(fn func(), name string) {
		if filter == nil || filter(name) {
			tc.Register(fn, name)
		}
	}

	register(func() {
		harness.Assert(true == !false)
	}, "assert")

	register(func() {
		harness.AssertCompletes(func() {
			_ = len("no fault here")
		})
	}, "assert completes")

	register(func() {
		harness.AssertSequenceEqual([]int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5})
	}, "sequence equals, pass")

	register(func() {
		harness.AssertSequenceEqual([]int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 6})
	}, "sequence equals, fail")

	register(func() {
		harness.AssertSequenceInRange([]byte("abcdefghijklmnopqrstuvwxyz"), 'a', 'z')
	}, "sequence in range, pass")

	register(func() {
		harness.AssertSequenceInRange([]byte("abcdefghijklmnopqrstuvwxy1"), 'a', 'z')
	}, "sequence in range, fail")

	register(func() {
		tc.Debugf("sleeping 66ms")
		time.Sleep(66 * time.Millisecond)
	}, "timing, 66ms")

	register(func() {
		tc.Pass()
	}, "explicit pass")

	register(func() {
		tc.Fail()
	}, "explicit fail")

	register(func() {}, "empty test")
}
