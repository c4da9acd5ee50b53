package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runAssertion executes fn the way the engine would run a test body, so the
// raised signal can be inspected as an outcome.
func runAssertion(t *testing.T, fn func()) bool {
	passed, err := invoke(fn)
	require.NoError(t, err, "assertion primitives must only raise the outcome signals")
	return passed
}

func TestAssert(t *testing.T) {
	assert.True(t, runAssertion(t, func() { Assert(true) }))
	assert.False(t, runAssertion(t, func() { Assert(false) }))
}

func TestAssertCompletes(t *testing.T) {
	assert.True(t, runAssertion(t, func() {
		AssertCompletes(func() {})
	}))

	assert.False(t, runAssertion(t, func() {
		AssertCompletes(func() { panic("fault") })
	}), "a faulting procedure must fail the test")

	assert.False(t, runAssertion(t, func() {
		AssertCompletes(func() { Assert(false) })
	}), "a nested assertion failure must fail the test")
}

func TestAssertSequenceEqual(t *testing.T) {
	assert.True(t, runAssertion(t, func() {
		AssertSequenceEqual([]int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5})
	}))
	assert.False(t, runAssertion(t, func() {
		AssertSequenceEqual([]int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 6})
	}))
	assert.False(t, runAssertion(t, func() {
		AssertSequenceEqual([]int{1, 2, 3}, []int{1, 2})
	}), "length mismatch must fail")
	assert.True(t, runAssertion(t, func() {
		AssertSequenceEqual([]string(nil), []string{})
	}), "empty sequences are trivially equal")
}

func TestAssertSequenceInRange(t *testing.T) {
	assert.True(t, runAssertion(t, func() {
		AssertSequenceInRange([]byte("abcdefghijklmnopqrstuvwxyz"), 'a', 'z')
	}))
	assert.False(t, runAssertion(t, func() {
		AssertSequenceInRange([]byte("abcdefghijklmnopqrstuvwxy1"), 'a', 'z')
	}), "the final element is outside the range")
	assert.True(t, runAssertion(t, func() {
		AssertSequenceInRange([]int{}, 0, 0)
	}), "an empty sequence is trivially in range")
}
