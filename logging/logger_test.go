package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturingLoggerRecordsMessagesInOrder(t *testing.T) {
	var l CapturingLogger
	l.Printf("first %d", 1)
	l.Printf("second")

	out := l.Output()
	require.Len(t, out, 2)
	assert.Equal(t, "first 1", out[0].Message)
	assert.Equal(t, "second", out[1].Message)
	assert.False(t, out[0].Time.IsZero())
}

func TestCapturingLoggerOutputIsASnapshot(t *testing.T) {
	var l CapturingLogger
	l.Printf("one")

	out := l.Output()
	l.Printf("two")

	assert.Len(t, out, 1)
	assert.Len(t, l.Output(), 2)
}

func TestCapturedOutputDump(t *testing.T) {
	var l CapturingLogger
	l.Printf("hello")

	var buf bytes.Buffer
	l.Output().Dump(&buf, "  DEBUG ")

	assert.Regexp(t, `^  DEBUG \[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\] hello\n$`, buf.String())
}

func TestNullLoggerDoesNothing(t *testing.T) {
	assert.NotPanics(t, func() { NullLogger().Printf("ignored %d", 1) })
}
