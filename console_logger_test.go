package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unitkit/unitkit/harness"
)

// The compiler enforces that the console logger can be attached to an engine.
var _ harness.TestLogger = &consoleTestLogger{}

func TestConsoleTestLoggerObservesARun(t *testing.T) {
	tc := &harness.TestCase{
		Logger: &consoleTestLogger{DebugOutputOnFailure: true},
	}
	tc.Register(func() {
		tc.Debugf("about to fail")
		tc.Fail()
	}, "doomed")
	tc.Register(func() {}, "fine")

	assert.True(t, tc.Run())
	assert.Len(t, tc.Records(), 2)
}
