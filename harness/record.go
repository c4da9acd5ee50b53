package harness

import (
	"time"

	"github.com/unitkit/unitkit/logging"
)

// Record is the stored result of one test invocation. Records are produced in
// registration order, one per registered test, and are owned by the TestCase
// that produced them; exporters read them and must not modify them.
type Record struct {
	// Name is the display label given at registration. It need not be unique.
	Name string

	// Passed is false until a run attempt has completed for this test.
	Passed bool

	// Duration is the elapsed wall-clock time of the single invocation,
	// measured with the monotonic clock. A failed test still measures the
	// time elapsed up to the failure point.
	Duration time.Duration

	// Err holds the fault when the test was failed by an unexpected panic
	// rather than by an assertion or an explicit Fail call.
	Err error

	// Debug is the output captured from Debugf calls made while this test
	// was running.
	Debug logging.CapturedOutput
}
