package harness

import (
	"time"

	"github.com/unitkit/unitkit/logging"
)

// TestLogger is an observer that a TestCase notifies as each test runs. It is
// for progress reporting while the run is in flight; rendering of the final
// records is the exporters' job.
type TestLogger interface {
	TestStarted(name string)
	TestError(name string, err error)
	TestFinished(name string, passed bool, elapsed time.Duration, debugOutput logging.CapturedOutput)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(string)      {}
func (n nullTestLogger) TestError(string, error) {}
func (n nullTestLogger) TestFinished(string, bool, time.Duration, logging.CapturedOutput) {}

func NullTestLogger() TestLogger { return nullTestLogger{} }
