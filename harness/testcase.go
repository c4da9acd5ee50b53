package harness

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/unitkit/unitkit/logging"
)

type registeredTest struct {
	fn   func()
	name string
}

// TestCase owns an ordered collection of registered test procedures, runs
// them sequentially, and records one Record per procedure. The zero value is
// ready to use.
//
// A test procedure signals its outcome by returning normally (passed), by
// calling Fail or an assertion primitive (failed), or by calling Pass to
// short-circuit successfully. Execution is single-threaded; a TestCase must
// not be used from multiple goroutines.
type TestCase struct {
	// Setup, if set, runs once before the first test of each Run call.
	Setup func()

	// Cleanup, if set, runs once after the last test of each Run call. It is
	// never skipped, even if Setup or a test panics.
	Cleanup func()

	// Logger, if set, is notified as each test starts and finishes.
	Logger TestLogger

	tests   []registeredTest
	records []Record
	debug   *logging.CapturingLogger
}

// Register schedules a test procedure for running. Registration order is
// execution order; names need not be unique.
func (tc *TestCase) Register(fn func(), name string) {
	tc.tests = append(tc.tests, registeredTest{fn: fn, name: name})
}

// Run executes every registered test in registration order and returns true
// if at least one test failed. Calling Run again re-executes everything and
// overwrites the previous records.
func (tc *TestCase) Run() (failed bool) {
	tc.records = make([]Record, 0, len(tc.tests))

	defer func() {
		if tc.Cleanup != nil {
			tc.Cleanup()
		}
	}()

	if tc.Setup != nil {
		tc.Setup()
	}

	for _, t := range tc.tests {
		rec := tc.runOne(t)
		tc.records = append(tc.records, rec)
		if !rec.Passed {
			failed = true
		}
	}

	return failed
}

func (tc *TestCase) runOne(t registeredTest) Record {
	rec := Record{Name: t.name}
	logger := tc.logger()

	capture := &logging.CapturingLogger{}
	tc.debug = capture
	defer func() { tc.debug = nil }()

	logger.TestStarted(t.name)

	start := time.Now()
	rec.Passed, rec.Err = invoke(t.fn)
	rec.Duration = time.Since(start)
	rec.Debug = capture.Output()

	if rec.Err != nil {
		logger.TestError(t.name, rec.Err)
	}
	logger.TestFinished(t.name, rec.Passed, rec.Duration, rec.Debug)

	return rec
}

// invoke runs one test procedure, converting a raised outcome signal into the
// returned flag. Any other panic fails the test and is reported as an error;
// it never aborts the rest of the run.
func invoke(fn func()) (passed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case passSignal:
				passed = true
			case failSignal:
				passed = false
			default:
				passed = false
				err = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
		}
	}()

	fn()
	return true, nil
}

// Pass marks the running test as passed and unwinds out of it immediately.
// It never returns.
func (tc *TestCase) Pass() {
	raisePassed()
}

// Fail marks the running test as failed and unwinds out of it immediately.
// It never returns.
func (tc *TestCase) Fail() {
	raiseFailed()
}

// Debugf records a message into the running test's captured debug output.
// Outside of a running test it does nothing.
func (tc *TestCase) Debugf(format string, args ...interface{}) {
	if tc.debug != nil {
		tc.debug.Printf(format, args...)
	}
}

// Records returns a copy of the records produced by the most recent Run.
func (tc *TestCase) Records() []Record {
	return append([]Record(nil), tc.records...)
}

func (tc *TestCase) logger() TestLogger {
	if tc.Logger == nil {
		return nullTestLogger{}
	}
	return tc.Logger
}
