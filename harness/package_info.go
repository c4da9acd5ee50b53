// Package harness implements a minimal unit-testing engine for programs that
// run outside of Go's own test runner.
//
// The general model is:
//
// 1. A program registers named test procedures on a TestCase. Registration
// order is execution order.
//
// 2. Run executes every procedure sequentially, recording a name, a pass/fail
// outcome, and an elapsed duration for each one. A procedure ends either by
// returning normally (passed), by calling one of the assertion primitives or
// TestCase.Fail (failed), or by calling TestCase.Pass to short-circuit
// successfully.
//
// 3. The recorded results are read back with Records and handed to an
// exporter (see the export package) for rendering.
package harness
