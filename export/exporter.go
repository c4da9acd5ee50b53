// Package export renders the records produced by a harness.TestCase to a
// sink, as line-oriented text or as an XML document.
package export

import (
	"github.com/unitkit/unitkit/harness"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const defaultDurationWidth = 8

// Exporter is the capability of rendering an ordered batch of test records.
// An exporter borrows the records for the duration of the call and does not
// modify them. Write failures are returned to the caller; they say nothing
// about whether the tests themselves passed.
type Exporter interface {
	ExportResults(records []harness.Record) error
}

// Options configures an exporter. The values are fixed at construction.
type Options struct {
	// Durations controls whether each record's elapsed time is rendered.
	Durations bool

	// Color enables coloring of the PASSED/FAILED token. It only affects the
	// text exporters; XML output is never colored.
	Color bool

	// DurationWidth is the column width durations are right-aligned to in
	// text output. When undefined, a width of 8 is used.
	DurationWidth ldvalue.OptionalInt
}

func (o Options) durationWidth() int {
	return o.DurationWidth.OrElse(defaultDurationWidth)
}
