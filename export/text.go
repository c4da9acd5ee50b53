package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/unitkit/unitkit/harness"
)

// TextExporter renders one line per record:
//
//	[PASSED] 0.000123s test name
//
// with the duration segment present only when Options.Durations is set,
// right-aligned to the configured column width.
type TextExporter struct {
	w    io.Writer
	opts Options

	passedToken string
	failedToken string
}

func NewTextExporter(w io.Writer, opts Options) *TextExporter {
	e := &TextExporter{
		w:           w,
		opts:        opts,
		passedToken: "PASSED",
		failedToken: "FAILED",
	}
	if opts.Color {
		e.passedToken = color.New(color.FgGreen).Sprint("PASSED")
		e.failedToken = color.New(color.FgRed).Sprint("FAILED")
	}
	return e
}

// NewConsoleExporter returns a text exporter bound to standard output.
func NewConsoleExporter(opts Options) *TextExporter {
	return NewTextExporter(color.Output, opts)
}

func (e *TextExporter) ExportResults(records []harness.Record) error {
	for _, rec := range records {
		if err := e.exportResult(rec); err != nil {
			return err
		}
	}
	return nil
}

func (e *TextExporter) exportResult(rec harness.Record) error {
	token := e.failedToken
	if rec.Passed {
		token = e.passedToken
	}
	if _, err := fmt.Fprintf(e.w, "[%s] ", token); err != nil {
		return err
	}

	if e.opts.Durations {
		if _, err := fmt.Fprintf(e.w, "%ss ", alignRight(formatSeconds(rec.Duration), e.opts.durationWidth())); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(e.w, rec.Name)
	return err
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'g', -1, 64)
}

func alignRight(s string, width int) string {
	if n := width - len(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
