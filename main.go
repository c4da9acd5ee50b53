package main

import (
	"fmt"
	"os"

	"github.com/unitkit/unitkit/export"
	"github.com/unitkit/unitkit/harness"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args) {
		return 1
	}

	tc := &harness.TestCase{}
	if showProgress(params) {
		tc.Logger = &consoleTestLogger{
			Color:                params.color,
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		}
	}

	registerSampleTests(tc, params.filters.AsFilter)

	anyFailed := tc.Run()

	exporter, closer, err := makeExporter(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open output: %s\n", err)
		return 1
	}
	exportErr := exporter.ExportResults(tc.Records())
	if closer != nil {
		if err := closer(); err != nil && exportErr == nil {
			exportErr = err
		}
	}
	if exportErr != nil {
		fmt.Fprintf(os.Stderr, "cannot write results: %s\n", exportErr)
		return 1
	}

	if anyFailed {
		fmt.Fprintf(os.Stderr, "\nTo re-run only the failed tests:\n  %s\n", rerunCommand(args[0], failedRecords(tc.Records())))
		return 1
	}
	return 0
}

// showProgress reports whether live per-test progress can go to stdout
// without corrupting the exported output on the same stream.
func showProgress(params commandParams) bool {
	return params.format != "xml" || params.output.IsDefined()
}

func makeExporter(params commandParams) (export.Exporter, func() error, error) {
	// Color codes only make sense on the console sink.
	opts := export.Options{
		Durations: params.durations,
		Color:     params.color && !params.output.IsDefined(),
	}

	if params.output.IsDefined() {
		path := params.output.StringValue()
		if params.format == "xml" {
			e, err := export.NewXMLFileExporter(path, opts)
			if err != nil {
				return nil, nil, err
			}
			return e, e.Close, nil
		}
		e, err := export.NewTextFileExporter(path, opts)
		if err != nil {
			return nil, nil, err
		}
		return e, e.Close, nil
	}

	if params.format == "xml" {
		e, err := export.NewXMLExporter(os.Stdout, opts)
		if err != nil {
			return nil, nil, err
		}
		return e, e.Close, nil
	}
	return export.NewConsoleExporter(opts), nil, nil
}

func failedRecords(records []harness.Record) []harness.Record {
	var failed []harness.Record
	for _, rec := range records {
		if !rec.Passed {
			failed = append(failed, rec)
		}
	}
	return failed
}
