package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/unitkit/unitkit/harness"
)

type commandParams struct {
	format    string
	output    ldvalue.OptionalString
	durations bool
	color     bool
	filters   harness.RegexFilters
	debug     bool
	debugAll  bool
}

func (c *commandParams) Read(args []string) bool {
	var output string

	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	fs.StringVar(&c.format, "format", "text", `output format, "text" or "xml"`)
	fs.StringVar(&output, "output", "", "file to write results to (default: console)")
	fs.BoolVar(&c.durations, "durations", false, "include each test's elapsed time in the output")
	fs.BoolVar(&c.color, "color", false, "colorize the PASSED/FAILED tokens (text output only)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "show debug output for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show debug output for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.format != "text" && c.format != "xml" {
		fmt.Fprintf(os.Stderr, "unknown format %q\n", c.format)
		fs.Usage()
		return false
	}
	if output != "" {
		c.output = ldvalue.NewOptionalString(output)
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a shell command line that re-runs only the given
// (failed) tests, by anchoring each name as a -run pattern.
func rerunCommand(program string, failed []harness.Record) string {
	var b commandBuilder
	b.add(program)
	for _, rec := range failed {
		b.add("-run", "^"+regexp.QuoteMeta(rec.Name)+"$")
	}
	return b.String()
}
