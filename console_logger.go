package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/unitkit/unitkit/logging"
)

// consoleTestLogger prints live progress while the suite runs. The final
// results are rendered separately by the configured exporter.
type consoleTestLogger struct {
	Color                bool
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *consoleTestLogger) TestStarted(name string) {
	fmt.Printf("[%s]\n", name)
}

func (c *consoleTestLogger) TestError(name string, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *consoleTestLogger) TestFinished(name string, passed bool, elapsed time.Duration, debugOutput logging.CapturedOutput) {
	if !passed {
		token := "FAILED"
		if c.Color {
			token = color.RedString(token)
		}
		fmt.Printf("  %s: %s\n", token, name)
	}
	if len(debugOutput) > 0 &&
		((!passed && c.DebugOutputOnFailure) || (passed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}
