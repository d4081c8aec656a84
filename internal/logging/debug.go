package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// DebugEnvVar turns on debug output when set to any non-empty value
const DebugEnvVar = "TASKS_DEBUG"

var (
	mu     sync.Mutex
	output io.Writer = os.Stderr
	forced bool
)

// DebugEnabled returns true if debug mode is enabled via TASKS_DEBUG or Enable
func DebugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return forced || os.Getenv(DebugEnvVar) != ""
}

// Enable switches debug output on regardless of the environment (the --verbose flag)
func Enable(on bool) {
	mu.Lock()
	defer mu.Unlock()
	forced = on
}

// SetOutput redirects debug output and returns the previous writer
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	previous := output
	output = w
	return previous
}

func writer() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return output
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintf(writer(), "[debug] "+format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Fprintln(writer(), append([]interface{}{"[debug]"}, args...)...)
	}
}
