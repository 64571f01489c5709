// Package logger provides structured logging for hercnav.
// Messages go to stderr so stdout stays scriptable. Info and above always
// print; debug messages appear when verbose mode is enabled via the
// --verbose flag, tracing the parse/encode pipeline and the grid-encoding
// fallbacks.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu      sync.RWMutex
	verbose bool
	std     = log.New(os.Stderr)
)

// SetVerbose enables or disables debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	if v {
		std.SetLevel(log.DebugLevel)
	} else {
		std.SetLevel(log.InfoLevel)
	}
}

// IsVerbose returns true if debug output is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer. Defaults to os.Stderr. Useful for
// testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	std.SetOutput(w)
}

// Debug logs a message with key/value pairs at debug level.
func Debug(msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	std.Debug(msg, keyvals...)
}

// Info logs a message with key/value pairs at info level.
func Info(msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	std.Info(msg, keyvals...)
}

// Warn logs a message with key/value pairs at warn level.
func Warn(msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	std.Warn(msg, keyvals...)
}

// Error logs a message with key/value pairs at error level.
func Error(msg string, keyvals ...any) {
	mu.RLock()
	defer mu.RUnlock()
	std.Error(msg, keyvals...)
}
