//go:build !stdlog && !nolog

package build

import "os"

// LoggingType is a log type that writes to stdout when a sub logger generator
// is supplied.
const LoggingType = LogTypeDefault

// Write writes the provided byte slice to stdout.
func (w *LogWriter) Write(b []byte) (int, error) {
	return os.Stdout.Write(b)
}
