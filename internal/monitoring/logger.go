// Package monitoring provides shared diagnostics: a replaceable package
// logger and named counters for internal events that are recovered locally
// (and so never surface as errors) but still need to be observable.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf
// but may be replaced by SetLogger. Tests redirect or mute it; the surprise
// engine routes per-frame diagnostics through it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
