// Package testutil contains common test utilities.
package testutil

import "runtime"

// Cleanuper wraps the Cleanup method. It is a subset of [testing.TB], thus
// satisfied by [*testing.T] and [*testing.B].
type Cleanuper interface {
	Cleanup(func())
}

// Skipper wraps the Skipf method. It is a subset of [testing.TB], thus
// satisfied by [*testing.T] and [*testing.B].
type Skipper interface {
	Skipf(format string, args ...any)
}

// SkipUnlessUnix skips the test unless it runs on a platform with Unix
// terminals.
func SkipUnlessUnix(s Skipper) {
	switch runtime.GOOS {
	case "windows", "plan9", "js", "wasip1":
		s.Skipf("no Unix terminals on %s", runtime.GOOS)
	}
}
