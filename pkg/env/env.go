// Package env keeps names of environment variables with special significance
// to echorepr.
package env

// Environment variables with special significance to echorepr.
const (
	// Path of the history database used in interactive mode. Overridden by the
	// -history flag.
	ECHOREPR_HISTORY = "ECHOREPR_HISTORY"
	// Path of the log file. Overridden by the -log flag.
	ECHOREPR_LOG = "ECHOREPR_LOG"
	// Used to locate the default history database.
	HOME           = "HOME"
	XDG_STATE_HOME = "XDG_STATE_HOME"
)
