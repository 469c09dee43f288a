package inspect

import (
	"os"
	"path/filepath"

	"src.echolib.dev/pkg/env"
	"src.echolib.dev/pkg/prog"
)

// historyPath returns the path of the history database: the -history flag,
// $ECHOREPR_HISTORY, or a file in the XDG state directory, in that order of
// preference. It returns "" if none is available.
func historyPath(f *prog.Flags) string {
	if f.History != "" {
		return f.History
	}
	if p := os.Getenv(env.ECHOREPR_HISTORY); p != "" {
		return p
	}
	stateHome := os.Getenv(env.XDG_STATE_HOME)
	if stateHome == "" {
		home := os.Getenv(env.HOME)
		if home == "" {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "echorepr", "history.db")
}
