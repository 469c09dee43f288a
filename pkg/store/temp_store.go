package store

import (
	"path/filepath"

	"src.echolib.dev/pkg/must"
	"src.echolib.dev/pkg/testutil"
)

// MustGetTempStore returns a Store backed by a file in a temporary directory.
// The Store is closed and the directory removed when the test finishes.
func MustGetTempStore(c testutil.Cleanuper) DBStore {
	dir := testutil.TempDir(c)
	st := must.OK1(Open(filepath.Join(dir, "history.db")))
	c.Cleanup(func() { st.Close() })
	return st
}
