package testutil

import (
	"fmt"
	"os"
	"path/filepath"

	"src.echolib.dev/pkg/must"
)

// TempDir creates a temporary directory for testing that will be removed
// after the test finishes. Symlinks in the path are resolved.
func TempDir(c Cleanuper) string {
	dir := must.OK1(os.MkdirTemp("", "echolib-test"))
	dir = must.OK1(filepath.EvalSymlinks(dir))
	c.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			fmt.Fprintln(os.Stderr, "failed to remove temp dir", dir)
		}
	})
	return dir
}

// InTempDir is like TempDir, but also changes into the directory for the
// duration of the test. It returns the directory.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Chdir changes into a directory for the duration of a test.
func Chdir(c Cleanuper, dir string) {
	old := must.OK1(os.Getwd())
	must.Chdir(dir)
	c.Cleanup(func() { must.Chdir(old) })
}

// Dir describes a layout of files, mapping names to contents. A value that is
// itself a Dir is a subdirectory.
type Dir map[string]any

// ApplyDir creates the files described by dir under root.
func ApplyDir(root string, dir Dir) {
	for name, content := range dir {
		path := filepath.Join(root, name)
		switch content := content.(type) {
		case string:
			must.WriteFile(path, content)
		case Dir:
			must.MkdirAll(path)
			ApplyDir(path, content)
		default:
			panic("file content must be string or Dir")
		}
	}
}
