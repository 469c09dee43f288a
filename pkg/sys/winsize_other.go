//go:build !unix && !windows

package sys

import "os"

func winSize(*os.File) (row, col int) { return -1, -1 }

func notifyResize() (<-chan os.Signal, func()) { return nil, func() {} }
