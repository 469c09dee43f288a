// Package sys provides terminal utilities with the same API across OSes.
package sys

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
)

// WinSize queries the size of the terminal referenced by the given file. It
// returns -1, -1 if the size cannot be determined.
func WinSize(file *os.File) (row, col int) { return winSize(file) }

// IsATTY determines whether the given file descriptor is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NotifyResize returns a channel that receives a value whenever the size of
// the controlling terminal changes, until ctx is done. On platforms without
// such notifications the channel never receives.
func NotifyResize(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)
	go func() {
		sigCh, stop := notifyResize()
		defer stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigCh:
				select {
				case ch <- struct{}{}:
				default:
				}
			}
		}
	}()
	return ch
}
