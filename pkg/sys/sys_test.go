package sys

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"src.echolib.dev/pkg/must"
)

func TestIsATTY_Pipe(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	require.False(t, IsATTY(r.Fd()))
	require.False(t, IsATTY(w.Fd()))
}

func TestWinSize_NotTerminal(t *testing.T) {
	f, err := os.CreateTemp("", "winsize")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	defer f.Close()

	row, col := WinSize(f)
	require.Equal(t, -1, row)
	require.Equal(t, -1, col)
}

func TestNotifyResize_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := NotifyResize(ctx)
	cancel()
	select {
	case <-ch:
		t.Errorf("got resize notification without a resize")
	default:
	}
}
