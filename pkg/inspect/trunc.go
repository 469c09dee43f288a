package inspect

import (
	"bytes"
	"io"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// truncWriter truncates each line written through it to a display width. A
// non-positive width disables truncation.
type truncWriter struct {
	w     io.Writer
	width atomic.Int64
	mutex sync.Mutex
	// Incomplete last line.
	buf []byte
}

func newTruncWriter(w io.Writer, width int) *truncWriter {
	tw := &truncWriter{w: w}
	tw.width.Store(int64(width))
	return tw
}

func (tw *truncWriter) Write(p []byte) (int, error) {
	tw.mutex.Lock()
	defer tw.mutex.Unlock()
	tw.buf = append(tw.buf, p...)
	var out bytes.Buffer
	for {
		i := bytes.IndexByte(tw.buf, '\n')
		if i == -1 {
			break
		}
		out.WriteString(tw.truncate(string(tw.buf[:i])))
		out.WriteByte('\n')
		tw.buf = tw.buf[i+1:]
	}
	if out.Len() > 0 {
		if _, err := tw.w.Write(out.Bytes()); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// Flush writes the incomplete last line, if any.
func (tw *truncWriter) Flush() error {
	tw.mutex.Lock()
	defer tw.mutex.Unlock()
	if len(tw.buf) == 0 {
		return nil
	}
	_, err := io.WriteString(tw.w, tw.truncate(string(tw.buf)))
	tw.buf = nil
	return err
}

func (tw *truncWriter) truncate(line string) string {
	width := int(tw.width.Load())
	if width <= 0 {
		return line
	}
	return runewidth.Truncate(line, width, ellipsis)
}
