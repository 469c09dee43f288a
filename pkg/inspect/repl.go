package inspect

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"src.echolib.dev/pkg/console"
	"src.echolib.dev/pkg/store"
	"src.echolib.dev/pkg/store/storedefs"
)

const prompt = "> "

const replHelp = `Enter a YAML flow value, such as [1, {a: b}], to see its representation.
Commands:
  :history        list the history
  :last [prefix]  show the last entry starting with prefix again
  :help           show this help
`

// runREPL runs the interactive loop, reading lines from input until its end.
// Errors from individual lines are written to errOut and do not end the loop.
func runREPL(p *printer, input *console.Console, errOut io.Writer, dbPath string) error {
	var hist storedefs.Store
	if dbPath != "" {
		st, err := openHistory(dbPath)
		if err != nil {
			fmt.Fprintln(errOut, "Warning: history not available:", err)
		} else {
			defer st.Close()
			hist = st
		}
	}
	r := &repl{p, errOut, hist}
	for {
		line, err := input.Input(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		r.handle(strings.TrimSpace(line))
	}
}

func openHistory(path string) (store.DBStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	logger.Println("opening history", path)
	return store.Open(path)
}

type repl struct {
	printer *printer
	errOut  io.Writer
	// May be nil.
	history storedefs.Store
}

func (r *repl) handle(line string) {
	switch {
	case line == "":
	case line == ":help":
		io.WriteString(r.errOut, replHelp)
	case line == ":history":
		r.listHistory()
	case line == ":last" || strings.HasPrefix(line, ":last "):
		r.showLast(strings.TrimSpace(strings.TrimPrefix(line, ":last")))
	case strings.HasPrefix(line, ":"):
		fmt.Fprintf(r.errOut, "unknown command %s; try :help\n", line)
	default:
		if r.eval(line) && r.history != nil {
			if _, err := r.history.AddEntry(line); err != nil {
				logger.Println("failed to add history entry:", err)
			}
		}
	}
}

// eval renders one line, and reports whether it was valid.
func (r *repl) eval(line string) bool {
	v, err := decodeValue(line)
	if err != nil {
		fmt.Fprintln(r.errOut, err)
		return false
	}
	if err := r.printer.Print(v); err != nil {
		fmt.Fprintln(r.errOut, err)
		return false
	}
	return true
}

func (r *repl) listHistory() {
	if r.history == nil {
		fmt.Fprintln(r.errOut, "history not available")
		return
	}
	next, err := r.history.NextSeq()
	if err != nil {
		fmt.Fprintln(r.errOut, err)
		return
	}
	entries, err := r.history.Entries(0, next)
	if err != nil {
		fmt.Fprintln(r.errOut, err)
		return
	}
	for _, e := range entries {
		r.printer.console.Print(fmt.Sprintf("%4d  %s", e.Seq, e.Text))
	}
}

func (r *repl) showLast(prefix string) {
	if r.history == nil {
		fmt.Fprintln(r.errOut, "history not available")
		return
	}
	next, err := r.history.NextSeq()
	if err != nil {
		fmt.Fprintln(r.errOut, err)
		return
	}
	e, err := r.history.PrevEntry(next, prefix)
	if err != nil {
		fmt.Fprintln(r.errOut, err)
		return
	}
	r.eval(e.Text)
}
