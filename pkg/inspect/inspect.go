// Package inspect implements the main program of echorepr, which reads YAML
// (and thus also JSON) documents and prints their representations.
//
// Documents are read from the files named on the command line, or from stdin
// when there are none. When both stdin and stdout are terminals, the program
// runs an interactive loop instead, reading one flow-style value per line.
package inspect

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"src.echolib.dev/pkg/console"
	"src.echolib.dev/pkg/errutil"
	"src.echolib.dev/pkg/kwargs"
	"src.echolib.dev/pkg/logutil"
	"src.echolib.dev/pkg/prog"
	"src.echolib.dev/pkg/repr"
	"src.echolib.dev/pkg/str"
	"src.echolib.dev/pkg/sys"
)

var logger = logutil.GetLogger("[inspect] ")

// Program is the inspect program. It is suitable for every command line, so
// it should come last in a prog.Composite.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	interactive := len(args) == 0 && sys.IsATTY(fds[0].Fd()) && sys.IsATTY(fds[1].Fd())

	var out io.Writer = fds[1]
	if f.Trunc && sys.IsATTY(fds[1].Fd()) {
		tw := newTruncWriter(fds[1], terminalWidth(fds[1]))
		defer tw.Flush()
		out = tw
		if interactive {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go watchWidth(ctx, fds[1], &tw.width)
		}
	}
	p := newPrinter(console.New(fds[0], out), f)

	if interactive {
		// Prompts bypass truncation, which only writes complete lines.
		return runREPL(p, console.New(fds[0], fds[1]), fds[2], historyPath(f))
	}
	if len(args) == 0 {
		return p.printDocs(fds[0], "stdin")
	}
	var errs []error
	for _, name := range args {
		errs = append(errs, p.printFile(name))
	}
	return errutil.Multi(errs...)
}

func terminalWidth(f *os.File) int {
	_, col := sys.WinSize(f)
	return col
}

func watchWidth(ctx context.Context, f *os.File, width *atomic.Int64) {
	for range sys.NotifyResize(ctx) {
		w := terminalWidth(f)
		logger.Println("terminal width changed to", w)
		width.Store(int64(w))
	}
}

// printer prints values according to the command-line flags.
type printer struct {
	console *console.Console
	nested  bool
	types   bool
	// Options passed to console.Print.
	opts *kwargs.Kwargs
}

func newPrinter(c *console.Console, f *prog.Flags) *printer {
	return &printer{
		console: c,
		nested:  f.Nested,
		types:   f.Types,
		opts:    kwargs.New(kwargs.P("sep", f.Sep), kwargs.P("end", f.End)),
	}
}

// Print prints one value.
func (p *printer) Print(v any) error {
	var rendered any = v
	if p.nested {
		rendered = str.New(repr.RenderNested(v))
	}
	if p.types {
		return p.console.Print(repr.Classify(v), repr.TypeNameOf(v), rendered, p.opts)
	}
	return p.console.Print(rendered, p.opts)
}

func (p *printer) printFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()
	logger.Println("reading", name)
	return p.printDocs(file, name)
}

// printDocs prints all documents in r, stopping at the first malformed one.
func (p *printer) printDocs(r io.Reader, name string) error {
	for doc, err := range decodeDocs(r) {
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := p.Print(doc); err != nil {
			return err
		}
	}
	return nil
}
