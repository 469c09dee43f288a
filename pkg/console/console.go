// Package console provides print and input helpers built on the
// representation engine.
//
// Print writes its arguments in top-level form, separated by spaces and
// terminated by a newline; both can be changed with a trailing keyword
// argument container:
//
//	console.Print([]int{1, 2}, "x")                          // int[] { 1, 2 } x
//	console.Print(1, 2, kwargs.New(kwargs.P("sep", ", ")))   // 1, 2
//	console.Print(kwargs.New(kwargs.P("end", "")))           // writes nothing
package console

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"src.echolib.dev/pkg/kwargs"
	"src.echolib.dev/pkg/logutil"
	"src.echolib.dev/pkg/repr"
	"src.echolib.dev/pkg/str"
	"src.echolib.dev/pkg/sys"
)

var logger = logutil.GetLogger("[console] ")

// Default values of the options accepted by Print.
const (
	DefaultSep = " "
	DefaultEnd = "\n"
)

// Console reads lines from an input and prints values to an output. It is
// safe for concurrent use; each Print writes its output with one call to the
// output's Write method.
type Console struct {
	in  io.Reader
	out io.Writer
	// Protects out.
	outMutex sync.Mutex
	// Protects reader.
	inMutex sync.Mutex
	// Created lazily so that a Console that is only printed to never reads.
	reader *bufio.Reader
}

// New creates a new Console.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

var stdio = sync.OnceValue(func() *Console { return New(os.Stdin, os.Stdout) })

// Stdio returns the Console for standard input and output.
func Stdio() *Console { return stdio() }

// Print writes the top-level representations of args, separated by sep and
// followed by end. If the last argument is a non-nil *kwargs.Kwargs, it is
// used for the "sep" and "end" options instead of being printed.
func (c *Console) Print(args ...any) error {
	sep, end := DefaultSep, DefaultEnd
	if n := len(args); n > 0 {
		if kw, ok := args[n-1].(*kwargs.Kwargs); ok && kw != nil {
			sep = stringOption(kw, "sep", sep)
			end = stringOption(kw, "end", end)
			args = args[:n-1]
		}
	}

	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(repr.RenderTopLevel(arg))
	}
	sb.WriteString(end)

	return c.write(sb.String())
}

func (c *Console) write(s string) error {
	c.outMutex.Lock()
	defer c.outMutex.Unlock()
	_, err := io.WriteString(c.out, s)
	return err
}

func stringOption(kw *kwargs.Kwargs, key, def string) string {
	v, ok := kw.Lookup(key)
	if !ok {
		return def
	}
	switch v := v.(type) {
	case string:
		return v
	case str.String:
		return v.Raw()
	}
	logger.Printf("ignoring option %s of type %s", key, repr.TypeNameOf(v))
	return def
}

// IsInteractive reports whether both the input and the output of c are
// terminals.
func (c *Console) IsInteractive() bool {
	in, ok1 := c.in.(*os.File)
	out, ok2 := c.out.(*os.File)
	return ok1 && ok2 && sys.IsATTY(in.Fd()) && sys.IsATTY(out.Fd())
}

// Print calls Print on the Stdio Console.
func Print(args ...any) error { return Stdio().Print(args...) }

// Input calls Input on the Stdio Console.
func Input(prompt string) (string, error) { return Stdio().Input(prompt) }
