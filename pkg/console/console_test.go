package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"src.echolib.dev/pkg/kwargs"
	"src.echolib.dev/pkg/repr"
	"src.echolib.dev/pkg/str"
	"src.echolib.dev/pkg/tt"
)

func printed(args ...any) string {
	var buf bytes.Buffer
	if err := New(nil, &buf).Print(args...); err != nil {
		panic(err)
	}
	return buf.String()
}

var kw = kwargs.New

func TestPrint(t *testing.T) {
	tt.Test(t, tt.Fn(printed).Named("Print"),
		tt.Args().Rets("\n"),
		tt.Args(nil).Rets("nil\n"),
		tt.Args("a\tb").Rets("a\tb\n"),
		tt.Args(repr.Char('c')).Rets("c\n"),
		tt.Args(1, "x", []int{2}).Rets("1 x int[] { 2 }\n"),
		tt.Args(repr.NewTuple2(1, "x")).Rets("Tuple<int, string> (1, \"x\")\n"),
		tt.Args(str.NewLiteral("q")).Rets("\"q\"\n"),

		// Options.
		tt.Args(1, 2, kw(kwargs.P("sep", ", "))).Rets("1, 2\n"),
		tt.Args(1, 2, kw(kwargs.P("end", "."))).Rets("1 2."),
		tt.Args(1, 2, kw(kwargs.P("sep", ""), kwargs.P("end", ""))).Rets("12"),
		tt.Args(1, kw(kwargs.P("sep", str.New("-")))).Rets("1\n"),
		tt.Args(1, 2, kw(kwargs.P("sep", str.New("-")))).Rets("1-2\n"),
		tt.Args(1, 2, kw(kwargs.P("sep", 5))).Rets("1 2\n").Named("wrong option type"),
		tt.Args(1, kw(kwargs.P("other", "x"))).Rets("1\n"),

		// A lone container only writes the end.
		tt.Args(kw()).Rets("\n"),
		tt.Args(kw(kwargs.P("end", ""))).Rets(""),
		tt.Args(kw(kwargs.P("end", "!"), kwargs.P("sep", ","))).Rets("!"),

		// A nil container is printed like other nil values.
		tt.Args((*kwargs.Kwargs)(nil)).Rets("nil\n"),
		// A container that is not last is a positional argument.
		tt.Args(kw(kwargs.P("end", "")), 1).Rets("Kwargs[string end = \"\"] 1\n"),
	)
}

func TestPrint_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	c := New(nil, &buf)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Print("aaaa", "bbbb")
		}()
	}
	wg.Wait()
	require.Equal(t, strings.Repeat("aaaa bbbb\n", 20), buf.String())
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestPrint_WriteError(t *testing.T) {
	err := New(nil, failWriter{}).Print(1)
	require.ErrorIs(t, err, errWrite)
}

func TestInput(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("first\r\nsecond\nlast"), &out)

	line, err := c.Input("> ")
	require.NoError(t, err)
	require.Equal(t, "first", line)

	line, err = c.Input("")
	require.NoError(t, err)
	require.Equal(t, "second", line)

	line, err = c.Input("? ")
	require.NoError(t, err)
	require.Equal(t, "last", line)

	line, err = c.Input("? ")
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, "", line)

	require.Equal(t, "> ? ? ", out.String())
}

func TestInput_EmptyLine(t *testing.T) {
	c := New(strings.NewReader("\n"), io.Discard)
	line, err := c.Input("")
	require.NoError(t, err)
	require.Equal(t, "", line)
}

type celsius float64

func TestInputAs(t *testing.T) {
	c := New(strings.NewReader(" 42 \nnope\ntrue\n2.5\n-3\nx\nxy\n300\n18.5\n"), io.Discard)

	i, ok, err := InputAs[int](c, "")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 42, i)

	i, ok, err = InputAs[int](c, "")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, i)

	b, ok, _ := InputAs[bool](c, "")
	require.True(t, ok)
	require.True(t, b)

	f, ok, _ := InputAs[float64](c, "")
	require.True(t, ok)
	require.Equal(t, 2.5, f)

	_, ok, _ = InputAs[uint](c, "")
	require.False(t, ok, "negative uint")

	ch, ok, _ := InputAs[repr.Char](c, "")
	require.True(t, ok)
	require.Equal(t, repr.Char('x'), ch)

	_, ok, _ = InputAs[repr.Char](c, "")
	require.False(t, ok, "two characters")

	_, ok, _ = InputAs[int8](c, "")
	require.False(t, ok, "out of range")

	temp, ok, _ := InputAs[celsius](c, "")
	require.True(t, ok)
	require.Equal(t, celsius(18.5), temp)

	_, _, err = InputAs[int](c, "")
	require.ErrorIs(t, err, io.EOF)
}

func TestInputAs_String(t *testing.T) {
	c := New(strings.NewReader("  spaced  \n"), io.Discard)
	s, ok, err := InputAs[string](c, "")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "  spaced  ", s)
}

func TestInputAs_UnsupportedType(t *testing.T) {
	c := New(strings.NewReader("x\n"), io.Discard)
	_, ok, err := InputAs[[]int](c, "")
	require.False(t, ok)
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestIsInteractive_NotFiles(t *testing.T) {
	require.False(t, New(strings.NewReader(""), io.Discard).IsInteractive())
}
