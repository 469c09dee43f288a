// Package prog provides the entry point to echorepr. Programs are tried in
// order until one of them is suitable for the command line.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.echolib.dev/pkg/env"
	"src.echolib.dev/pkg/logutil"
)

// Flags keeps command-line flags.
type Flags struct {
	Log, CPUProfile, AllocsProfile string

	Help, Version, BuildInfo, JSON bool

	// Render in nested form instead of top-level form.
	Nested bool
	// Prefix each value with its shape and type name.
	Types bool
	// Truncate output lines to the terminal width.
	Trunc bool

	// Path of the history database for interactive mode.
	History string

	// Separator and terminator of printed values.
	Sep, End string
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("echorepr", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to; defaults to $"+env.ECHOREPR_LOG)
	fs.StringVar(&f.CPUProfile, "cpuprofile", "", "write CPU profile to file")
	fs.StringVar(&f.AllocsProfile, "allocsprofile", "", "write memory allocation profile to file")

	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	fs.BoolVar(&f.BuildInfo, "buildinfo", false, "show build info and quit")
	fs.BoolVar(&f.JSON, "json", false, "show output of -buildinfo in JSON")

	fs.BoolVar(&f.Nested, "nested", false, "render values in nested form")
	fs.BoolVar(&f.Types, "types", false, "show the shape and type name of each value")
	fs.BoolVar(&f.Trunc, "trunc", false, "truncate output lines to the terminal width")

	fs.StringVar(&f.History, "history", "", "path to the history database; defaults to $"+env.ECHOREPR_HISTORY)

	fs.StringVar(&f.Sep, "sep", " ", "separator between the parts of -types output")
	fs.StringVar(&f.End, "end", "\n", "terminator written after each value")

	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: echorepr [flags] [file ...]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h is requested but
			// not defined; only -help is defined.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	logFile := f.Log
	if logFile == "" {
		logFile = os.Getenv(env.ECHOREPR_LOG)
	}
	if logFile != "" {
		if err := logutil.SetOutputFile(logFile); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var badUsage badUsageError
	var exit exitError
	switch {
	case errors.As(err, &badUsage):
		usage(fds[2], fs)
	case errors.As(err, &exit):
		return exit.exit
	}
	return 2
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, f, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNotSuitable.
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program represents a subprogram.
type Program interface {
	// Run runs the subprogram.
	Run(fds [3]*os.File, f *Flags, args []string) error
}
