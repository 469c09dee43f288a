// Command echorepr prints the representations of YAML and JSON documents.
package main

import (
	"os"

	"src.echolib.dev/pkg/buildinfo"
	"src.echolib.dev/pkg/inspect"
	"src.echolib.dev/pkg/pprof"
	"src.echolib.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		pprof.Program{Inner: prog.Composite(buildinfo.Program{}, inspect.Program{})}))
}
