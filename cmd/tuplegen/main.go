// Command tuplegen generates the source of the tuple and tuplefunc
// packages. It is run by go generate; see the go:generate directives
// in those packages.
package main

import (
	"os"

	"github.com/mna/mainer"

	"github.com/tuplealg/generic/internal/maincmd"
)

var (
	// placeholder values, replaced on build
	version   = "{v}" // must be N.N[.N]
	buildDate = "{d}" // must be YYYY-mm-DD
)

func main() {
	c := maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
