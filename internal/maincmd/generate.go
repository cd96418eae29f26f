package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/tuplealg/generic/internal/tuplegen"
)

// Tuple writes the generated tuple package. Generation runs in memory
// and is not interrupted by the context; the file is written in one
// call once it completes.
func (c *Cmd) Tuple(_ context.Context, stdio mainer.Stdio, args []string) error {
	return c.generate(stdio, args, tuplegen.Tuple)
}

func (c *Cmd) Tuplefunc(_ context.Context, stdio mainer.Stdio, args []string) error {
	return c.generate(stdio, args, tuplegen.Funcs)
}

func (c *Cmd) Matrix(_ context.Context, stdio mainer.Stdio, _ []string) error {
	return printError(stdio, tuplegen.WriteMatrix(stdio.Stdout, tuplegen.Matrix{MaxArity: c.MaxArity}))
}

func (c *Cmd) generate(stdio mainer.Stdio, args []string, gen func(tuplegen.Config) ([]byte, error)) error {
	src, err := gen(c.config())
	if err != nil {
		return printError(stdio, err)
	}

	if len(args) == 0 || args[0] == "-" {
		_, err := stdio.Stdout.Write(src)
		return printError(stdio, err)
	}

	file := args[0]
	if err := os.WriteFile(file, src, 0644); err != nil {
		return printError(stdio, err)
	}
	if c.Verbose {
		fmt.Fprintf(stdio.Stderr, "%s: wrote %s (max arity %d, %d bytes)\n", binName, file, c.MaxArity, len(src))
	}
	return nil
}
