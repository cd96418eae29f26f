// Package maincmd implements the tuplegen command.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"

	"github.com/tuplealg/generic/internal/tuplegen"
)

const binName = "tuplegen"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<file>]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<file>]
       %[1]s -h|--help
       %[1]s -v|--version

Code generator for the fixed-arity generic tuple packages.

The <command> can be one of:
       matrix                    Print the generation matrix, one
                                 operation instance per line.
       tuple                     Generate the tuple package and write
                                 it to <file>, or to stdout if <file>
                                 is absent or "-".
       tuplefunc                 Generate the tuplefunc package and
                                 write it to <file>, or to stdout if
                                 <file> is absent or "-".

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --max-arity N             Generate tuples of up to N values
                                 (default %[2]d, at most 64).
       --package NAME            Name of the generated package
                                 (default: the command name).
       --tuple-import PATH       Import path of the tuple package, for
                                 the tuplefunc command (default
                                 %[3]s).
       --verbose                 Report the generated files on stderr.
`, binName, tuplegen.DefaultMaxArity, tuplegen.DefaultTupleImport)
)

type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	MaxArity    int    `flag:"max-arity"`
	Package     string `flag:"package"`
	TupleImport string `flag:"tuple-import"`
	Verbose     bool   `flag:"verbose"`

	args  []string
	flags map[string]bool
	cmdFn cmdFunc
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]

	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", c.args[0])
	}

	switch cmdName {
	case "matrix":
		if len(c.args[1:]) > 0 {
			return fmt.Errorf("%s: no file argument expected", cmdName)
		}
	default:
		if len(c.args[1:]) > 1 {
			return fmt.Errorf("%s: at most one file may be provided", cmdName)
		}
	}

	if !c.flags["max-arity"] {
		c.MaxArity = tuplegen.DefaultMaxArity
	}
	if c.flags["tuple-import"] && cmdName != "tuplefunc" {
		return fmt.Errorf("%s: invalid flag 'tuple-import'", cmdName)
	}
	return c.config().Validate()
}

func (c *Cmd) config() tuplegen.Config {
	return tuplegen.Config{
		MaxArity:    c.MaxArity,
		Package:     c.Package,
		TupleImport: c.TupleImport,
	}
}

func printError(stdio mainer.Stdio, err error) error {
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
	}
	return err
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		// already reported on stderr by the command
		return mainer.Failure
	}
	return mainer.Success
}

// cmdFunc is the signature of the Cmd methods implementing commands.
type cmdFunc = func(context.Context, mainer.Stdio, []string) error

var cmdFuncType = reflect.TypeOf(cmdFunc(nil))

// buildCmds returns the commands of c, keyed by the lowercase name of
// the method implementing them.
func buildCmds(c *Cmd) map[string]cmdFunc {
	cmds := make(map[string]cmdFunc)
	v := reflect.ValueOf(c)
	for i := 0; i < v.NumMethod(); i++ {
		m := v.Method(i)
		if m.Type() != cmdFuncType {
			continue
		}
		cmds[strings.ToLower(v.Type().Method(i).Name)] = m.Interface().(cmdFunc)
	}
	return cmds
}
