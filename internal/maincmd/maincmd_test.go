package maincmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/mna/mainer"

	"github.com/tuplealg/generic/internal/tuplegen"
)

func run(args ...string) (mainer.ExitCode, string, string) {
	var stdout, stderr bytes.Buffer
	c := Cmd{BuildVersion: "1.2.3", BuildDate: "2026-10-19"}
	code := c.Main(append([]string{binName}, args...), mainer.Stdio{
		Stdin:  bytes.NewReader(nil),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	return code, stdout.String(), stderr.String()
}

func TestHelpAndVersion(t *testing.T) {
	c := qt.New(t)

	code, stdout, _ := run("--help")
	c.Assert(code, qt.Equals, mainer.Success)
	c.Assert(stdout, qt.Equals, longUsage)

	code, stdout, _ = run("-v")
	c.Assert(code, qt.Equals, mainer.Success)
	c.Assert(stdout, qt.Equals, "tuplegen 1.2.3 2026-10-19\n")
}

func TestInvalidArgs(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		args []string
		want string
	}{
		{nil, "no command specified"},
		{[]string{"foo"}, "unknown command: foo"},
		{[]string{"matrix", "file.go"}, "matrix: no file argument expected"},
		{[]string{"tuple", "a.go", "b.go"}, "tuple: at most one file may be provided"},
		{[]string{"--max-arity=99", "matrix"}, "invalid maximum arity 99: must be between 1 and 64"},
		{[]string{"--max-arity=0", "tuple"}, "invalid maximum arity 0: must be between 1 and 64"},
		{[]string{"--package=a-b", "tuple"}, `invalid package name "a-b"`},
		{[]string{"--tuple-import=example.com/tup", "tuple"}, "tuple: invalid flag 'tuple-import'"},
	}
	for _, test := range tests {
		code, stdout, stderr := run(test.args...)
		c.Check(code, qt.Equals, mainer.InvalidArgs, qt.Commentf("%v", test.args))
		c.Check(stdout, qt.Equals, "")
		c.Check(stderr, qt.Matches, `(?s)invalid arguments: .*`+regexp.QuoteMeta(test.want)+`.*Run 'tuplegen --help' for details\.\n`, qt.Commentf("%v", test.args))
	}
}

func TestMatrix(t *testing.T) {
	c := qt.New(t)

	want, err := os.ReadFile(filepath.Join("..", "tuplegen", "testdata", "results", "max3.arity.want"))
	c.Assert(err, qt.IsNil)

	code, stdout, stderr := run("--max-arity=3", "matrix")
	c.Assert(code, qt.Equals, mainer.Success)
	c.Assert(stderr, qt.Equals, "")
	c.Assert(stdout, qt.Equals, string(want))
}

func TestMatrixDefaultArity(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	err := tuplegen.WriteMatrix(&buf, tuplegen.Matrix{MaxArity: tuplegen.DefaultMaxArity})
	c.Assert(err, qt.IsNil)

	code, stdout, _ := run("matrix")
	c.Assert(code, qt.Equals, mainer.Success)
	c.Assert(stdout, qt.Equals, buf.String())
}

func TestTupleToFile(t *testing.T) {
	c := qt.New(t)

	file := filepath.Join(c.TempDir(), "tuple_gen.go")
	code, stdout, stderr := run("--max-arity=4", "--verbose", "tuple", file)
	c.Assert(code, qt.Equals, mainer.Success)
	c.Assert(stdout, qt.Equals, "")
	c.Assert(stderr, qt.Matches, `tuplegen: wrote .*tuple_gen\.go \(max arity 4, [0-9]+ bytes\)\n`)

	got, err := os.ReadFile(file)
	c.Assert(err, qt.IsNil)
	want, err := tuplegen.Tuple(tuplegen.Config{MaxArity: 4})
	c.Assert(err, qt.IsNil)
	c.Assert(string(got), qt.Equals, string(want))
}

func TestTuplefuncToStdout(t *testing.T) {
	c := qt.New(t)

	code, stdout, stderr := run("--max-arity=2", "--package=tf", "--tuple-import=example.com/tup", "tuplefunc", "-")
	c.Assert(code, qt.Equals, mainer.Success)
	c.Assert(stderr, qt.Equals, "")

	want, err := tuplegen.Funcs(tuplegen.Config{MaxArity: 2, Package: "tf", TupleImport: "example.com/tup"})
	c.Assert(err, qt.IsNil)
	c.Assert(stdout, qt.Equals, string(want))
}

func TestWriteFailure(t *testing.T) {
	c := qt.New(t)

	file := filepath.Join(c.TempDir(), "missing", "tuple_gen.go")
	code, _, stderr := run("tuple", file)
	c.Assert(code, qt.Equals, mainer.Failure)
	c.Assert(stderr, qt.Matches, `open .*: no such file or directory\n`)
}

func TestBuildCmds(t *testing.T) {
	c := qt.New(t)

	cmds := buildCmds(&Cmd{})
	c.Assert(cmds, qt.HasLen, 3)
	for _, name := range []string{"matrix", "tuple", "tuplefunc"} {
		c.Assert(cmds[name], qt.IsNotNil, qt.Commentf("%s", name))
	}
	for _, name := range []string{"main", "validate", "setargs", "generate"} {
		c.Assert(cmds[name], qt.IsNil, qt.Commentf("%s", name))
	}
}

func TestCommandsBoundToCmd(t *testing.T) {
	c := qt.New(t)

	var stdout bytes.Buffer
	cmd := &Cmd{MaxArity: 1}
	err := buildCmds(cmd)["matrix"](context.Background(), mainer.Stdio{Stdout: &stdout}, nil)
	c.Assert(err, qt.IsNil)

	want, err := os.ReadFile(filepath.Join("..", "tuplegen", "testdata", "results", "max1.arity.want"))
	c.Assert(err, qt.IsNil)
	c.Assert(stdout.String(), qt.Equals, string(want))
}

func TestGenerateWithCancelledContext(t *testing.T) {
	c := qt.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	file := filepath.Join(c.TempDir(), "tuple_gen.go")
	var stderr bytes.Buffer
	cmd := &Cmd{MaxArity: 2}
	err := cmd.Tuple(ctx, mainer.Stdio{Stderr: &stderr}, []string{file})
	c.Assert(err, qt.IsNil)
	c.Assert(stderr.String(), qt.Equals, "")

	got, err := os.ReadFile(file)
	c.Assert(err, qt.IsNil)
	want, err := tuplegen.Tuple(tuplegen.Config{MaxArity: 2})
	c.Assert(err, qt.IsNil)
	c.Assert(string(got), qt.Equals, string(want))
}
