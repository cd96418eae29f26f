package tuplegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		cfg     Config
		wantErr string
	}{{
		cfg: Config{MaxArity: 16},
	}, {
		cfg: Config{MaxArity: 1, Package: "tup", TupleImport: "example.com/x/tup"},
	}, {
		cfg:     Config{MaxArity: 0},
		wantErr: `invalid maximum arity 0: must be between 1 and 64`,
	}, {
		cfg:     Config{MaxArity: 65},
		wantErr: `invalid maximum arity 65: must be between 1 and 64`,
	}, {
		cfg:     Config{MaxArity: 4, Package: "not-a-name"},
		wantErr: `invalid package name "not-a-name"`,
	}, {
		cfg:     Config{MaxArity: 4, TupleImport: "example.com/go-tuple"},
		wantErr: `tuple import path "example.com/go-tuple" does not end in a valid package name`,
	}}
	for _, test := range tests {
		err := test.cfg.Validate()
		if test.wantErr == "" {
			qt.Check(t, qt.IsNil(err), qt.Commentf("%+v", test.cfg))
			continue
		}
		qt.Check(t, qt.ErrorMatches(err, test.wantErr), qt.Commentf("%+v", test.cfg))
	}
}

func TestInvalidArity(t *testing.T) {
	_, err := Tuple(Config{MaxArity: -1})
	qt.Assert(t, qt.ErrorIs(err, ErrArity))
	_, err = Funcs(Config{})
	qt.Assert(t, qt.ErrorIs(err, ErrArity))
}

func TestGeneratedSourceTypeChecks(t *testing.T) {
	for _, maxArity := range []int{1, 2, 3, 7, DefaultMaxArity} {
		t.Run(fmt.Sprint(maxArity), func(t *testing.T) {
			cfg := Config{MaxArity: maxArity}
			tpkg := checkTuple(t, cfg, DefaultTupleImport)
			qt.Assert(t, qt.Equals(tpkg.Name(), "tuple"))
			qt.Assert(t, qt.Equals(tpkg.Scope().Lookup("MaxArity").(*types.Const).Val().String(), fmt.Sprint(maxArity)))
			for n := 0; n <= maxArity; n++ {
				qt.Check(t, qt.IsNotNil(tpkg.Scope().Lookup(fmt.Sprintf("T%d", n))))
			}
			qt.Check(t, qt.IsNil(tpkg.Scope().Lookup(fmt.Sprintf("T%d", maxArity+1))))

			fpkg := checkFuncs(t, cfg, tpkg)
			qt.Assert(t, qt.Equals(fpkg.Name(), "tuplefunc"))
			qt.Check(t, qt.IsNotNil(fpkg.Scope().Lookup(fmt.Sprintf("RefCall_%d", maxArity))))
		})
	}
}

func TestCustomPackageAndImport(t *testing.T) {
	cfg := Config{MaxArity: 2, Package: "tup", TupleImport: "example.com/x/tup"}
	tpkg := checkTuple(t, cfg, cfg.TupleImport)
	qt.Assert(t, qt.Equals(tpkg.Name(), "tup"))

	src, err := Funcs(Config{MaxArity: 2, TupleImport: cfg.TupleImport})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(string(src), `import "example.com/x/tup"`))
	qt.Assert(t, qt.StringContains(string(src), "t tup.T2[A0, A1]"))
	checkFuncs(t, Config{MaxArity: 2, TupleImport: cfg.TupleImport}, tpkg)
}

func TestGeneratedHeader(t *testing.T) {
	src, err := Tuple(Config{MaxArity: 2})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(strings.HasPrefix(string(src), "// Code generated by tuplegen. DO NOT EDIT.\n\npackage tuple\n")))
	qt.Assert(t, qt.IsTrue(ast.IsGenerated(parse(t, src))))
}

func TestTupleDeclarations(t *testing.T) {
	src, err := Tuple(Config{MaxArity: DefaultMaxArity})
	qt.Assert(t, qt.IsNil(err))
	names := declNames(t, src)

	for _, name := range []string{
		"MaxArity",
		"T0", "T16", "MkT0", "MkT16", "T0.T", "T16.Len",
		"Append0", "Append15", "Prepend0", "Prepend15",
		"T1.PluckTail", "T16.PluckTail", "T1.Pluck", "T16.Pluck",
		"T0.Split", "T16.Split",
		"Merge_0_0", "Merge_16_0", "Merge_0_16", "Merge_8_8", "Merge_3_2",
	} {
		qt.Check(t, qt.IsTrue(names[name]), qt.Commentf("missing %s", name))
	}
	// Instances whose result would not fit are not generated,
	// so using them is a compile error.
	for _, name := range []string{
		"T17", "Append16", "Prepend16",
		"T0.Pluck", "T0.PluckTail",
		"Merge_8_9", "Merge_16_1", "Merge_0_17",
	} {
		qt.Check(t, qt.IsFalse(names[name]), qt.Commentf("unexpected %s", name))
	}
	qt.Assert(t, qt.Equals(countPrefix(names, "Merge_"), 153))
}

func TestTupleSignatures(t *testing.T) {
	src, err := Tuple(Config{MaxArity: 3})
	qt.Assert(t, qt.IsNil(err))
	decls, err := Declarations(src)
	qt.Assert(t, qt.IsNil(err))
	text := make(map[string]string)
	for _, d := range decls {
		text[d.Name] = d.Text
	}
	qt.Check(t, qt.Equals(text["Append2"], "func Append2[A0, A1, E any](t T2[A0, A1], e E) T3[A0, A1, E]"))
	qt.Check(t, qt.Equals(text["Prepend0"], "func Prepend0[E any](t T0, e E) T1[E]"))
	qt.Check(t, qt.Equals(text["T3.PluckTail"], "func (t T3[A0, A1, A2]) PluckTail() (T2[A0, A1], A2)"))
	qt.Check(t, qt.Equals(text["T1.Pluck"], "func (t T1[A0]) Pluck() (A0, T0)"))
	qt.Check(t, qt.Equals(text["T3.Split"], "func (t T3[A0, A1, A2]) Split() (T1[A0], T2[A1, A2])"))
	qt.Check(t, qt.Equals(text["T1.Split"], "func (t T1[A0]) Split() (T0, T1[A0])"))
	qt.Check(t, qt.Equals(text["Merge_0_0"], "func Merge_0_0(a T0, b T0) T0"))
	qt.Check(t, qt.Equals(text["Merge_1_2"], "func Merge_1_2[A0, B0, B1 any](a T1[A0], b T2[B0, B1]) T3[A0, B0, B1]"))
	qt.Check(t, qt.Equals(text["T0"], "T0 struct{}"))
	qt.Check(t, qt.Equals(text["MaxArity"], "MaxArity = 3"))
}

func TestFuncsDeclarations(t *testing.T) {
	src, err := Funcs(Config{MaxArity: DefaultMaxArity})
	qt.Assert(t, qt.IsNil(err))
	names := declNames(t, src)
	for _, prefix := range []string{"Call_", "RefCall_", "ToA_", "FromA_", "ToR_", "FromR_"} {
		qt.Check(t, qt.Equals(countPrefix(names, prefix), DefaultMaxArity+1), qt.Commentf("prefix %s", prefix))
		qt.Check(t, qt.IsTrue(names[prefix+"0"]))
		qt.Check(t, qt.IsTrue(names[prefix+"16"]))
		qt.Check(t, qt.IsFalse(names[prefix+"17"]))
	}
}

func checkTuple(t *testing.T, cfg Config, path string) *types.Package {
	t.Helper()
	src, err := Tuple(cfg)
	qt.Assert(t, qt.IsNil(err))
	return check(t, path, src, nil)
}

func checkFuncs(t *testing.T, cfg Config, tpkg *types.Package) *types.Package {
	t.Helper()
	src, err := Funcs(cfg)
	qt.Assert(t, qt.IsNil(err))
	return check(t, "example.com/tuplefunc", src, importerFunc(func(path string) (*types.Package, error) {
		if path != tpkg.Path() {
			return nil, fmt.Errorf("unexpected import %q", path)
		}
		return tpkg, nil
	}))
}

func check(t *testing.T, path string, src []byte, imp types.Importer) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path+"/gen.go", src, 0)
	qt.Assert(t, qt.IsNil(err))
	conf := types.Config{Importer: imp}
	pkg, err := conf.Check(path, fset, []*ast.File{f}, nil)
	qt.Assert(t, qt.IsNil(err))
	return pkg
}

type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) {
	return f(path)
}

func parse(t *testing.T, src []byte) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "", src, parser.ParseComments)
	qt.Assert(t, qt.IsNil(err))
	return f
}

func declNames(t *testing.T, src []byte) map[string]bool {
	t.Helper()
	decls, err := Declarations(src)
	qt.Assert(t, qt.IsNil(err))
	names := make(map[string]bool)
	for _, d := range decls {
		names[d.Name] = true
	}
	return names
}

func countPrefix(names map[string]bool, prefix string) int {
	n := 0
	for name := range names {
		if strings.HasPrefix(name, prefix) {
			n++
		}
	}
	return n
}
