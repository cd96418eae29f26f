package tuplegen

import (
	"bytes"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
)

func TestDiffSourceUpToDate(t *testing.T) {
	src, err := Funcs(Config{MaxArity: 3})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(DiffSource(src, bytes.Clone(src)), ""))
}

func TestDiffSourceBodyChange(t *testing.T) {
	src, err := Tuple(Config{MaxArity: 5})
	qt.Assert(t, qt.IsNil(err))
	stale := bytes.Replace(src, []byte("Len() int {\n\treturn 5\n}"), []byte("Len() int {\n\treturn 4\n}"), 1)
	qt.Assert(t, qt.Not(qt.Equals(string(stale), string(src))))

	// A stale body keeps every signature intact.
	want, err := Declarations(src)
	qt.Assert(t, qt.IsNil(err))
	got, err := Declarations(stale)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cmp.Diff(want, got), ""))

	patch := DiffSource(src, stale)
	qt.Assert(t, qt.StringContains(patch, "-\treturn 5"))
	qt.Assert(t, qt.StringContains(patch, "+\treturn 4"))
}

func TestDiffSourceTrailingNewline(t *testing.T) {
	src, err := Tuple(Config{MaxArity: 1})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Not(qt.Equals(DiffSource(src, append(bytes.Clone(src), '\n')), "")))
}
