package tuple_test

import (
	"os"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tuplealg/generic/internal/tuplegen"
	"github.com/tuplealg/generic/tuple"
)

func TestGeneratedFileUpToDate(t *testing.T) {
	src, err := tuplegen.Tuple(tuplegen.Config{MaxArity: tuple.MaxArity})
	qt.Assert(t, qt.IsNil(err))
	data, err := os.ReadFile("tuple_gen.go")
	qt.Assert(t, qt.IsNil(err))

	if patch := tuplegen.DiffSource(src, data); patch != "" {
		t.Fatalf("tuple_gen.go is out of date, run go generate (-want +got):\n%s", patch)
	}
}
