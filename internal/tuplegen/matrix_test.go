package tuplegen

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/stretchr/testify/assert"

	"github.com/tuplealg/generic/internal/filetest"
)

var testUpdateMatrixTests = flag.Bool("test.update-matrix-tests", false, "If set, replace expected matrix test results with actual results.")

func TestSplitPoint(t *testing.T) {
	for n, want := range []int{0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8} {
		k := SplitPoint(n)
		qt.Check(t, qt.Equals(k, want), qt.Commentf("arity %d", n))
		// The right half never holds fewer values than the left.
		qt.Check(t, qt.IsTrue(n-k >= k))
		qt.Check(t, qt.IsTrue(n-k-k <= 1))
	}
}

func TestMergePairs(t *testing.T) {
	m := Matrix{MaxArity: DefaultMaxArity}
	seen := make(map[[2]int]bool)
	for i, j := range m.MergePairs() {
		qt.Assert(t, qt.IsTrue(i >= 0 && j >= 0 && i+j <= DefaultMaxArity), qt.Commentf("pair %d %d", i, j))
		seen[[2]int{i, j}] = true
	}
	// The full triangle: sum over i of (M-i+1).
	qt.Assert(t, qt.HasLen(seen, 153))
	for _, p := range [][2]int{{0, 0}, {0, 16}, {16, 0}, {8, 8}, {3, 2}, {1, 15}} {
		qt.Check(t, qt.IsTrue(seen[p]), qt.Commentf("pair %v", p))
	}
	for _, p := range [][2]int{{8, 9}, {16, 1}, {0, 17}} {
		qt.Check(t, qt.IsFalse(seen[p]), qt.Commentf("pair %v", p))
	}
}

func TestMergePairsStop(t *testing.T) {
	m := Matrix{MaxArity: DefaultMaxArity}
	n := 0
	for range m.MergePairs() {
		n++
		if n == 5 {
			break
		}
	}
	qt.Assert(t, qt.Equals(n, 5))
}

func TestArities(t *testing.T) {
	m := Matrix{MaxArity: 3}
	collect := func(seq func(func(int) bool)) []int {
		var ns []int
		for n := range seq {
			ns = append(ns, n)
		}
		return ns
	}
	qt.Assert(t, qt.DeepEquals(collect(m.Arities()), []int{0, 1, 2, 3}))
	qt.Assert(t, qt.DeepEquals(collect(m.GrowArities()), []int{0, 1, 2}))
	qt.Assert(t, qt.DeepEquals(collect(m.ShrinkArities()), []int{1, 2, 3}))
}

func TestInstanceCounts(t *testing.T) {
	counts := make(map[Op]int)
	for _, inst := range (Matrix{MaxArity: DefaultMaxArity}).Instances() {
		counts[inst.Op]++
	}
	qt.Assert(t, qt.DeepEquals(counts, map[Op]int{
		OpType:        17,
		OpAppend:      16,
		OpPrepend:     16,
		OpPluckTail:   16,
		OpPluck:       16,
		OpSplit:       17,
		OpMerge:       153,
		OpCall:        17,
		OpRefCall:     17,
		OpToArgs:      17,
		OpFromArgs:    17,
		OpToResults:   17,
		OpFromResults: 17,
	}))
}

func TestInstanceString(t *testing.T) {
	qt.Check(t, qt.Equals(Instance{Op: OpAppend, Arity: 3}.String(), "append 3"))
	qt.Check(t, qt.Equals(Instance{Op: OpMerge, Arity: 3, Other: 2}.String(), "merge 3 2"))
	qt.Check(t, qt.Equals(Instance{Op: OpSplit, Arity: 5}.String(), "split 5 (2, 3)"))
	qt.Check(t, qt.Equals(Op(99).String(), "Op(99)"))
}

func TestWriteMatrix(t *testing.T) {
	srcDir := "testdata"
	resultDir := filepath.Join(srcDir, "results")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".arity") {
		t.Run(fi.Name(), func(t *testing.T) {
			b, err := os.ReadFile(filepath.Join(srcDir, fi.Name()))
			assert.NoError(t, err)
			maxArity, err := strconv.Atoi(strings.TrimSpace(string(b)))
			assert.NoError(t, err)

			var buf bytes.Buffer
			err = WriteMatrix(&buf, Matrix{MaxArity: maxArity})
			assert.NoError(t, err)
			assert.Equal(t, len((Matrix{MaxArity: maxArity}).Instances()), strings.Count(buf.String(), "\n"))
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateMatrixTests)
		})
	}
}
