package tuplefunc_test

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tuplealg/generic/internal/tuplegen"
	"github.com/tuplealg/generic/tuple"
	"github.com/tuplealg/generic/tuple/tuplefunc"
)

func TestCall(t *testing.T) {
	args := tuple.MkT3(1, "abc", true)
	f := func(a int, b string, c bool) int {
		if c {
			return a
		}
		return len(b)
	}
	qt.Assert(t, qt.Equals(tuplefunc.Call_3(f, args), 1))
	args.A2 = false
	qt.Assert(t, qt.Equals(tuplefunc.Call_3(f, args), 3))
}

func TestCallArgumentOrder(t *testing.T) {
	var got []string
	f := func(a int, b string, c bool) bool {
		got = append(got, fmt.Sprint(a), b, fmt.Sprint(c))
		return true
	}
	tuplefunc.Call_3(f, tuple.MkT3(1, "abc", true))
	qt.Assert(t, qt.DeepEquals(got, []string{"1", "abc", "true"}))
}

func TestCallNoArgs(t *testing.T) {
	called := false
	r := tuplefunc.Call_0(func() int {
		called = true
		return 99
	}, tuple.MkT0())
	qt.Assert(t, qt.IsTrue(called))
	qt.Assert(t, qt.Equals(r, 99))
}

func TestCallMaxArity(t *testing.T) {
	collect := func(a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15 int) []int {
		return []int{a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15}
	}
	x := tuple.MkT16(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)
	qt.Assert(t, qt.DeepEquals(tuplefunc.Call_16(collect, x), []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}))
}

func TestRefCall(t *testing.T) {
	args := tuple.MkT3(1, "abc", true)
	f := func(a *int, b *string, c *bool) int {
		if *c {
			return *a
		}
		return len(*b)
	}
	qt.Assert(t, qt.Equals(tuplefunc.RefCall_3(f, &args), 1))
	// The tuple is still usable after the call.
	qt.Assert(t, qt.Equals(args, tuple.MkT3(1, "abc", true)))
	qt.Assert(t, qt.Equals(tuplefunc.Call_3(func(a int, b string, c bool) string {
		return b
	}, args), "abc"))
}

func TestRefCallPointsIntoTuple(t *testing.T) {
	args := tuple.MkT2(1, "abc")
	tuplefunc.RefCall_2(func(a *int, b *string) bool {
		*a++
		*b += "def"
		return true
	}, &args)
	qt.Assert(t, qt.Equals(args, tuple.MkT2(2, "abcdef")))
}

func TestArgConversions(t *testing.T) {
	f := func(s string, base int) int64 {
		n, _ := strconv.ParseInt(s, base, 64)
		return n
	}
	tf := tuplefunc.ToA_2(f)
	qt.Assert(t, qt.Equals(tf(tuple.MkT2("ff", 16)), int64(255)))

	g := tuplefunc.FromA_2(tf)
	qt.Assert(t, qt.Equals(g("17", 8), int64(15)))

	z := tuplefunc.ToA_0(func() string { return "zero" })
	qt.Assert(t, qt.Equals(z(tuple.MkT0()), "zero"))
	qt.Assert(t, qt.Equals(tuplefunc.FromA_0(z)(), "zero"))
}

func TestResultConversions(t *testing.T) {
	tf := tuplefunc.ToR_2(strconv.Atoi)
	r := tf("42")
	qt.Assert(t, qt.Equals(r.A0, 42))
	qt.Assert(t, qt.IsNil(r.A1))

	r = tf("x")
	qt.Assert(t, qt.Equals(r.A0, 0))
	qt.Assert(t, qt.ErrorIs(r.A1, strconv.ErrSyntax))

	atoi := tuplefunc.FromR_2(tf)
	n, err := atoi("7")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n, 7))

	var got []string
	record := func(s string) {
		got = append(got, s)
	}
	tr := tuplefunc.ToR_0(record)
	qt.Assert(t, qt.Equals(tr("a"), tuple.MkT0()))
	tuplefunc.FromR_0(tr)("b")
	qt.Assert(t, qt.DeepEquals(got, []string{"a", "b"}))

	one := tuplefunc.ToR_1(errors.New)
	qt.Assert(t, qt.ErrorMatches(one("boom").A0, "boom"))
}

func TestGeneratedFileUpToDate(t *testing.T) {
	src, err := tuplegen.Funcs(tuplegen.Config{MaxArity: tuple.MaxArity})
	qt.Assert(t, qt.IsNil(err))
	data, err := os.ReadFile("tuplefunc_gen.go")
	qt.Assert(t, qt.IsNil(err))

	if patch := tuplegen.DiffSource(src, data); patch != "" {
		t.Fatalf("tuplefunc_gen.go is out of date, run go generate (-want +got):\n%s", patch)
	}
}

func Example_call() {
	f := func(n int, s string, upper bool) string {
		if upper {
			s = fmt.Sprintf("%q", s)
		}
		return strconv.Itoa(n) + ":" + s
	}
	fmt.Println(tuplefunc.Call_3(f, tuple.MkT3(1, "abc", true)))
	// Output:
	// 1:"abc"
}

func Example_toResults() {
	parse := tuplefunc.ToR_2(strconv.Atoi)
	fmt.Println(parse("12"))
	// Output:
	// {12 <nil>}
}
