package tuple_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tuplealg/generic/tuple"
)

// Compile-time checks that the tuple types satisfy the contracts.
var _ tuple.Tuple = tuple.T0{}
var _ tuple.Tuple = tuple.T16[int, int, int, int, int, int, int, int, int, int, int, int, int, int, int, int]{}
var _ tuple.Plucker[int, tuple.T2[string, bool]] = tuple.T3[int, string, bool]{}
var _ tuple.TailPlucker[tuple.T2[int, string], bool] = tuple.T3[int, string, bool]{}
var _ tuple.Splitter[tuple.T1[int], tuple.T2[string, bool]] = tuple.T3[int, string, bool]{}
var _ tuple.Splitter[tuple.T0, tuple.T0] = tuple.T0{}
var _ tuple.Splitter[tuple.T0, tuple.T1[int]] = tuple.T1[int]{}

func TestMaxArity(t *testing.T) {
	qt.Assert(t, qt.Equals(tuple.MaxArity, 16))
}

func TestMkAndUnpack(t *testing.T) {
	x := tuple.MkT3(1, "abc", true)
	qt.Assert(t, qt.Equals(x.A0, 1))
	qt.Assert(t, qt.Equals(x.A1, "abc"))
	qt.Assert(t, qt.Equals(x.A2, true))
	qt.Assert(t, qt.Equals(x.Len(), 3))

	a, b, c := x.T()
	qt.Assert(t, qt.Equals(a, 1))
	qt.Assert(t, qt.Equals(b, "abc"))
	qt.Assert(t, qt.Equals(c, true))

	qt.Assert(t, qt.Equals(tuple.MkT0(), tuple.T0{}))
	qt.Assert(t, qt.Equals(tuple.MkT0().Len(), 0))
	qt.Assert(t, qt.Equals(tuple.MkT1("x").T(), "x"))
}

func TestAppend(t *testing.T) {
	out := tuple.Append1(tuple.MkT1(0), 1)
	qt.Assert(t, qt.Equals(out, tuple.MkT2(0, 1)))
	out2 := tuple.Append2(out, 2)
	qt.Assert(t, qt.Equals(out2, tuple.MkT3(0, 1, 2)))
	out3 := tuple.Append3(out2, 3)
	qt.Assert(t, qt.Equals(out3, tuple.MkT4(0, 1, 2, 3)))
	out4 := tuple.Append4(out3, "foo")
	qt.Assert(t, qt.Equals(out4, tuple.MkT5(0, 1, 2, 3, "foo")))

	head, tail := out4.PluckTail()
	qt.Assert(t, qt.Equals(head, tuple.MkT4(0, 1, 2, 3)))
	qt.Assert(t, qt.Equals(tail, "foo"))
	head2, tail2 := head.PluckTail()
	qt.Assert(t, qt.Equals(head2, tuple.MkT3(0, 1, 2)))
	qt.Assert(t, qt.Equals(tail2, 3))
}

func TestPrepend(t *testing.T) {
	out := tuple.Prepend1(tuple.MkT1(0), 1)
	qt.Assert(t, qt.Equals(out, tuple.MkT2(1, 0)))
	out2 := tuple.Prepend2(out, 2)
	qt.Assert(t, qt.Equals(out2, tuple.MkT3(2, 1, 0)))
	out3 := tuple.Prepend3(out2, 3)
	qt.Assert(t, qt.Equals(out3, tuple.MkT4(3, 2, 1, 0)))
	out4 := tuple.Prepend4(out3, "foo")
	qt.Assert(t, qt.Equals(out4, tuple.MkT5("foo", 3, 2, 1, 0)))

	head, tail := out4.Pluck()
	qt.Assert(t, qt.Equals(head, "foo"))
	qt.Assert(t, qt.Equals(tail, tuple.MkT4(3, 2, 1, 0)))
	head2, tail2 := tail.Pluck()
	qt.Assert(t, qt.Equals(head2, 3))
	qt.Assert(t, qt.Equals(tail2, tuple.MkT3(2, 1, 0)))
}

// checkPluckTail checks that PluckTail undoes the Append that produced x.
func checkPluckTail[T interface {
	tuple.Tuple
	tuple.TailPlucker[H, E]
}, H tuple.Tuple, E comparable](t *testing.T, x T, head H, elem E) {
	t.Helper()
	gotHead, gotElem := x.PluckTail()
	qt.Check(t, qt.Equals(any(gotHead), any(head)))
	qt.Check(t, qt.Equals(gotElem, elem))
	qt.Check(t, qt.Equals(x.Len(), head.Len()+1))
}

// checkPluck checks that Pluck undoes the Prepend that produced x.
func checkPluck[T interface {
	tuple.Tuple
	tuple.Plucker[E, R]
}, R tuple.Tuple, E comparable](t *testing.T, x T, elem E, rest R) {
	t.Helper()
	gotElem, gotRest := x.Pluck()
	qt.Check(t, qt.Equals(gotElem, elem))
	qt.Check(t, qt.Equals(any(gotRest), any(rest)))
	qt.Check(t, qt.Equals(x.Len(), rest.Len()+1))
}

func TestAppendPluckTailAllArities(t *testing.T) {
	t0 := tuple.MkT0()
	t1 := tuple.Append0(t0, 1)
	checkPluckTail(t, t1, t0, 1)
	t2 := tuple.Append1(t1, "two")
	checkPluckTail(t, t2, t1, "two")
	t3 := tuple.Append2(t2, true)
	checkPluckTail(t, t3, t2, true)
	t4 := tuple.Append3(t3, 4.5)
	checkPluckTail(t, t4, t3, 4.5)
	t5 := tuple.Append4(t4, 'r')
	checkPluckTail(t, t5, t4, 'r')
	t6 := tuple.Append5(t5, uint8(6))
	checkPluckTail(t, t6, t5, uint8(6))
	t7 := tuple.Append6(t6, 7)
	checkPluckTail(t, t7, t6, 7)
	t8 := tuple.Append7(t7, "eight")
	checkPluckTail(t, t8, t7, "eight")
	t9 := tuple.Append8(t8, false)
	checkPluckTail(t, t9, t8, false)
	t10 := tuple.Append9(t9, 10)
	checkPluckTail(t, t10, t9, 10)
	t11 := tuple.Append10(t10, int64(11))
	checkPluckTail(t, t11, t10, int64(11))
	t12 := tuple.Append11(t11, "twelve")
	checkPluckTail(t, t12, t11, "twelve")
	t13 := tuple.Append12(t12, 13)
	checkPluckTail(t, t13, t12, 13)
	t14 := tuple.Append13(t13, 14.0)
	checkPluckTail(t, t14, t13, 14.0)
	t15 := tuple.Append14(t14, true)
	checkPluckTail(t, t15, t14, true)
	t16 := tuple.Append15(t15, "sixteen")
	checkPluckTail(t, t16, t15, "sixteen")

	qt.Assert(t, qt.Equals(t16.Len(), tuple.MaxArity))
	qt.Assert(t, qt.Equals(t16, tuple.MkT16(1, "two", true, 4.5, 'r', uint8(6), 7, "eight", false, 10, int64(11), "twelve", 13, 14.0, true, "sixteen")))
}

func TestPrependPluckAllArities(t *testing.T) {
	t0 := tuple.MkT0()
	t1 := tuple.Prepend0(t0, 1)
	checkPluck(t, t1, 1, t0)
	t2 := tuple.Prepend1(t1, "two")
	checkPluck(t, t2, "two", t1)
	t3 := tuple.Prepend2(t2, true)
	checkPluck(t, t3, true, t2)
	t4 := tuple.Prepend3(t3, 4.5)
	checkPluck(t, t4, 4.5, t3)
	t5 := tuple.Prepend4(t4, 'r')
	checkPluck(t, t5, 'r', t4)
	t6 := tuple.Prepend5(t5, uint8(6))
	checkPluck(t, t6, uint8(6), t5)
	t7 := tuple.Prepend6(t6, 7)
	checkPluck(t, t7, 7, t6)
	t8 := tuple.Prepend7(t7, "eight")
	checkPluck(t, t8, "eight", t7)
	t9 := tuple.Prepend8(t8, false)
	checkPluck(t, t9, false, t8)
	t10 := tuple.Prepend9(t9, 10)
	checkPluck(t, t10, 10, t9)
	t11 := tuple.Prepend10(t10, int64(11))
	checkPluck(t, t11, int64(11), t10)
	t12 := tuple.Prepend11(t11, "twelve")
	checkPluck(t, t12, "twelve", t11)
	t13 := tuple.Prepend12(t12, 13)
	checkPluck(t, t13, 13, t12)
	t14 := tuple.Prepend13(t13, 14.0)
	checkPluck(t, t14, 14.0, t13)
	t15 := tuple.Prepend14(t14, true)
	checkPluck(t, t15, true, t14)
	t16 := tuple.Prepend15(t15, "sixteen")
	checkPluck(t, t16, "sixteen", t15)

	qt.Assert(t, qt.Equals(t16.Len(), tuple.MaxArity))
	qt.Assert(t, qt.Equals(t16, tuple.MkT16("sixteen", true, 14.0, 13, "twelve", int64(11), 10, false, "eight", 7, uint8(6), 'r', 4.5, true, "two", 1)))
}

func TestMerge(t *testing.T) {
	a := tuple.MkT3(1, 2, 3)
	b := tuple.MkT2("foo", "bar")
	c := tuple.Merge_3_2(a, b)
	qt.Assert(t, qt.Equals(c, tuple.MkT5(1, 2, 3, "foo", "bar")))
	qt.Assert(t, qt.Equals(c.A3, "foo"))

	one := tuple.MkT1("test")
	qt.Assert(t, qt.Equals(tuple.Merge_1_0(one, tuple.MkT0()), one))
	qt.Assert(t, qt.Equals(tuple.Merge_0_1(tuple.MkT0(), one), one))
	qt.Assert(t, qt.Equals(tuple.Merge_0_0(tuple.MkT0(), tuple.MkT0()), tuple.MkT0()))
	qt.Assert(t, qt.Equals(tuple.Merge_0_1(tuple.T0{}, tuple.MkT1(1)), tuple.MkT1(1)))
	qt.Assert(t, qt.Equals(tuple.Merge_1_0(tuple.MkT1(1), tuple.T0{}), tuple.MkT1(1)))
}

func TestMergeIdentityAtMaxArity(t *testing.T) {
	x := tuple.MkT16(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)
	qt.Assert(t, qt.Equals(tuple.Merge_16_0(x, tuple.T0{}), x))
	qt.Assert(t, qt.Equals(tuple.Merge_0_16(tuple.T0{}, x), x))

	l := tuple.MkT8(1, 2, 3, 4, 5, 6, 7, 8)
	r := tuple.MkT8(9, 10, 11, 12, 13, 14, 15, 16)
	qt.Assert(t, qt.Equals(tuple.Merge_8_8(l, r), x))
	qt.Assert(t, qt.Equals(tuple.Merge_1_15(tuple.MkT1(1), tuple.MkT15(2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16)), x))
	qt.Assert(t, qt.Equals(tuple.Merge_15_1(tuple.MkT15(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15), tuple.MkT1(16)), x))
}

func TestSplit(t *testing.T) {
	l, r := tuple.MkT3(1, 2, 3).Split()
	qt.Assert(t, qt.Equals(l, tuple.MkT1(1)))
	qt.Assert(t, qt.Equals(r, tuple.MkT2(2, 3)))

	l2, r2 := tuple.MkT2(1, 2).Split()
	qt.Assert(t, qt.Equals(l2, tuple.MkT1(1)))
	qt.Assert(t, qt.Equals(r2, tuple.MkT1(2)))

	l0, r0 := tuple.MkT0().Split()
	qt.Assert(t, qt.Equals(l0, tuple.T0{}))
	qt.Assert(t, qt.Equals(r0, tuple.T0{}))

	l1, r1 := tuple.MkT1(1).Split()
	qt.Assert(t, qt.Equals(l1, tuple.T0{}))
	qt.Assert(t, qt.Equals(r1, tuple.MkT1(1)))
}

// checkSplit checks the arities of the halves l and r of a split
// and that merging them produced x again.
func checkSplit[L, R tuple.Tuple, T interface {
	comparable
	tuple.Tuple
}](t *testing.T, x T, l L, r R, merged T) {
	t.Helper()
	n := x.Len()
	qt.Check(t, qt.Equals(l.Len(), n/2), qt.Commentf("arity %d", n))
	qt.Check(t, qt.Equals(r.Len(), n-n/2), qt.Commentf("arity %d", n))
	qt.Check(t, qt.Equals(merged, x), qt.Commentf("arity %d", n))
}

func TestSplitMergeAllArities(t *testing.T) {
	x0 := tuple.MkT0()
	l0, r0 := x0.Split()
	checkSplit(t, x0, l0, r0, tuple.Merge_0_0(l0, r0))

	x1 := tuple.MkT1(1)
	l1, r1 := x1.Split()
	checkSplit(t, x1, l1, r1, tuple.Merge_0_1(l1, r1))

	x2 := tuple.MkT2(1, "2")
	l2, r2 := x2.Split()
	checkSplit(t, x2, l2, r2, tuple.Merge_1_1(l2, r2))

	x3 := tuple.MkT3(1, "2", 3)
	l3, r3 := x3.Split()
	checkSplit(t, x3, l3, r3, tuple.Merge_1_2(l3, r3))

	x4 := tuple.MkT4(1, "2", 3, "4")
	l4, r4 := x4.Split()
	checkSplit(t, x4, l4, r4, tuple.Merge_2_2(l4, r4))

	x5 := tuple.MkT5(1, "2", 3, "4", 5)
	l5, r5 := x5.Split()
	checkSplit(t, x5, l5, r5, tuple.Merge_2_3(l5, r5))

	x6 := tuple.MkT6(1, "2", 3, "4", 5, "6")
	l6, r6 := x6.Split()
	checkSplit(t, x6, l6, r6, tuple.Merge_3_3(l6, r6))

	x7 := tuple.MkT7(1, "2", 3, "4", 5, "6", 7)
	l7, r7 := x7.Split()
	checkSplit(t, x7, l7, r7, tuple.Merge_3_4(l7, r7))

	x8 := tuple.MkT8(1, "2", 3, "4", 5, "6", 7, "8")
	l8, r8 := x8.Split()
	checkSplit(t, x8, l8, r8, tuple.Merge_4_4(l8, r8))

	x9 := tuple.MkT9(1, "2", 3, "4", 5, "6", 7, "8", 9)
	l9, r9 := x9.Split()
	checkSplit(t, x9, l9, r9, tuple.Merge_4_5(l9, r9))

	x10 := tuple.MkT10(1, "2", 3, "4", 5, "6", 7, "8", 9, "10")
	l10, r10 := x10.Split()
	checkSplit(t, x10, l10, r10, tuple.Merge_5_5(l10, r10))

	x11 := tuple.MkT11(1, "2", 3, "4", 5, "6", 7, "8", 9, "10", 11)
	l11, r11 := x11.Split()
	checkSplit(t, x11, l11, r11, tuple.Merge_5_6(l11, r11))

	x12 := tuple.MkT12(1, "2", 3, "4", 5, "6", 7, "8", 9, "10", 11, "12")
	l12, r12 := x12.Split()
	checkSplit(t, x12, l12, r12, tuple.Merge_6_6(l12, r12))

	x13 := tuple.MkT13(1, "2", 3, "4", 5, "6", 7, "8", 9, "10", 11, "12", 13)
	l13, r13 := x13.Split()
	checkSplit(t, x13, l13, r13, tuple.Merge_6_7(l13, r13))

	x14 := tuple.MkT14(1, "2", 3, "4", 5, "6", 7, "8", 9, "10", 11, "12", 13, "14")
	l14, r14 := x14.Split()
	checkSplit(t, x14, l14, r14, tuple.Merge_7_7(l14, r14))

	x15 := tuple.MkT15(1, "2", 3, "4", 5, "6", 7, "8", 9, "10", 11, "12", 13, "14", 15)
	l15, r15 := x15.Split()
	checkSplit(t, x15, l15, r15, tuple.Merge_7_8(l15, r15))

	x16 := tuple.MkT16(1, "2", 3, "4", 5, "6", 7, "8", 9, "10", 11, "12", 13, "14", 15, "16")
	l16, r16 := x16.Split()
	checkSplit(t, x16, l16, r16, tuple.Merge_8_8(l16, r16))
	qt.Assert(t, qt.Equals(l16, tuple.MkT8(1, "2", 3, "4", 5, "6", 7, "8")))
	qt.Assert(t, qt.Equals(r16, tuple.MkT8(9, "10", 11, "12", 13, "14", 15, "16")))
}

func ExampleAppend2() {
	x := tuple.Append2(tuple.MkT2(1, "a"), true)
	fmt.Println(x.Len(), x)
	// Output:
	// 3 {1 a true}
}

func ExampleT3_PluckTail() {
	head, last := tuple.MkT3(1, "a", true).PluckTail()
	fmt.Println(head, last)
	// Output:
	// {1 a} true
}

func ExampleT3_Pluck() {
	first, rest := tuple.MkT3(1, "a", true).Pluck()
	fmt.Println(first, rest)
	// Output:
	// 1 {a true}
}

func ExampleT5_Split() {
	left, right := tuple.MkT5(1, 2, 3, 4, 5).Split()
	fmt.Println(left, right)
	// Output:
	// {1 2} {3 4 5}
}

func Example_merge() {
	x := tuple.Merge_3_2(tuple.MkT3(1, 2, 3), tuple.MkT2("foo", "bar"))
	fmt.Println(x)
	// Output:
	// {1 2 3 foo bar}
}
