// Package tuple is a collection of generic struct types that hold
// a specific number of values, from T0, which holds nothing, to T16.
//
// A tuple of arity N has fields A0 to AN-1. It is constructed with
// MkTN and unpacked with its T method. The operations that turn one
// tuple type into another preserve the static type of every element:
//
//	Append2(MkT2(1, "a"), true)      // T3[int, string, bool]
//	Prepend2(MkT2(1, "a"), true)     // T3[bool, int, string]
//	MkT3(1, "a", true).PluckTail()   // T2[int, string], bool
//	MkT3(1, "a", true).Pluck()       // int, T2[string, bool]
//	MkT3(1, "a", true).Split()       // T1[int], T2[string, bool]
//	Merge_1_2(MkT1(1), MkT2("a", 2)) // T3[int, string, int]
//
// Operations are only defined where the result fits in MaxArity
// values: there is no Append16, no Merge_8_9, and T0 has no Pluck
// method, so such calls are rejected by the compiler.
//
// See the tuple/tuplefunc package for a way to call functions with
// tuple values and to convert between multiple-argument functions
// and their single-argument equivalents.
package tuple

//go:generate go run ../cmd/tuplegen tuple tuple_gen.go
