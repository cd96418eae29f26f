// Package tuplefunc provides functions that call functions with the
// values held in a tuple, and functions that convert between
// multiple-argument and multiple-return functions and single-argument,
// single-return functions. This makes it trivial to pass arbitrary
// functions to generic operations that are designed to operate on
// functions of one argument and one result.
//
// For functions with as many argument or return parameters as can be
// represented by the tuple package, this package provides a function
// for each of the following forms, where N is the number of arguments
// or results:
//
//	Call_N     calls f(A0, ..., AN-1) R with the values of a tuple.TN
//	RefCall_N  calls f(*A0, ..., *AN-1) R with pointers into a *tuple.TN
//	ToA_N      converts func(A0, ..., AN-1) R to func(tuple.TN[A0, ..., AN-1]) R
//	FromA_N    converts func(tuple.TN[A0, ..., AN-1]) R to func(A0, ..., AN-1) R
//	ToR_N      converts func(A) (R0, ..., RN-1) to func(A) tuple.TN[R0, ..., RN-1]
//	FromR_N    converts func(A) tuple.TN[R0, ..., RN-1] to func(A) (R0, ..., RN-1)
//
// So, for example, ToA_2 converts
//
//	func(context.Context, string) error
//
// to:
//
//	func(tuple.T2[context.Context, string]) error
package tuplefunc

//go:generate go run ../../cmd/tuplegen tuplefunc tuplefunc_gen.go
