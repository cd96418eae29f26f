package tuplegen

import (
	"fmt"
	"io"
	"iter"
)

// Op identifies an operation for which implementations are generated.
type Op int

const (
	OpType Op = iota
	OpAppend
	OpPrepend
	OpPluckTail
	OpPluck
	OpSplit
	OpMerge
	OpCall
	OpRefCall
	OpToArgs
	OpFromArgs
	OpToResults
	OpFromResults
)

var opNames = [...]string{
	OpType:        "type",
	OpAppend:      "append",
	OpPrepend:     "prepend",
	OpPluckTail:   "plucktail",
	OpPluck:       "pluck",
	OpSplit:       "split",
	OpMerge:       "merge",
	OpCall:        "call",
	OpRefCall:     "refcall",
	OpToArgs:      "toargs",
	OpFromArgs:    "fromargs",
	OpToResults:   "toresults",
	OpFromResults: "fromresults",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// Instance is a single entry of the generation matrix: one operation
// at one arity, or at one pair of arities for OpMerge.
type Instance struct {
	Op    Op
	Arity int
	// Other holds the arity of the right operand of OpMerge.
	Other int
}

func (inst Instance) String() string {
	switch inst.Op {
	case OpMerge:
		return fmt.Sprintf("%v %d %d", inst.Op, inst.Arity, inst.Other)
	case OpSplit:
		k := SplitPoint(inst.Arity)
		return fmt.Sprintf("%v %d (%d, %d)", inst.Op, inst.Arity, k, inst.Arity-k)
	}
	return fmt.Sprintf("%v %d", inst.Op, inst.Arity)
}

// SplitPoint returns the number of elements in the left half when a
// tuple of arity n is split. The right half gets the extra element
// when n is odd.
func SplitPoint(n int) int {
	return n / 2
}

// Matrix enumerates the operation instances needed to support every
// tuple arity from 0 to MaxArity.
type Matrix struct {
	MaxArity int
}

// Arities returns all supported arities, 0 to MaxArity.
func (m Matrix) Arities() iter.Seq[int] {
	return span(0, m.MaxArity)
}

// GrowArities returns the arities that can gain an element without
// exceeding MaxArity. These are the source arities of Append and Prepend.
func (m Matrix) GrowArities() iter.Seq[int] {
	return span(0, m.MaxArity-1)
}

// ShrinkArities returns the arities that have an element to remove.
// These are the source arities of Pluck and PluckTail.
func (m Matrix) ShrinkArities() iter.Seq[int] {
	return span(1, m.MaxArity)
}

// MergePairs returns every pair of operand arities whose sum
// does not exceed MaxArity, ordered by the left arity and then
// by the right.
func (m Matrix) MergePairs() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i <= m.MaxArity; i++ {
			for j := 0; i+j <= m.MaxArity; j++ {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}

// Instances returns the whole generation matrix.
func (m Matrix) Instances() []Instance {
	var insts []Instance
	add := func(op Op, arities iter.Seq[int]) {
		for n := range arities {
			insts = append(insts, Instance{Op: op, Arity: n})
		}
	}
	add(OpType, m.Arities())
	add(OpAppend, m.GrowArities())
	add(OpPrepend, m.GrowArities())
	add(OpPluckTail, m.ShrinkArities())
	add(OpPluck, m.ShrinkArities())
	add(OpSplit, m.Arities())
	for i, j := range m.MergePairs() {
		insts = append(insts, Instance{Op: OpMerge, Arity: i, Other: j})
	}
	add(OpCall, m.Arities())
	add(OpRefCall, m.Arities())
	add(OpToArgs, m.Arities())
	add(OpFromArgs, m.Arities())
	add(OpToResults, m.Arities())
	add(OpFromResults, m.Arities())
	return insts
}

// WriteMatrix writes the instances of m to w, one per line.
func WriteMatrix(w io.Writer, m Matrix) error {
	for _, inst := range m.Instances() {
		if _, err := fmt.Fprintln(w, inst); err != nil {
			return err
		}
	}
	return nil
}

// span returns the integers from lo to hi inclusive.
func span(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := lo; n <= hi; n++ {
			if !yield(n) {
				return
			}
		}
	}
}
