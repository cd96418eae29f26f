package tuple

// Tuple is implemented by every tuple type in this package.
type Tuple interface {
	// Len returns the number of values held in the tuple.
	Len() int
}

// Plucker is implemented by the tuple types that hold at least one
// value. H is the type of the first value and T the tuple type
// holding the others.
type Plucker[H, T any] interface {
	Pluck() (H, T)
}

// TailPlucker is implemented by the tuple types that hold at least
// one value. H is the tuple type holding all but the last value
// and T is the type of the last value.
type TailPlucker[H, T any] interface {
	PluckTail() (H, T)
}

// Splitter is implemented by every tuple type. L and R are the tuple
// types of the left and right halves; when the arity is odd, the
// right half holds the extra value.
type Splitter[L, R any] interface {
	Split() (L, R)
}
