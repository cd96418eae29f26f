package tuplegen

import (
	"bytes"

	"github.com/kylelemons/godebug/diff"
)

// DiffSource returns a line diff from want, the source emitted by the
// generator, to got, the content of a checked-in generated file. It
// returns the empty string when both are byte for byte identical.
func DiffSource(want, got []byte) string {
	if bytes.Equal(want, got) {
		return ""
	}
	return diff.Diff(string(want), string(got))
}
