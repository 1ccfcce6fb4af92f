package emulator

import "golang.org/x/exp/constraints"

func Align[I constraints.Integer](a, b I) I {
	return (a + b - 1) &^ (b - 1)
}

// Aligned reports whether a is a multiple of b. b must be a power of
// two.
func Aligned[I constraints.Integer](a, b I) bool {
	return a&(b-1) == 0
}
