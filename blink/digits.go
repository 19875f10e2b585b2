package blink

import "golang.org/x/exp/constraints"

// numDigits returns the length of v's decimal representation.
func numDigits[T constraints.Unsigned](v T) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// splitDigits splits v into the numbers written by its first and last
// n decimal digits. v must have at least n+1 digits.
func splitDigits[T constraints.Unsigned](v T, n int) (hi, lo T) {
	p := T(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return v / p, v % p
}
