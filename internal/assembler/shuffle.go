package assembler

import "math/rand/v2"

// Shuffle returns a uniformly permuted copy of s (Fisher–Yates).
// The input slice is left untouched.
func Shuffle[T any](rng *rand.Rand, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
