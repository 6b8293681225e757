package quiz

import "math/rand/v2"

// Shuffle returns a uniformly random permutation of in using Fisher–Yates.
// The input slice is left untouched.
func Shuffle[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
