package gen

import (
	"math/rand"
)

// weightedIndex draws an index according to the given probability weights.
// Weights need not sum to one.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// sampleIndices selects n distinct indices from [0, size) without
// replacement, capped at size.
func sampleIndices(rng *rand.Rand, size, n int) []int {
	if n > size {
		n = size
	}
	indices := rng.Perm(size)
	return indices[:n]
}
