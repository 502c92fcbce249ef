package quiz

import "math/rand/v2"

// Shuffle returns a uniformly random permutation of items as a new slice,
// using an in-place Fisher-Yates pass over the copy.
func Shuffle[T any](items []T, rng *rand.Rand) []T {
	if rng == nil {
		rng = NewRand(0)
	}
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// NewRand returns a PCG source seeded with seed, or from the runtime source
// when seed is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
