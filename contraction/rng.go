package contraction

import "math/rand"

// defaultSeed is the fixed "zero" seed used when a caller passes seed==0,
// keeping default runs reproducible rather than time-based.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand: seed==0 selects
// defaultSeed, otherwise seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche, giving independent, reproducible
// substreams derived from one base seed.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from a base
// RNG and a stream identifier. Neither Run nor RunCutoff calls it: both
// draw every trial from the single generator built by rngFromSeed.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// sampleWeightedIndex picks an index into weights with probability
// proportional to its value. total must equal the sum of weights and must
// be strictly positive.
func sampleWeightedIndex(rng *rand.Rand, weights []float64, total float64) int {
	target := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if target < cum {
			return i
		}
	}
	return len(weights) - 1
}

// shuffleIntsInPlace performs an in-place Fisher-Yates shuffle of a using rng.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
