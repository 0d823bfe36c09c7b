package level

// Rand is a deterministic pseudo-random generator for level building.
// The integer stream is part of the level format: a given seed must
// reproduce the same level forever, so the algorithm is fixed here
// instead of relying on math/rand.
type Rand struct {
	state uint64
}

// NewRand seeds a generator. The seed is pushed through an avalanche
// mix so that small consecutive seeds (level numbers) do not produce
// correlated streams.
func NewRand(seed uint32) *Rand {
	s := uint64(seed) + 0x9E3779B97F4A7C15
	s = (s ^ (s >> 30)) * 0xBF58476D1CE4E5B9
	s = (s ^ (s >> 27)) * 0x94D049BB133111EB
	s ^= s >> 31
	return &Rand{state: s}
}

// Next advances the state and returns the next 32-bit value.
func (r *Rand) Next() uint32 {
	r.state = r.state*6364136223846793005 + 1
	return uint32(r.state >> 32)
}

// Range returns a value in [min, max). A degenerate range (min >= max)
// returns min without consuming a value from the stream.
func (r *Rand) Range(min, max uint32) uint32 {
	if min >= max {
		return min
	}
	return min + r.Next()%(max-min)
}
