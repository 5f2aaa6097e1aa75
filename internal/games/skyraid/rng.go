package skyraid

// RNG is a deterministic linear congruential generator. Every random choice
// in a run goes through one RNG so identical seeds and inputs replay
// identically.
type RNG struct {
	state uint64
}

// NewRNG creates a generator. Seed 0 is remapped to 1.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// State returns the internal state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}

func (r *RNG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n). Non-positive n yields 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.next() >> 1) % uint64(n)) //#nosec G115 -- n is positive
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// Range returns a value in [min, max).
func (r *RNG) Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}
