package sim

// LCG parameters.
const (
	rngSeed     = 12345
	rngMul      = 1103515245
	rngInc      = 12345
	rngMask     = 0x7fffffff
	DefaultSeed = rngSeed
)

// RNG is a 31-bit linear congruential generator. All randomized decisions in
// the simulation draw from one instance owned by the Simulation.
type RNG struct {
	seed uint32
}

// NewRNG returns a generator starting at seed.
func NewRNG(seed uint32) *RNG {
	return &RNG{seed: seed & rngMask}
}

// Intn advances the generator and returns a value in [0, n).
// Non-positive n returns 0 without advancing.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.seed = (r.seed*rngMul + rngInc) & rngMask
	return int(r.seed % uint32(n))
}

// Seed returns the current generator state.
func (r *RNG) Seed() uint32 { return r.seed }
