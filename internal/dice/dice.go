// Package dice provides the seeded random source behind every
// probabilistic decision in the game: NPC acceptance and success
// trials, goal generation, and reward valuation. A fixed seed makes
// a whole game run reproducible.
package dice

import "math/rand"

// Roller wraps a seeded rand.Rand. It is not safe for concurrent use;
// the game loop is single-threaded and each engine owns one Roller.
type Roller struct {
	seed int64
	rnd  *rand.Rand
}

// NewRoller creates a deterministic roller from a seed
func NewRoller(seed int64) *Roller {
	return &Roller{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the roller was created with
func (r *Roller) Seed() int64 {
	return r.seed
}

// D100 rolls a 100-sided die (1-100), used for percentage checks
func (r *Roller) D100() int {
	return r.rnd.Intn(100) + 1
}

// Chance runs a Bernoulli trial with the given likelihood in percent.
// Likelihoods at or below 0 never succeed; at or above 100 always do.
func (r *Roller) Chance(likelihood float64) bool {
	if likelihood <= 0 {
		return false
	}
	if likelihood >= 100 {
		return true
	}
	return r.rnd.Float64()*100 < likelihood
}

// Between returns a random integer in [min, max]
func (r *Roller) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rnd.Intn(max-min+1)
}

// Uniform returns a random float64 in [lo, hi)
func (r *Roller) Uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.rnd.Float64()*(hi-lo)
}

// Pick returns a random index into a collection of length n
func (r *Roller) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return r.rnd.Intn(n)
}
