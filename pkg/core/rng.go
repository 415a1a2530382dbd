package core

import (
	"math"
	"math/rand/v2"
)

// MaxResamples bounds the rejection loop in UnitNormal.
const MaxResamples = 64

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a uniform value in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// openUnit returns a uniform value in (0, 1).
func (r *RNG) openUnit() float64 {
	for {
		if u := r.r.Float64(); u > 0 {
			return u
		}
	}
}

// BoxMuller returns one standard normal deviate.
func (r *RNG) BoxMuller() float64 {
	u := r.openUnit()
	v := r.openUnit()
	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
}

// UnitNormal samples a normal distribution centred on 0.5 with a standard
// deviation of 0.1, rejecting draws outside [0, 1). After MaxResamples
// rejections the centre is returned.
func (r *RNG) UnitNormal() float64 {
	for i := 0; i < MaxResamples; i++ {
		v := r.BoxMuller()/10 + 0.5
		if v >= 0 && v < 1 {
			return v
		}
	}
	return 0.5
}
