package core

import (
	"math/bits"
	"time"
)

// Rand is a small, fast, seedable generator (Bob Jenkins' small noncryptographic PRNG).
// A Rand is not safe for concurrent use; every rendering worker owns its own.
type Rand struct {
	a, b, c, d uint32
}

const (
	randInitA    = 0xf1ea5eed
	randWarmUp   = 20
	randFloatDiv = 1 << 32
)

// NewRand creates a generator from a seed. The same seed always yields the same sequence.
func NewRand(seed uint32) *Rand {
	r := &Rand{a: randInitA, b: seed, c: seed, d: seed}
	// Mix a weak seed before the first value is handed out
	for i := 0; i < randWarmUp; i++ {
		r.Next()
	}
	return r
}

// NewRandFromTime seeds a generator from the wall clock in seconds
func NewRandFromTime() *Rand {
	return NewRand(uint32(time.Now().Unix()))
}

// Next returns the next 32-bit value in the sequence
func (r *Rand) Next() uint32 {
	e := r.a - bits.RotateLeft32(r.b, 27)
	r.a = r.b ^ bits.RotateLeft32(r.c, 17)
	r.b = r.c + r.d
	r.c = r.d + e
	r.d = e + r.a
	return r.d
}

// Float64 returns a uniform value in [0, 1)
func (r *Rand) Float64() float64 {
	return float64(r.Next()) / randFloatDiv
}

// Between returns a uniform value in [min, max)
func (r *Rand) Between(min, max float64) float64 {
	return min + (max-min)*r.Float64()
}

// Get1D implements Sampler
func (r *Rand) Get1D() float64 {
	return r.Float64()
}

// Get2D implements Sampler
func (r *Rand) Get2D() Vec2 {
	x := r.Float64()
	return NewVec2(x, r.Float64())
}

// Get3D implements Sampler
func (r *Rand) Get3D() Vec3 {
	x := r.Float64()
	y := r.Float64()
	return NewVec3(x, y, r.Float64())
}
