package material

import (
	"fmt"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo   core.Vec3 // Metal color
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material. Fuzzness outside [0, 1] is rejected, not clamped.
func NewMetal(albedo core.Vec3, fuzzness float64) (*Metal, error) {
	if fuzzness < 0 || fuzzness > 1 || math.IsNaN(fuzzness) {
		return nil, fmt.Errorf("fuzz %v: %w", fuzzness, ErrInvalidFuzz)
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}, nil
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit geometry.HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), hit.Normal)

	// The perturbation is always drawn so the sample stream does not depend on fuzz
	perturbation := core.RandomInUnitSphere(sampler).Multiply(m.Fuzzness)
	scattered := core.NewRay(hit.Point, reflected.Add(perturbation))

	// Fuzz can push the reflection below the surface; the ray is absorbed
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, true
}
