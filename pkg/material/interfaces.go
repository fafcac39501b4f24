package material

import (
	"errors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

var (
	// ErrInvalidFuzz is returned when a metal's fuzz lies outside [0, 1]
	ErrInvalidFuzz = errors.New("metal fuzz must be in [0, 1]")
	// ErrInvalidRefractiveIndex is returned for a non-positive index of refraction
	ErrInvalidRefractiveIndex = errors.New("refractive index must be positive")
)

// Material interface for objects that can scatter rays.
// Materials are immutable after construction and safe for concurrent use;
// all randomness comes from the caller's sampler.
type Material interface {
	// Scatter returns false when the ray is absorbed
	Scatter(rayIn core.Ray, hit geometry.HitRecord, sampler core.Sampler) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
