package geometry

import (
	"errors"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ErrDegenerateShape is returned when a shape's parameters cannot produce a valid surface
var ErrDegenerateShape = errors.New("degenerate shape")

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Shape interface for objects that can be hit by rays.
// Shapes are immutable once placed in a world and safe for concurrent Hit calls.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (HitRecord, bool)
	// Validate reports degenerate parameters (zero radius, zero normal, NaN)
	Validate() error
}
