package integrator

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray.
	// The world is shared read-only; the sampler belongs to the caller.
	RayColor(ray core.Ray, world *scene.World, sampler core.Sampler) core.Vec3
}
