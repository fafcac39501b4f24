package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// NewDefaultScene creates the random sphere field: a huge ground sphere, a grid of
// small diffuse, metal and glass spheres, and three large feature spheres.
// The layout is fully determined by opts.Seed.
func NewDefaultScene(opts Options) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	samplingConfig := SamplingConfig{
		Width:           1200,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}

	s, err := newScene("default", cameraConfig, samplingConfig, opts)
	if err != nil {
		return nil, err
	}

	random := core.NewRand(opts.Seed)
	randomColor := func(lo, hi float64) core.Vec3 {
		x := random.Between(lo, hi)
		y := random.Between(lo, hi)
		return core.NewVec3(x, y, random.Between(lo, hi))
	}

	objects := []Object{{
		Shape:    geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000),
		Material: material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	}}

	glass, err := material.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := random.Float64()
			x := float64(a) + 0.9*random.Float64()
			center := core.NewVec3(x, 0.2, float64(b)+0.9*random.Float64())

			// Keep clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMaterial < 0.8:
				albedo := randomColor(0, 1).MultiplyVec(randomColor(0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMaterial < 0.95:
				albedo := randomColor(0.5, 1)
				metal, err := material.NewMetal(albedo, random.Between(0, 0.5))
				if err != nil {
					return nil, err
				}
				mat = metal
			default:
				mat = glass
			}

			objects = append(objects, Object{Shape: geometry.NewSphere(center, 0.2), Material: mat})
		}
	}

	bronze, err := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)
	if err != nil {
		return nil, err
	}

	objects = append(objects,
		Object{geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0), glass},
		Object{geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0), material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))},
		Object{geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0), bronze},
	)

	if err := s.World.AddAll(objects); err != nil {
		return nil, err
	}
	return s, nil
}
