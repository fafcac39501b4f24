package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"golang.org/x/image/colornames"
)

// NewSimpleScene creates a single diffuse sphere resting on a large ground sphere,
// viewed by a pinhole camera looking down -Z
func NewSimpleScene(opts Options) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 16.0 / 9.0,
	}

	s, err := newScene("simple", cameraConfig, DefaultSamplingConfig(), opts)
	if err != nil {
		return nil, err
	}

	err = s.World.AddAll([]Object{
		{geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5), material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))},
		{geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100), material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))},
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewMaterialsScene shows each material side by side: a hollow glass sphere,
// a diffuse sphere, a polished gold sphere and a small hemispheric-diffuse sphere
func NewMaterialsScene(opts Options) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(3, 3, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.5,
	}

	s, err := newScene("materials", cameraConfig, DefaultSamplingConfig(), opts)
	if err != nil {
		return nil, err
	}

	glass, err := material.NewDielectric(1.5)
	if err != nil {
		return nil, err
	}
	// Air bubble inside the glass: the index is the ratio of air to glass
	bubble, err := material.NewDielectric(1.0 / 1.5)
	if err != nil {
		return nil, err
	}
	gold, err := material.NewMetal(fromRGBA(colornames.Goldenrod), 0.0)
	if err != nil {
		return nil, err
	}

	err = s.World.AddAll([]Object{
		{geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100), material.NewLambertian(fromRGBA(colornames.Olive))},
		{geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5), material.NewLambertian(fromRGBA(colornames.Midnightblue))},
		{geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5), glass},
		{geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4), bubble},
		{geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5), gold},
		{geometry.NewSphere(core.NewVec3(0.5, -0.35, -0.3), 0.15), material.NewHemispheric(fromRGBA(colornames.Indianred))},
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
