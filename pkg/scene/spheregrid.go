package scene

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"golang.org/x/image/colornames"
)

// NewSphereGridScene creates a grid of metal spheres on a ground plane,
// hue varying along X and chroma along Z
func NewSphereGridScene(opts Options) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(4.5, 6, 18),
		LookAt:      core.NewVec3(4.5, 0.8, 4.5),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.02,
	}

	samplingConfig := SamplingConfig{
		Width:           800,
		SamplesPerPixel: 100,
		MaxDepth:        40,
	}

	s, err := newScene("spheregrid", cameraConfig, samplingConfig, opts)
	if err != nil {
		return nil, err
	}

	objects := []Object{{
		Shape:    geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
		Material: material.NewLambertian(fromRGBA(colornames.Gray)),
	}}

	gridSize := 10

	// Fit the grid into roughly 9x9 units
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
			metal, err := material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness)
			if err != nil {
				return nil, err
			}

			objects = append(objects, Object{Shape: geometry.NewSphere(position, sphereRadius), Material: metal})
		}
	}

	if err := s.World.AddAll(objects); err != nil {
		return nil, err
	}
	return s, nil
}
