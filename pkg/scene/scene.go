package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// ErrInvalidSampling is returned for render parameters that cannot produce an image
var ErrInvalidSampling = errors.New("invalid sampling configuration")

// ErrUnknownScene is returned by New for names not in the registry
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	World          *World
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate checks the image extents and sample counts. A MaxDepth of 0 is allowed and renders black.
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("image size %dx%d: %w", c.Width, c.Height, ErrInvalidSampling)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("samples per pixel %d: %w", c.SamplesPerPixel, ErrInvalidSampling)
	case c.MaxDepth < 0:
		return fmt.Errorf("max depth %d: %w", c.MaxDepth, ErrInvalidSampling)
	}
	return nil
}

// HeightForAspect derives the image height from a width and aspect ratio
func HeightForAspect(width int, aspectRatio float64) int {
	return max(1, int(float64(width)/aspectRatio))
}

// Options customizes a built-in scene
type Options struct {
	Width  int                   // Image width, 0 = scene default; height follows the aspect ratio
	Seed   uint32                // Seed for randomly populated scenes
	Camera geometry.CameraConfig // Non-zero fields override the scene camera
}

// Builder constructs a named scene
type Builder func(opts Options) (*Scene, error)

var builders = map[string]Builder{
	"default":    NewDefaultScene,
	"simple":     NewSimpleScene,
	"materials":  NewMaterialsScene,
	"spheregrid": NewSphereGridScene,
}

// Names lists the built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds a built-in scene by name
func New(name string, opts Options) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownScene)
	}
	return builder(opts)
}

// newScene applies options to a scene's defaults and builds its camera
func newScene(name string, cameraConfig geometry.CameraConfig, sampling SamplingConfig, opts Options) (*Scene, error) {
	cameraConfig = geometry.MergeCameraConfig(cameraConfig, opts.Camera)

	if opts.Width > 0 {
		sampling.Width = opts.Width
	}
	sampling.Height = HeightForAspect(sampling.Width, cameraConfig.AspectRatio)

	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	return &Scene{
		Name:           name,
		Camera:         camera,
		CameraConfig:   cameraConfig,
		World:          NewWorld(),
		SamplingConfig: sampling,
	}, nil
}
