package renderer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// ErrInvalidScene is returned when a scene is missing its camera or world
var ErrInvalidScene = errors.New("invalid scene")

// Options controls how a render is scheduled
type Options struct {
	NumWorkers int    // Number of parallel workers (0 = use CPU count)
	Seed       uint32 // Base seed; row y draws from core.NewRand(Seed + y)
}

// Raytracer renders a scene into a Frame
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     scene.SamplingConfig
	options    Options
	logger     core.Logger
}

// NewRaytracer creates a raytracer for the scene's own sampling configuration.
// A nil logger discards output.
func NewRaytracer(s *scene.Scene, options Options, logger core.Logger) (*Raytracer, error) {
	if s == nil || s.Camera == nil || s.World == nil {
		return nil, fmt.Errorf("scene needs a camera and a world: %w", ErrInvalidScene)
	}
	if err := s.SamplingConfig.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	if logger == nil {
		logger = NewDefaultLogger(io.Discard)
	}

	return &Raytracer{
		scene:      s,
		integrator: integrator.NewPathTracingIntegrator(s.SamplingConfig.MaxDepth),
		config:     s.SamplingConfig,
		options:    options,
		logger:     logger,
	}, nil
}

// SetIntegrator replaces the path tracer used for every sample
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

// RenderPixel averages SamplesPerPixel jittered samples for pixel (i, j) and
// returns the gamma-2 display color clamped to [0, 0.999].
// j counts from the bottom row, matching the camera's image plane.
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) core.Vec3 {
	camera := rt.scene.Camera
	uScale := float64(max(rt.config.Width-1, 1))
	vScale := float64(max(rt.config.Height-1, 1))

	var ps PixelStats
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(i) + sampler.Get1D()) / uScale
		v := (float64(j) + sampler.Get1D()) / vScale
		ray := camera.GetRay(u, v, sampler)
		ps.AddSample(rt.integrator.RayColor(ray, rt.scene.World, sampler))
	}

	return ps.GetColor().GammaCorrect(2.0).Clamp(0.0, 0.999)
}

// renderRow renders frame row y with a generator owned by that row, so the
// output does not depend on which worker picks the row up
func (rt *Raytracer) renderRow(y int, frame *Frame) rowResult {
	sampler := core.NewRand(rt.options.Seed + uint32(y))
	j := frame.Height - 1 - y

	for i := 0; i < frame.Width; i++ {
		frame.Set(i, y, rt.RenderPixel(i, j, sampler))
	}

	return rowResult{
		row:     y,
		pixels:  frame.Width,
		samples: frame.Width * rt.config.SamplesPerPixel,
	}
}

// Render traces every row in parallel and returns once all rows are joined.
// Cancelling ctx stops the render between rows and returns the context error.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	startTime := time.Now()
	frame := NewFrame(rt.config.Width, rt.config.Height)

	pool := NewWorkerPool(rt, frame, rt.options.NumWorkers)
	rt.logger.Printf("Rendering %s: %dx%d, %d samples, depth %d, %d workers\n",
		rt.scene.Name, frame.Width, frame.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth, pool.GetNumWorkers())

	pool.Start(ctx)
	for y := 0; y < frame.Height; y++ {
		pool.SubmitTask(rowTask{Row: y})
	}

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	logEvery := max(1, frame.Height/10)
	var renderErr error
	for received := 0; received < frame.Height; received++ {
		result, _ := pool.GetResult()
		if result.err != nil {
			renderErr = result.err
			continue
		}
		stats.merge(result)
		if stats.Rows%logEvery == 0 {
			rt.logger.Printf("  %d/%d rows\n", stats.Rows, frame.Height)
		}
	}
	pool.Stop()
	stats.finalize(time.Since(startTime))

	if renderErr != nil {
		return nil, stats, fmt.Errorf("render %s: %w", rt.scene.Name, renderErr)
	}

	rt.logger.Printf("Render completed in %v (%d samples, average luminance %.3f)\n",
		stats.Duration, stats.TotalSamples, frame.AverageLuminance())
	return frame, stats, nil
}
