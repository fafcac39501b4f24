package renderer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// testLogger forwards renderer output to the test log
type testLogger struct {
	t *testing.T
}

func (l testLogger) Printf(format string, args ...interface{}) {
	l.t.Logf(strings.TrimSuffix(format, "\n"), args...)
}

// createTestScene builds the two-sphere scene at a small, cheap resolution
func createTestScene(t *testing.T, width, spp, depth int) *scene.Scene {
	t.Helper()
	s, err := scene.New("simple", scene.Options{Width: width})
	if err != nil {
		t.Fatal(err)
	}
	s.SamplingConfig.SamplesPerPixel = spp
	s.SamplingConfig.MaxDepth = depth
	return s
}

func renderScene(t *testing.T, s *scene.Scene, options Options) (*Frame, RenderStats) {
	t.Helper()
	rt, err := NewRaytracer(s, options, testLogger{t})
	if err != nil {
		t.Fatal(err)
	}
	frame, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return frame, stats
}

func quantized(f *Frame) []uint8 {
	out := make([]uint8, 0, 3*len(f.Pixels))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := f.RGB8(x, y)
			out = append(out, r, g, b)
		}
	}
	return out
}

func TestNewRaytracer_Validation(t *testing.T) {
	valid := createTestScene(t, 16, 1, 1)

	if _, err := NewRaytracer(nil, Options{}, nil); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("Expected ErrInvalidScene for nil scene, got %v", err)
	}

	noCamera := *valid
	noCamera.Camera = nil
	if _, err := NewRaytracer(&noCamera, Options{}, nil); !errors.Is(err, ErrInvalidScene) {
		t.Errorf("Expected ErrInvalidScene for missing camera, got %v", err)
	}

	noSamples := *valid
	noSamples.SamplingConfig.SamplesPerPixel = 0
	if _, err := NewRaytracer(&noSamples, Options{}, nil); !errors.Is(err, scene.ErrInvalidSampling) {
		t.Errorf("Expected ErrInvalidSampling for zero samples, got %v", err)
	}

	if _, err := NewRaytracer(valid, Options{}, nil); err != nil {
		t.Errorf("Expected valid scene to be accepted, got %v", err)
	}
}

func TestRender_ZeroDepthIsBlack(t *testing.T) {
	s := createTestScene(t, 16, 2, 0)
	frame, _ := renderScene(t, s, Options{Seed: 1})

	for idx, c := range frame.Pixels {
		if c != (core.Vec3{}) {
			t.Fatalf("Pixel %d: expected black with depth 0, got %v", idx, c)
		}
	}
}

func TestRender_FrameShapeAndRange(t *testing.T) {
	s := createTestScene(t, 32, 2, 5)
	frame, stats := renderScene(t, s, Options{Seed: 7, NumWorkers: 3})

	if frame.Width != 32 || frame.Height != 18 {
		t.Fatalf("Expected 32x18 frame, got %dx%d", frame.Width, frame.Height)
	}
	if len(frame.Pixels) != 32*18 {
		t.Fatalf("Expected %d pixels, got %d", 32*18, len(frame.Pixels))
	}
	for idx, c := range frame.Pixels {
		for _, ch := range []float64{c.X, c.Y, c.Z} {
			if !(ch >= 0 && ch <= 0.999) {
				t.Fatalf("Pixel %d channel %v outside [0, 0.999]", idx, ch)
			}
		}
	}

	if stats.Rows != 18 || stats.TotalPixels != 32*18 {
		t.Errorf("Expected 18 rows and %d pixels, got %d rows and %d pixels", 32*18, stats.Rows, stats.TotalPixels)
	}
	if stats.TotalSamples != 32*18*2 || stats.AverageSamples != 2 {
		t.Errorf("Expected 2 samples per pixel, got total %d average %v", stats.TotalSamples, stats.AverageSamples)
	}
	if stats.Workers != 3 {
		t.Errorf("Expected 3 workers, got %d", stats.Workers)
	}
}

func TestRender_Deterministic(t *testing.T) {
	s := createTestScene(t, 24, 3, 10)

	first, _ := renderScene(t, s, Options{Seed: 42, NumWorkers: 4})
	second, _ := renderScene(t, s, Options{Seed: 42, NumWorkers: 4})
	if !bytes.Equal(quantized(first), quantized(second)) {
		t.Error("Expected identical output for identical seeds")
	}

	serial, _ := renderScene(t, s, Options{Seed: 42, NumWorkers: 1})
	if !bytes.Equal(quantized(first), quantized(serial)) {
		t.Error("Expected output to be independent of the worker count")
	}

	other, _ := renderScene(t, s, Options{Seed: 43, NumWorkers: 4})
	if bytes.Equal(quantized(first), quantized(other)) {
		t.Error("Expected a different seed to change the noise")
	}
}

func TestRender_SimpleSceneLayout(t *testing.T) {
	s := createTestScene(t, 64, 16, 50)
	frame, _ := renderScene(t, s, Options{Seed: 3})

	// The centre pixel looks at the blue diffuse sphere: lit, but darker than white
	center := frame.At(frame.Width/2, frame.Height/2)
	if center.X >= 0.99 && center.Y >= 0.99 && center.Z >= 0.99 {
		t.Errorf("Expected centre pixel darker than white, got %v", center)
	}
	if center == (core.Vec3{}) {
		t.Error("Expected centre pixel to receive light")
	}
	if center.Z <= center.X {
		t.Errorf("Expected centre pixel to be bluish, got %v", center)
	}

	// Top row sees only sky, which is blue-tinted and bright
	top := frame.At(frame.Width/2, 0)
	if top.Z < top.X || top.Z < 0.9 {
		t.Errorf("Expected bright bluish sky at the top, got %v", top)
	}

	// Bottom row sees the yellow ground
	bottom := frame.At(frame.Width/2, frame.Height-1)
	if bottom.Z >= bottom.X {
		t.Errorf("Expected yellowish ground at the bottom, got %v", bottom)
	}
}

func TestRender_Cancelled(t *testing.T) {
	s := createTestScene(t, 16, 1, 1)
	rt, err := NewRaytracer(s, Options{NumWorkers: 2}, nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frame, _, err := rt.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if frame != nil {
		t.Error("Expected no frame from a cancelled render")
	}
}

func TestRenderPixel_Clamped(t *testing.T) {
	s := createTestScene(t, 16, 4, 50)
	rt, err := NewRaytracer(s, Options{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Top-left pixel is pure sky; the gamma-corrected sky never reaches 1
	c := rt.RenderPixel(0, s.SamplingConfig.Height-1, core.NewRand(9))
	if c.X > 0.999 || c.Y > 0.999 || c.Z > 0.999 {
		t.Errorf("Expected clamped color, got %v", c)
	}
	if c.Z != 0.999 {
		t.Errorf("Expected full blue sky clamped to 0.999, got %v", c.Z)
	}
}

func TestRenderPixel_SingleSampleCenter(t *testing.T) {
	s := createTestScene(t, 64, 1, 50)
	rt, err := NewRaytracer(s, Options{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	// One sample through the centre of a pinhole camera lands on the diffuse sphere
	w, h := s.SamplingConfig.Width, s.SamplingConfig.Height
	for seed := uint32(0); seed < 8; seed++ {
		c := rt.RenderPixel(w/2, h/2, core.NewRand(seed))
		if c == (core.Vec3{}) {
			t.Errorf("Seed %d: expected partial attenuation, got black", seed)
		}
		if c.X >= 0.999 && c.Y >= 0.999 && c.Z >= 0.999 {
			t.Errorf("Seed %d: expected darker than white, got %v", seed, c)
		}
	}
}
