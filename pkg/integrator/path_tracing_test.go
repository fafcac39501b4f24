package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// absorber never scatters
type absorber struct{}

func (absorber) Scatter(core.Ray, geometry.HitRecord, core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

// mirror reflects perfectly with a fixed attenuation
type mirror struct {
	attenuation core.Vec3
}

func (m mirror) Scatter(rayIn core.Ray, hit geometry.HitRecord, _ core.Sampler) (material.ScatterResult, bool) {
	d := rayIn.Direction
	reflected := d.Subtract(hit.Normal.Multiply(2 * d.Dot(hit.Normal)))
	return material.ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.attenuation,
	}, true
}

func createTestWorld(t *testing.T, mat material.Material) *scene.World {
	t.Helper()
	world := scene.NewWorld()
	if err := world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5), mat); err != nil {
		t.Fatal(err)
	}
	return world
}

func vecNear(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < 1e-9
}

func TestPathTracingDepthTermination(t *testing.T) {
	world := createTestWorld(t, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))
	sampler := core.NewRand(42)

	// Even a ray that misses everything is black with no bounce budget
	for _, dir := range []core.Vec3{core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0)} {
		color := NewPathTracingIntegrator(0).RayColor(core.NewRay(core.Vec3{}, dir), world, sampler)
		if color != (core.Vec3{}) {
			t.Errorf("Expected black for depth 0, got %v", color)
		}
	}

	color := NewPathTracingIntegrator(3).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, sampler)
	if color == (core.Vec3{}) {
		t.Error("Expected non-black color for positive depth")
	}
}

func TestPathTracingBackgroundGradient(t *testing.T) {
	pt := NewPathTracingIntegrator(50)
	world := scene.NewWorld()
	sampler := core.NewRand(1)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight down is white", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"straight up is light blue", core.NewVec3(0, 5, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"horizon is the midpoint", core.NewVec3(0, 0, -1), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := pt.RayColor(core.NewRay(core.Vec3{}, tt.direction), world, sampler)
			if !vecNear(color, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestPathTracingAbsorptionIsBlack(t *testing.T) {
	world := createTestWorld(t, absorber{})
	color := NewPathTracingIntegrator(10).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, core.NewRand(1))
	if color != (core.Vec3{}) {
		t.Errorf("Expected black for absorbed ray, got %v", color)
	}
}

func TestPathTracingAttenuationProduct(t *testing.T) {
	// A head-on mirror hit bounces straight back up +Z into the sky
	attenuation := core.NewVec3(0.5, 0.25, 1.0)
	world := createTestWorld(t, mirror{attenuation: attenuation})
	pt := NewPathTracingIntegrator(10)

	color := pt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, core.NewRand(1))
	expected := attenuation.MultiplyVec(core.NewVec3(0.75, 0.85, 1.0))
	if !vecNear(color, expected) {
		t.Errorf("Expected %v, got %v", expected, color)
	}

	// With a single bounce of budget the reflected ray cannot reach the sky
	color = NewPathTracingIntegrator(1).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, core.NewRand(1))
	if color != (core.Vec3{}) {
		t.Errorf("Expected black after one bounce, got %v", color)
	}
}

func TestPathTracingTrappedPathTruncates(t *testing.T) {
	// Two facing mirrors trap the ray; every path ends at the depth budget
	world := scene.NewWorld()
	white := mirror{attenuation: core.NewVec3(1, 1, 1)}
	if err := world.Add(geometry.NewPlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)), white); err != nil {
		t.Fatal(err)
	}
	if err := world.Add(geometry.NewPlane(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)), white); err != nil {
		t.Fatal(err)
	}

	color := NewPathTracingIntegrator(1000).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, core.NewRand(1))
	if color != (core.Vec3{}) {
		t.Errorf("Expected black for a path that never escapes, got %v", color)
	}
}

func TestPathTracingDiffuseSphere(t *testing.T) {
	s, err := scene.NewSimpleScene(scene.Options{})
	if err != nil {
		t.Fatal(err)
	}
	pt := NewPathTracingIntegrator(50)
	sampler := core.NewRand(42)

	var sum core.Vec3
	const n = 200
	for i := 0; i < n; i++ {
		color := pt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), s.World, sampler)
		if math.IsNaN(color.X) || math.IsNaN(color.Y) || math.IsNaN(color.Z) {
			t.Fatalf("NaN color %v", color)
		}
		sum = sum.Add(color)
	}
	mean := sum.Multiply(1.0 / n)

	// Partially absorbed: darker than white, brighter than black
	if mean.X >= 1 || mean.Y >= 1 || mean.Z >= 1 {
		t.Errorf("Expected diffuse sphere darker than white, got %v", mean)
	}
	if mean.X <= 0 && mean.Y <= 0 && mean.Z <= 0 {
		t.Errorf("Expected diffuse sphere brighter than black, got %v", mean)
	}
	// The blue albedo dominates
	if mean.Z <= mean.X {
		t.Errorf("Expected blue channel to dominate for albedo (0.1,0.2,0.5), got %v", mean)
	}
}
