package core

import (
	"math"
	"testing"
)

func TestRandomUnitVector(t *testing.T) {
	r := NewRand(42)
	var sum Vec3
	const n = 20000
	for i := 0; i < n; i++ {
		v := RandomUnitVector(r)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit length, got %f", v.Length())
		}
		sum = sum.Add(v)
	}

	// A uniform distribution on the sphere has zero mean
	mean := sum.Multiply(1.0 / n)
	if mean.Length() > 0.05 {
		t.Errorf("Expected mean near zero, got %v", mean)
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	r := NewRand(3)
	for i := 0; i < 10000; i++ {
		if p := RandomInUnitSphere(r); p.LengthSquared() >= 1 {
			t.Fatalf("Point outside unit sphere: %v", p)
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	r := NewRand(5)
	for i := 0; i < 10000; i++ {
		p := RandomInUnitDisk(r)
		if p.Z != 0 {
			t.Fatalf("Expected disk point in z=0 plane, got %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point outside unit disk: %v", p)
		}
	}
}

func TestRandomInHemisphere(t *testing.T) {
	r := NewRand(9)
	normal := NewVec3(0, 1, 0)
	for i := 0; i < 10000; i++ {
		if p := RandomInHemisphere(normal, r); p.Dot(normal) < 0 {
			t.Fatalf("Point below hemisphere: %v", p)
		}
	}
}
