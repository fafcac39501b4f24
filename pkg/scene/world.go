package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

// ErrIncompleteObject is returned when a world object is missing its shape or material
var ErrIncompleteObject = errors.New("object needs both a shape and a material")

// Object pairs a surface with the material responsible for it
type Object struct {
	Shape    geometry.Shape
	Material material.Material
}

// SurfaceHit is the nearest intersection found in a world
type SurfaceHit struct {
	geometry.HitRecord
	Material material.Material // Material of the hit object
}

// World is an insertion-ordered collection of objects.
// It is built before rendering and only read afterwards, so concurrent Hit calls need no locking.
type World struct {
	objects []Object
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// Add validates the shape and appends the object
func (w *World) Add(shape geometry.Shape, mat material.Material) error {
	if shape == nil || mat == nil {
		return fmt.Errorf("object %d: %w", len(w.objects), ErrIncompleteObject)
	}
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("object %d: %w", len(w.objects), err)
	}
	w.objects = append(w.objects, Object{Shape: shape, Material: mat})
	return nil
}

// Objects returns the objects in insertion order
func (w *World) Objects() []Object {
	return w.objects
}

// Len returns the number of objects
func (w *World) Len() int {
	return len(w.objects)
}

// Hit returns the closest intersection in (tMin, tMax).
// A linear scan with a tightening upper bound; no spatial index.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (SurfaceHit, bool) {
	var closest SurfaceHit
	closestSoFar := tMax
	hitAnything := false

	for _, obj := range w.objects {
		if hit, isHit := obj.Shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closest = SurfaceHit{HitRecord: hit, Material: obj.Material}
		}
	}

	return closest, hitAnything
}

// AddAll adds objects in order and stops at the first invalid one
func (w *World) AddAll(objects []Object) error {
	for _, obj := range objects {
		if err := w.Add(obj.Shape, obj.Material); err != nil {
			return err
		}
	}
	return nil
}
