package geometry

import (
	"fmt"

	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
	"github.com/mverbeek/go-whitted-raytracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   *material.Material
	normal     core.Vec3 // cached unit normal
}

// NewTriangle creates a new triangle from three vertices. Collinear or
// coincident vertices are a construction error.
func NewTriangle(v0, v1, v2 core.Vec3, mat *material.Material) (*Triangle, error) {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	cross := edge1.Cross(edge2)
	if cross.Length() < 1e-12 {
		return nil, fmt.Errorf("triangle: vertices are degenerate (collinear or coincident)")
	}

	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
		normal:   cross.Normalize(),
	}, nil
}

// Hit tests if a ray intersects with the triangle using the
// Möller-Trumbore algorithm
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	const epsilon = 1e-9

	edge1 := tr.V1.Subtract(tr.V0)
	edge2 := tr.V2.Subtract(tr.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray parallel to the triangle plane
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(tr.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return nil, false
	}

	t := f * edge2.Dot(q)
	if t < tMin || t > tMax {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: tr.Material,
	}
	hitRecord.SetFaceNormal(ray, tr.normal)

	return hitRecord, true
}
