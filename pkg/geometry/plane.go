package geometry

import (
	"fmt"
	"math"

	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
	"github.com/mverbeek/go-whitted-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3
	Normal   core.Vec3 // unit length
	Material *material.Material
}

// NewPlane creates a new plane. A zero-length normal is a construction error.
func NewPlane(point, normal core.Vec3, mat *material.Material) (*Plane, error) {
	if normal.Length() < 1e-12 {
		return nil, fmt.Errorf("plane: normal must be non-zero")
	}
	return &Plane{Point: point, Normal: normal.Normalize(), Material: mat}, nil
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}
