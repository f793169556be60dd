package geometry

import (
	"fmt"
	"math"

	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
	"github.com/mverbeek/go-whitted-raytracer/pkg/material"
)

// Box represents an axis-aligned box defined by its center and half-extents
type Box struct {
	Center   core.Vec3
	Size     core.Vec3 // half-extents along each axis
	Material *material.Material
	min, max core.Vec3 // cached corners
}

// NewBox creates a new axis-aligned box. Size holds half-extents, so a
// size of (1,1,1) creates a 2x2x2 box. Non-positive extents are a
// construction error.
func NewBox(center, size core.Vec3, mat *material.Material) (*Box, error) {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, fmt.Errorf("box: half-extents must be positive, got %v", size)
	}
	return &Box{
		Center:   center,
		Size:     size,
		Material: mat,
		min:      center.Subtract(size),
		max:      center.Add(size),
	}, nil
}

// Hit tests if a ray intersects with the box using the slab method
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	tEnter := tMin
	tExit := tMax

	origins := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	directions := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	mins := [3]float64{b.min.X, b.min.Y, b.min.Z}
	maxs := [3]float64{b.max.X, b.max.Y, b.max.Z}

	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / directions[axis]
		t0 := (mins[axis] - origins[axis]) * invD
		t1 := (maxs[axis] - origins[axis]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		tEnter = max(tEnter, t0)
		tExit = min(tExit, t1)
		if tExit <= tEnter {
			return nil, false
		}
	}

	// The entry point is the visible hit unless the ray starts inside the
	// box, in which case the exit point is
	t := tEnter
	if t <= tMin {
		t = tExit
		if t < tMin || t > tMax {
			return nil, false
		}
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: b.Material,
	}
	hitRecord.SetFaceNormal(ray, b.outwardNormal(hitRecord.Point))

	return hitRecord, true
}

// outwardNormal returns the outward face normal for a point on the box
// surface by finding the axis the point is closest to leaving through
func (b *Box) outwardNormal(point core.Vec3) core.Vec3 {
	local := point.Subtract(b.Center)

	dx := b.Size.X - math.Abs(local.X)
	dy := b.Size.Y - math.Abs(local.Y)
	dz := b.Size.Z - math.Abs(local.Z)

	switch {
	case dx <= dy && dx <= dz:
		return core.NewVec3(sign(local.X), 0, 0)
	case dy <= dz:
		return core.NewVec3(0, sign(local.Y), 0)
	default:
		return core.NewVec3(0, 0, sign(local.Z))
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
