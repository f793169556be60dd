package geometry

import (
	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
	"github.com/mverbeek/go-whitted-raytracer/pkg/material"
)

// Shape interface for objects that can be hit by rays. Hit returns the
// nearest intersection with t in (tMin, tMax), or false when there is none.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
