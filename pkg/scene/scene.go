package scene

import (
	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
	"github.com/mverbeek/go-whitted-raytracer/pkg/geometry"
	"github.com/mverbeek/go-whitted-raytracer/pkg/lights"
	"github.com/mverbeek/go-whitted-raytracer/pkg/material"
)

// Scene owns all shapes and lights plus the camera and background color.
// It is constructed once per render and treated as read-only afterwards,
// so parallel workers can share it without locking.
type Scene struct {
	Camera     *geometry.Camera
	Shapes     []geometry.Shape
	Lights     []lights.Light
	Background core.Vec3
}

// NewScene creates an empty scene with the given camera and background
func NewScene(camera *geometry.Camera, background core.Vec3) *Scene {
	return &Scene{
		Camera:     camera,
		Shapes:     make([]geometry.Shape, 0),
		Lights:     make([]lights.Light, 0),
		Background: background,
	}
}

// AddShape appends a shape to the scene
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// NearestHit finds the closest intersection along the ray within
// (tMin, tMax). When two shapes intersect at exactly the same distance the
// one added to the scene first wins, keeping results order-stable.
// An empty scene simply reports no hit.
func (s *Scene) NearestHit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			// Strict comparison breaks exact-distance ties in favor of
			// the earlier shape
			if closestHit == nil || hit.T < closestHit.T {
				closestHit = hit
				closestSoFar = hit.T
			}
		}
	}

	return closestHit, closestHit != nil
}

// IsOccluded reports whether anything blocks the segment from point toward
// the light. The shadow ray origin is biased along the surface normal to
// avoid self-intersection, and the range stops just short of the light so
// the light itself is never an occluder.
func (s *Scene) IsOccluded(point, normal, toLight core.Vec3, maxDistance, bias float64) bool {
	origin := point.Add(normal.Multiply(bias))
	shadowRay := core.NewRay(origin, toLight)

	for _, shape := range s.Shapes {
		if _, isHit := shape.Hit(shadowRay, bias, maxDistance-bias); isHit {
			return true
		}
	}
	return false
}
