package lights

import (
	"math"

	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
)

// Light is a direct light source that can be sampled from a shading point.
// New light kinds (area, spot) are additional implementations of this
// interface, not subclasses of a shared base.
type Light interface {
	// Sample returns the unit direction from the shading point toward the
	// light, the distance to the light for shadow-ray range limiting, and
	// the light's intensity
	Sample(point core.Vec3) (direction core.Vec3, distance float64, intensity core.Vec3)
}

// PointLight emits uniformly from a single position
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Sample returns the direction and distance from point to the light
func (l *PointLight) Sample(point core.Vec3) (core.Vec3, float64, core.Vec3) {
	toLight := l.Position.Subtract(point)
	distance := toLight.Length()
	if distance == 0 {
		// Shading point exactly at the light position; no usable direction
		return core.Vec3{}, 0, l.Intensity
	}
	return toLight.Multiply(1.0 / distance), distance, l.Intensity
}

// DirectionalLight emits parallel rays from infinitely far away,
// like sunlight
type DirectionalLight struct {
	Direction core.Vec3 // unit direction the light travels in
	Intensity core.Vec3
}

// NewDirectionalLight creates a directional light travelling along direction
func NewDirectionalLight(direction, intensity core.Vec3) *DirectionalLight {
	return &DirectionalLight{Direction: direction.Normalize(), Intensity: intensity}
}

// Sample returns the fixed direction toward the light at infinite distance
func (l *DirectionalLight) Sample(point core.Vec3) (core.Vec3, float64, core.Vec3) {
	return l.Direction.Negate(), math.Inf(1), l.Intensity
}
