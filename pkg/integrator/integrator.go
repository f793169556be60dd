package integrator

import (
	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
	"github.com/mverbeek/go-whitted-raytracer/pkg/scene"
)

// Integrator defines the interface for shading algorithms. RayColor is a
// pure function of the ray and remaining depth; implementations hold only
// immutable configuration.
type Integrator interface {
	// RayColor computes the color seen along a ray. depth counts down;
	// at zero no more light is gathered.
	RayColor(ray core.Ray, scn *scene.Scene, depth int) core.Vec3

	// MaxDepth returns the configured recursion budget for primary rays
	MaxDepth() int
}
