package integrator

import (
	"math"

	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
	"github.com/mverbeek/go-whitted-raytracer/pkg/material"
	"github.com/mverbeek/go-whitted-raytracer/pkg/scene"
)

// Config contains shading configuration. The bias and depth limit are
// contract values, not physics; callers may tune them per scene.
type Config struct {
	MaxDepth   int     // maximum reflection recursion depth
	ShadowBias float64 // ray origin offset to prevent self-intersection
	TMin       float64 // lower bound for primary/reflection rays
	TMax       float64 // upper bound for all rays
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		MaxDepth:   8,
		ShadowBias: 1e-4,
		TMin:       1e-4,
		TMax:       1e9,
	}
}

// Phong shades hits with the classic ambient + diffuse + specular model,
// hard shadows, and bounded recursive mirror reflection.
type Phong struct {
	config Config
}

// NewPhong creates a new Phong integrator
func NewPhong(config Config) *Phong {
	return &Phong{config: config}
}

// MaxDepth returns the configured recursion budget for primary rays
func (p *Phong) MaxDepth() int {
	return p.config.MaxDepth
}

// RayColor computes the color seen along a ray. Misses return the scene
// background; exhausted recursion contributes the background as well.
func (p *Phong) RayColor(ray core.Ray, scn *scene.Scene, depth int) core.Vec3 {
	if depth <= 0 {
		return scn.Background
	}

	hit, isHit := scn.NearestHit(ray, p.config.TMin, p.config.TMax)
	if !isHit {
		return scn.Background
	}

	local := p.shadeLocal(ray, scn, hit)

	// Blend in the mirror reflection for reflective materials; the
	// recursion bottoms out at the background once depth is spent
	reflectivity := hit.Material.Reflectivity
	if reflectivity > 0 {
		reflected := p.reflectedColor(ray, scn, hit, depth)
		return local.Lerp(reflected, reflectivity)
	}

	return local
}

// shadeLocal evaluates the direct lighting at a hit point: the ambient
// term plus, for every unoccluded light, the Lambert diffuse and Phong
// specular terms. Summation order is fixed by scene light order.
func (p *Phong) shadeLocal(ray core.Ray, scn *scene.Scene, hit *material.HitRecord) core.Vec3 {
	mat := hit.Material
	color := mat.Ambient

	viewDir := ray.Direction.Normalize().Negate()
	diffuse := mat.DiffuseAt(hit.Point)

	for _, light := range scn.Lights {
		lightDir, distance, intensity := light.Sample(hit.Point)
		if distance == 0 {
			continue
		}

		// Hard shadows: an occluded light contributes nothing
		if scn.IsOccluded(hit.Point, hit.Normal, lightDir, distance, p.config.ShadowBias) {
			continue
		}

		// Diffuse: kd * I * max(0, n·l)
		lambert := hit.Normal.Dot(lightDir)
		if lambert > 0 {
			color = color.Add(diffuse.MultiplyVec(intensity).Multiply(lambert))
		}

		// Specular (Phong): ks * I * max(0, r·v)^shininess
		reflectDir := lightDir.Negate().Reflect(hit.Normal)
		highlight := reflectDir.Dot(viewDir)
		if highlight > 0 && mat.Shininess > 0 {
			color = color.Add(mat.Specular.MultiplyVec(intensity).
				Multiply(math.Pow(highlight, mat.Shininess)))
		}
	}

	return color
}

// reflectedColor traces the mirror reflection of the incoming ray
func (p *Phong) reflectedColor(ray core.Ray, scn *scene.Scene, hit *material.HitRecord, depth int) core.Vec3 {
	reflectDir := ray.Direction.Normalize().Reflect(hit.Normal)
	origin := hit.Point.Add(hit.Normal.Multiply(p.config.ShadowBias))
	return p.RayColor(core.NewRay(origin, reflectDir), scn, depth-1)
}
