package material

import (
	"fmt"

	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
)

// Material holds the Phong reflectance coefficients for a surface.
// Shininess controls the sharpness of the specular lobe; Reflectivity in
// [0,1] blends in a recursively traced mirror reflection.
type Material struct {
	Ambient      core.Vec3
	Diffuse      core.Vec3
	Specular     core.Vec3
	Shininess    float64
	Reflectivity float64
	Texture      ColorSource // optional; modulates Diffuse when set
}

// NewMaterial creates a material and validates its coefficients
func NewMaterial(ambient, diffuse, specular core.Vec3, shininess, reflectivity float64) (*Material, error) {
	if shininess < 0 {
		return nil, fmt.Errorf("material: shininess must be >= 0, got %g", shininess)
	}
	if reflectivity < 0 || reflectivity > 1 {
		return nil, fmt.Errorf("material: reflectivity must be in [0,1], got %g", reflectivity)
	}
	return &Material{
		Ambient:      ambient,
		Diffuse:      diffuse,
		Specular:     specular,
		Shininess:    shininess,
		Reflectivity: reflectivity,
	}, nil
}

// NewDiffuse creates a matte material with a small matching ambient term
func NewDiffuse(albedo core.Vec3) *Material {
	return &Material{
		Ambient:   albedo.Multiply(0.1),
		Diffuse:   albedo,
		Shininess: 1,
	}
}

// WithTexture attaches a color source that modulates the diffuse term
func (m *Material) WithTexture(texture ColorSource) *Material {
	m.Texture = texture
	return m
}

// DiffuseAt returns the diffuse coefficient at a world-space point,
// applying the texture when one is attached
func (m *Material) DiffuseAt(point core.Vec3) core.Vec3 {
	if m.Texture == nil {
		return m.Diffuse
	}
	return m.Diffuse.MultiplyVec(m.Texture.Evaluate(point))
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  *Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face so
// shading always sees a normal facing the incoming ray
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
