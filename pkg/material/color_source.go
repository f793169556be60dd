package material

import (
	"math"

	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials. Image-backed
// textures are decoded outside the core and plugged in behind this
// interface; the sources here are procedural and need no decoding.
type ColorSource interface {
	// Evaluate returns the color at a world-space point
	Evaluate(point core.Vec3) core.Vec3
}

// SolidColor provides a uniform color everywhere
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(point core.Vec3) core.Vec3 {
	return s.Color
}

// Checkerboard alternates two colors in a 3D grid pattern
type Checkerboard struct {
	Color1   core.Vec3
	Color2   core.Vec3
	CellSize float64
}

// NewCheckerboard creates a procedural checkerboard with the given cell size
func NewCheckerboard(color1, color2 core.Vec3, cellSize float64) *Checkerboard {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Checkerboard{Color1: color1, Color2: color2, CellSize: cellSize}
}

// Evaluate returns one of the two colors based on which grid cell the
// point falls in
func (c *Checkerboard) Evaluate(point core.Vec3) core.Vec3 {
	ix := int(math.Floor(point.X / c.CellSize))
	iy := int(math.Floor(point.Y / c.CellSize))
	iz := int(math.Floor(point.Z / c.CellSize))

	if (ix+iy+iz)%2 == 0 {
		return c.Color1
	}
	return c.Color2
}
