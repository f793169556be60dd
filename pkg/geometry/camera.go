package geometry

import (
	"fmt"
	"math"

	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
)

// CameraConfig contains camera configuration parameters
type CameraConfig struct {
	Center      core.Vec3 // camera position
	LookAt      core.Vec3 // point the camera looks at
	Up          core.Vec3 // world up direction
	Width       int       // image width in pixels
	AspectRatio float64   // width / height
	VFov        float64   // vertical field of view in degrees
}

// Camera generates primary rays for rendering. It is immutable for the
// duration of a render; reorienting happens by constructing a new camera
// between frames.
type Camera struct {
	center     core.Vec3
	forward    core.Vec3 // orthonormal basis
	right      core.Vec3
	up         core.Vec3
	halfWidth  float64 // image plane half-extents at unit distance
	halfHeight float64
	width      int
	height     int
}

// NewCamera creates a camera from the given configuration. Degenerate
// parameters are construction errors, never defaulted silently.
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 {
		return nil, fmt.Errorf("camera: width must be positive, got %d", config.Width)
	}
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera: aspect ratio must be positive, got %g", config.AspectRatio)
	}
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("camera: vertical fov must be in (0, 180) degrees, got %g", config.VFov)
	}

	viewDir := config.LookAt.Subtract(config.Center)
	if viewDir.Length() < 1e-12 {
		return nil, fmt.Errorf("camera: look-at point coincides with camera center")
	}
	forward := viewDir.Normalize()

	rightDir := forward.Cross(config.Up)
	if rightDir.Length() < 1e-12 {
		return nil, fmt.Errorf("camera: up direction is parallel to the view direction")
	}
	right := rightDir.Normalize()
	up := right.Cross(forward)

	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := halfHeight * config.AspectRatio

	height := int(float64(config.Width) / config.AspectRatio)
	if height < 1 {
		height = 1
	}

	return &Camera{
		center:     config.Center,
		forward:    forward,
		right:      right,
		up:         up,
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
		width:      config.Width,
		height:     height,
	}, nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// Center returns the camera position
func (c *Camera) Center() core.Vec3 { return c.center }

// Forward returns the unit view direction
func (c *Camera) Forward() core.Vec3 { return c.forward }

// GetRay generates the primary ray through the center of pixel (i, j),
// with i in [0, width) left to right and j in [0, height) top to bottom.
// Pure and deterministic: the same pixel always maps to the same ray.
func (c *Camera) GetRay(i, j int) core.Ray {
	// Map the pixel center to normalized device coordinates in [-1, 1],
	// with +y up
	u := (2*(float64(i)+0.5)/float64(c.width) - 1) * c.halfWidth
	v := (1 - 2*(float64(j)+0.5)/float64(c.height)) * c.halfHeight

	direction := c.forward.
		Add(c.right.Multiply(u)).
		Add(c.up.Multiply(v)).
		Normalize()

	return core.NewRay(c.center, direction)
}
