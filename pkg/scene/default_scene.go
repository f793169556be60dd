package scene

import (
	"fmt"

	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
	"github.com/mverbeek/go-whitted-raytracer/pkg/geometry"
	"github.com/mverbeek/go-whitted-raytracer/pkg/lights"
	"github.com/mverbeek/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene creates the classic three-sphere demo scene: a purple
// sphere straight ahead with a red and a blue sphere overlapping in front
// of it, lit by a single point light.
func NewDefaultScene(width int, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	cameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, 1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 1.0,
		VFov:        53.0,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = cameraOverrides[0]
		cameraConfig.Width = width
	}

	camera, err := geometry.NewCamera(cameraConfig)
	if err != nil {
		return nil, fmt.Errorf("default scene: %w", err)
	}

	s := NewScene(camera, core.NewVec3(1, 1, 1))

	purple := material.NewDiffuse(core.NewVec3(0.533, 0.184, 0.643))
	red := material.NewDiffuse(core.NewVec3(1, 0, 0))
	blue := material.NewDiffuse(core.NewVec3(0, 0, 1))

	type sphereSpec struct {
		center core.Vec3
		radius float64
		mat    *material.Material
	}
	for _, spec := range []sphereSpec{
		{core.NewVec3(0, 0, 30), 5, purple},
		{core.NewVec3(2.5, 2.5, 23), 5, red},
		{core.NewVec3(2.5, 2.5, 25), 5, blue},
	} {
		sphere, err := geometry.NewSphere(spec.center, spec.radius, spec.mat)
		if err != nil {
			return nil, fmt.Errorf("default scene: %w", err)
		}
		s.AddShape(sphere)
	}

	s.AddLight(lights.NewPointLight(core.NewVec3(-10, 15, 5), core.NewVec3(1, 1, 1)))

	return s, nil
}

// NewShowcaseScene creates a scene exercising every shape and material
// feature: a checkerboard ground plane, a mirror sphere, a matte box, a
// shiny triangle, and mixed point and directional lighting.
func NewShowcaseScene(width int) (*Scene, error) {
	camera, err := geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 4),
		LookAt:      core.NewVec3(0, 0.75, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 16.0 / 9.0,
		VFov:        50.0,
	})
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}

	s := NewScene(camera, core.NewVec3(0.5, 0.7, 1.0))

	ground := material.NewDiffuse(core.NewVec3(0.9, 0.9, 0.9)).
		WithTexture(material.NewCheckerboard(
			core.NewVec3(1, 1, 1),
			core.NewVec3(0.2, 0.2, 0.2),
			1.0,
		))
	mirror, err := material.NewMaterial(
		core.NewVec3(0.02, 0.02, 0.02),
		core.NewVec3(0.1, 0.1, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
		200,
		0.8,
	)
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}
	matteRed := material.NewDiffuse(core.NewVec3(0.8, 0.2, 0.2))
	shinyGold, err := material.NewMaterial(
		core.NewVec3(0.08, 0.06, 0.02),
		core.NewVec3(0.8, 0.6, 0.2),
		core.NewVec3(0.6, 0.6, 0.5),
		64,
		0.1,
	)
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}

	plane, err := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground)
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}
	sphere, err := geometry.NewSphere(core.NewVec3(0, 1, -1), 1, mirror)
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}
	box, err := geometry.NewBox(core.NewVec3(-2.2, 0.6, -0.5), core.NewVec3(0.6, 0.6, 0.6), matteRed)
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}
	triangle, err := geometry.NewTriangle(
		core.NewVec3(1.4, 0, 0.2),
		core.NewVec3(3.0, 0, -0.6),
		core.NewVec3(2.2, 1.8, -0.2),
		shinyGold,
	)
	if err != nil {
		return nil, fmt.Errorf("showcase scene: %w", err)
	}

	s.AddShape(plane)
	s.AddShape(sphere)
	s.AddShape(box)
	s.AddShape(triangle)

	s.AddLight(lights.NewPointLight(core.NewVec3(5, 8, 5), core.NewVec3(0.9, 0.9, 0.85)))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(-1, -2, -1), core.NewVec3(0.25, 0.25, 0.3)))

	return s, nil
}
