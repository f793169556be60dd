package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
	"github.com/mverbeek/go-whitted-raytracer/pkg/geometry"
	"github.com/mverbeek/go-whitted-raytracer/pkg/material"
)

func testCamera(t *testing.T) *geometry.Camera {
	t.Helper()
	camera, err := geometry.NewCamera(geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       100,
		AspectRatio: 1.0,
		VFov:        90.0,
	})
	require.NoError(t, err)
	return camera
}

func addSphere(t *testing.T, s *Scene, center core.Vec3, radius float64) *geometry.Sphere {
	t.Helper()
	sphere, err := geometry.NewSphere(center, radius, material.NewDiffuse(core.NewVec3(1, 1, 1)))
	require.NoError(t, err)
	s.AddShape(sphere)
	return sphere
}

func TestScene_NearestHit_Empty(t *testing.T) {
	s := NewScene(testCamera(t), core.NewVec3(0, 0, 0))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.NearestHit(ray, 0.001, 1000.0)

	assert.False(t, isHit)
	assert.Nil(t, hit)
}

func TestScene_NearestHit_PicksClosest(t *testing.T) {
	s := NewScene(testCamera(t), core.NewVec3(0, 0, 0))
	addSphere(t, s, core.NewVec3(0, 0, -10), 1)
	addSphere(t, s, core.NewVec3(0, 0, -5), 1)
	addSphere(t, s, core.NewVec3(0, 0, -20), 1)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.NearestHit(ray, 0.001, 1000.0)

	require.True(t, isHit)
	assert.InDelta(t, 4.0, hit.T, 1e-9)
}

func TestScene_NearestHit_TieBreaksByOrder(t *testing.T) {
	s := NewScene(testCamera(t), core.NewVec3(0, 0, 0))

	// Two coincident spheres with distinct materials; the first added
	// must win the exact tie
	first := material.NewDiffuse(core.NewVec3(1, 0, 0))
	second := material.NewDiffuse(core.NewVec3(0, 1, 0))

	sphereA, err := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, first)
	require.NoError(t, err)
	sphereB, err := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, second)
	require.NoError(t, err)
	s.AddShape(sphereA)
	s.AddShape(sphereB)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.NearestHit(ray, 0.001, 1000.0)

	require.True(t, isHit)
	assert.Same(t, first, hit.Material)
}

func TestScene_IsOccluded(t *testing.T) {
	s := NewScene(testCamera(t), core.NewVec3(0, 0, 0))

	// Blocker halfway between the shading point and the light
	addSphere(t, s, core.NewVec3(0, 5, 0), 1)

	point := core.NewVec3(0, 0, 0)
	normal := core.NewVec3(0, 1, 0)
	toLight := core.NewVec3(0, 1, 0)

	assert.True(t, s.IsOccluded(point, normal, toLight, 10.0, 1e-4))

	// A light closer than the blocker is not occluded
	assert.False(t, s.IsOccluded(point, normal, toLight, 3.0, 1e-4))

	// Shadow ray pointing away from the blocker
	assert.False(t, s.IsOccluded(point, normal, core.NewVec3(0, -1, 0), 10.0, 1e-4))
}

func TestScene_IsOccluded_NoSelfIntersection(t *testing.T) {
	s := NewScene(testCamera(t), core.NewVec3(0, 0, 0))
	sphere := addSphere(t, s, core.NewVec3(0, 0, -5), 1)

	// Shade the point on the sphere nearest the camera and cast toward a
	// light straight ahead; the sphere itself must not occlude
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	require.True(t, isHit)

	toLight := core.NewVec3(0, 0, 1)
	distance := 10.0
	assert.False(t, s.IsOccluded(hit.Point, hit.Normal, toLight, distance, 1e-4))
}

func TestScene_IsOccluded_InfiniteRange(t *testing.T) {
	s := NewScene(testCamera(t), core.NewVec3(0, 0, 0))
	addSphere(t, s, core.NewVec3(0, 100, 0), 1)

	// Directional lights probe an unbounded range
	occluded := s.IsOccluded(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0), math.Inf(1), 1e-4)
	assert.True(t, occluded)
}

func TestNewDefaultScene(t *testing.T) {
	s, err := NewDefaultScene(100)
	require.NoError(t, err)

	assert.Len(t, s.Shapes, 3)
	assert.Len(t, s.Lights, 1)
	assert.Equal(t, core.NewVec3(1, 1, 1), s.Background)

	// The purple sphere straight ahead is visible from the camera
	ray := s.Camera.GetRay(50, 50)
	hit, isHit := s.NearestHit(ray, 0.001, 1000.0)
	require.True(t, isHit)
	assert.Less(t, hit.T, 30.0)
}

func TestNewShowcaseScene(t *testing.T) {
	s, err := NewShowcaseScene(160)
	require.NoError(t, err)

	assert.Len(t, s.Shapes, 4)
	assert.Len(t, s.Lights, 2)
	assert.Equal(t, 160, s.Camera.Width())
	assert.Equal(t, 90, s.Camera.Height())
}
