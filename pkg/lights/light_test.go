package lights

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
)

func TestPointLight_Sample(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1))

	dir, distance, intensity := light.Sample(core.NewVec3(0, 0, 0))

	assert.InDelta(t, 10.0, distance, 1e-12)
	assert.InDelta(t, 0.0, dir.Subtract(core.NewVec3(0, 1, 0)).Length(), 1e-12)
	assert.Equal(t, core.NewVec3(1, 1, 1), intensity)
}

func TestPointLight_Sample_AtLightPosition(t *testing.T) {
	light := NewPointLight(core.NewVec3(1, 2, 3), core.NewVec3(1, 1, 1))

	dir, distance, _ := light.Sample(core.NewVec3(1, 2, 3))

	assert.Zero(t, distance)
	assert.Equal(t, core.Vec3{}, dir)
}

func TestDirectionalLight_Sample(t *testing.T) {
	// Light travelling straight down; sample direction points up,
	// independent of the shading point
	light := NewDirectionalLight(core.NewVec3(0, -2, 0), core.NewVec3(0.5, 0.5, 0.5))

	for _, point := range []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(100, -5, 3),
	} {
		dir, distance, intensity := light.Sample(point)

		assert.InDelta(t, 0.0, dir.Subtract(core.NewVec3(0, 1, 0)).Length(), 1e-12)
		assert.True(t, math.IsInf(distance, 1))
		assert.Equal(t, core.NewVec3(0.5, 0.5, 0.5), intensity)
	}
}
