package geometry

import (
	"math"
	"testing"

	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       100,
		AspectRatio: 1.0,
		VFov:        90.0,
	}
}

func TestNewCamera_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CameraConfig)
	}{
		{"zero width", func(c *CameraConfig) { c.Width = 0 }},
		{"negative aspect ratio", func(c *CameraConfig) { c.AspectRatio = -1 }},
		{"zero fov", func(c *CameraConfig) { c.VFov = 0 }},
		{"fov at 180", func(c *CameraConfig) { c.VFov = 180 }},
		{"look-at equals center", func(c *CameraConfig) { c.LookAt = c.Center }},
		{"up parallel to view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, -1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testCameraConfig()
			tt.mutate(&config)
			if _, err := NewCamera(config); err == nil {
				t.Error("Expected construction error, got none")
			}
		})
	}
}

func TestCamera_Forward(t *testing.T) {
	camera, err := NewCamera(testCameraConfig())
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	forward := camera.Forward()
	expected := core.NewVec3(0, 0, -1)
	if forward.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected forward direction %v, got %v", expected, forward)
	}
}

func TestCamera_GetRay_CenterPixel(t *testing.T) {
	camera, err := NewCamera(testCameraConfig())
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	// The center pixel's ray points straight down the view axis
	ray := camera.GetRay(50, 50)

	if ray.Origin != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected ray origin at camera center, got %v", ray.Origin)
	}

	// Pixel centers sit half a pixel off the exact image center, so allow
	// half a pixel of angular slack
	if ray.Direction.Dot(core.NewVec3(0, 0, -1)) < math.Cos(0.02) {
		t.Errorf("Expected center ray along -Z, got %v", ray.Direction)
	}
}

func TestCamera_GetRay_Deterministic(t *testing.T) {
	camera, err := NewCamera(testCameraConfig())
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	first := camera.GetRay(13, 87)
	for i := 0; i < 10; i++ {
		if camera.GetRay(13, 87) != first {
			t.Fatal("GetRay is not deterministic for a fixed pixel")
		}
	}
}

func TestCamera_GetRay_CornersSpanFov(t *testing.T) {
	camera, err := NewCamera(testCameraConfig())
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	// With a 90 degree vertical fov, the top edge of the image plane sits
	// 45 degrees off axis; the topmost pixel row is half a pixel inside it
	topRay := camera.GetRay(50, 0)
	bottomRay := camera.GetRay(50, 99)

	if topRay.Direction.Y <= 0 {
		t.Errorf("Expected top ray pointing up, got %v", topRay.Direction)
	}
	if bottomRay.Direction.Y >= 0 {
		t.Errorf("Expected bottom ray pointing down, got %v", bottomRay.Direction)
	}

	angle := math.Acos(topRay.Direction.Dot(camera.Forward()))
	if math.Abs(angle-math.Pi/4) > 0.02 {
		t.Errorf("Expected top ray ~45 degrees off axis, got %f radians", angle)
	}

	// The image is upright: up in the image maps to +Y in world space
	if topRay.Direction.Y <= bottomRay.Direction.Y {
		t.Error("Image rows are vertically flipped")
	}
}

func TestCamera_HeightFromAspectRatio(t *testing.T) {
	config := testCameraConfig()
	config.Width = 400
	config.AspectRatio = 16.0 / 9.0

	camera, err := NewCamera(config)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	if camera.Width() != 400 || camera.Height() != 225 {
		t.Errorf("Expected 400x225, got %dx%d", camera.Width(), camera.Height())
	}
}
