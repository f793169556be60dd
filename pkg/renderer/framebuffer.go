package renderer

import (
	"image"
	"image/color"

	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
)

// FrameBuffer is a dense row-major grid of linear color samples. Each
// pixel is written exactly once per render; conversion for the external
// image encoder happens at the end via ToRGBA.
type FrameBuffer struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewFrameBuffer creates a frame buffer of the given dimensions
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width returns the buffer width in pixels
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels
func (fb *FrameBuffer) Height() int { return fb.height }

// Set stores the color for pixel (x, y)
func (fb *FrameBuffer) Set(x, y int, c core.Vec3) {
	fb.pixels[y*fb.width+x] = c
}

// At returns the color of pixel (x, y)
func (fb *FrameBuffer) At(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x]
}

// ToRGBA converts the linear buffer to an 8-bit image with gamma
// correction and clamping, ready for any stdlib image encoder
func (fb *FrameBuffer) ToRGBA(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))

	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.At(x, y)
			if gamma > 0 && gamma != 1 {
				c = c.GammaCorrect(gamma)
			}
			c = c.Clamp(0.0, 1.0)

			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}

	return img
}
