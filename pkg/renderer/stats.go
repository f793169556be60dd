package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // total number of pixels rendered
	NumTiles    int           // number of tiles the image was split into
	NumWorkers  int           // parallel workers used
	Elapsed     time.Duration // wall-clock render time
}
