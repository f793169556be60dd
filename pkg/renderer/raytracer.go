package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/mverbeek/go-whitted-raytracer/pkg/core"
	"github.com/mverbeek/go-whitted-raytracer/pkg/integrator"
	"github.com/mverbeek/go-whitted-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains rendering configuration
type Config struct {
	TileSize   int // size of each square tile in pixels
	NumWorkers int // parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0,
	}
}

// Raytracer drives the render loop: one camera ray per pixel, shaded by
// the integrator, written into a frame buffer
type Raytracer struct {
	scn        *scene.Scene
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a raytracer for a scene with the given integrator
func NewRaytracer(scn *scene.Scene, integratorInst integrator.Integrator, config Config, logger core.Logger) *Raytracer {
	if config.TileSize <= 0 {
		config.TileSize = 64
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scn:        scn,
		integrator: integratorInst,
		config:     config,
		logger:     logger,
	}
}

// Render computes the full frame and returns the completed buffer. The
// image is partitioned into tiles handed to a worker pool; pixels are
// independent, so the output does not depend on the number of workers.
// Cancelling the context stops the render at pixel granularity.
func (rt *Raytracer) Render(ctx context.Context) (*FrameBuffer, RenderStats, error) {
	width := rt.scn.Camera.Width()
	height := rt.scn.Camera.Height()

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	fb := NewFrameBuffer(width, height)
	tiles := tileBounds(width, height, rt.config.TileSize)

	rt.logger.Printf("Rendering %dx%d in %d tiles with %d workers...\n",
		width, height, len(tiles), numWorkers)

	pool := newWorkerPool(rt.scn, rt.integrator, fb, rt.integrator.MaxDepth(), len(tiles))

	start := time.Now()
	pool.start(ctx, numWorkers)
	for _, tile := range tiles {
		pool.tasks <- tileTask{bounds: tile}
	}
	close(pool.tasks)

	if err := pool.wait(); err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels: width * height,
		NumTiles:    len(tiles),
		NumWorkers:  numWorkers,
		Elapsed:     time.Since(start),
	}

	return fb, stats, nil
}

// tileBounds partitions a width x height image into non-overlapping tiles
func tileBounds(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(
				x, y,
				min(x+tileSize, width),
				min(y+tileSize, height),
			))
		}
	}
	return tiles
}
