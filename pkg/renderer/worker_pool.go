package renderer

import (
	"context"
	"image"
	"sync"

	"github.com/mverbeek/go-whitted-raytracer/pkg/integrator"
	"github.com/mverbeek/go-whitted-raytracer/pkg/scene"
)

// tileTask represents one tile of the image for a worker to render
type tileTask struct {
	bounds image.Rectangle
}

// workerPool renders tiles in parallel. Tiles never overlap, so workers
// write to disjoint frame buffer cells and no locking is needed; the
// result is bit-identical regardless of worker count because every pixel
// is a pure function of immutable scene state.
type workerPool struct {
	scn        *scene.Scene
	integrator integrator.Integrator
	fb         *FrameBuffer
	maxDepth   int

	tasks chan tileTask
	wg    sync.WaitGroup

	errOnce sync.Once
	err     error
}

func newWorkerPool(scn *scene.Scene, integratorInst integrator.Integrator, fb *FrameBuffer, maxDepth, numTiles int) *workerPool {
	return &workerPool{
		scn:        scn,
		integrator: integratorInst,
		fb:         fb,
		maxDepth:   maxDepth,
		tasks:      make(chan tileTask, numTiles),
	}
}

// start launches the workers; they drain the task channel until closed
func (wp *workerPool) start(ctx context.Context, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(ctx)
	}
}

// wait blocks until all workers finish and returns the first error seen
func (wp *workerPool) wait() error {
	wp.wg.Wait()
	return wp.err
}

// run is the main worker loop
func (wp *workerPool) run(ctx context.Context) {
	defer wp.wg.Done()

	for task := range wp.tasks {
		if err := wp.renderTile(ctx, task.bounds); err != nil {
			wp.errOnce.Do(func() { wp.err = err })
			return
		}
	}
}

// renderTile renders all pixels within bounds. Cancellation is checked at
// pixel granularity, never mid-intersection.
func (wp *workerPool) renderTile(ctx context.Context, bounds image.Rectangle) error {
	camera := wp.scn.Camera

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			ray := camera.GetRay(x, y)
			wp.fb.Set(x, y, wp.integrator.RayColor(ray, wp.scn, wp.maxDepth))
		}
	}

	return nil
}
