package renderer

import (
	"image"
	"runtime"
	"sync"

	"github.com/user/pathtracer/pkg/core"
)

// RowTask represents a band of scanlines for the worker pool
type RowTask struct {
	YMin, YMax int // Image rows [YMin, YMax)
	TaskID     int
}

// RowResult contains the result from rendering a band of scanlines
type RowResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool manages parallel scanline rendering. Each worker owns a
// raytracer with its own sampler; sharing one generator across workers
// would be a data race.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
	pixelStats  [][]PixelStats
}

// Worker renders row bands from the task queue
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
	pool        *WorkerPool
}

// NewWorkerPool creates a worker pool with the specified number of
// workers. A non-positive count uses the CPU count. Worker samplers are
// derived from the seed, so renders with the same seed and worker count
// are reproducible.
func NewWorkerPool(scene Scene, width, height int, config SamplingConfig, numWorkers int, seed int64) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, height),
		resultQueue: make(chan RowResult, height),
		numWorkers:  numWorkers,
		pixelStats:  NewPixelGrid(width, height),
	}

	for i := 0; i < numWorkers; i++ {
		sampler := core.NewSeededSampler(seed + int64(i))
		raytracer := NewRaytracerWithSampler(scene, width, height, sampler)
		raytracer.SetSamplingConfig(config)

		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
			pool:        wp,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue and waits for workers to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a row band to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Row bands never overlap, so writing the shared grid is safe
		stats := w.raytracer.RenderRows(task.YMin, task.YMax, w.pool.pixelStats)
		w.resultQueue <- RowResult{TaskID: task.TaskID, Stats: stats}
	}
}

// RenderParallel renders the scene across numWorkers goroutines and
// returns the finished image. The per-pixel reduction is a plain sum, so
// the completion order of row bands does not affect the result.
func RenderParallel(scene Scene, width, height int, config SamplingConfig, numWorkers int, seed int64, logger core.Logger) (*image.RGBA, RenderStats) {
	pool := NewWorkerPool(scene, width, height, config, numWorkers, seed)
	pool.Start()

	// One band of scanlines per task; small bands keep the workers evenly
	// loaded near the end of the render
	const rowsPerTask = 4
	numTasks := 0
	for y := 0; y < height; y += rowsPerTask {
		yMax := min(y+rowsPerTask, height)
		pool.SubmitTask(RowTask{YMin: y, YMax: yMax, TaskID: numTasks})
		numTasks++
	}

	totals := RenderStats{}
	for i := 0; i < numTasks; i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		totals.Merge(result.Stats)

		if logger != nil && numTasks >= 10 && (i+1)%(numTasks/10) == 0 {
			logger.Printf("Rendered %d/%d bands (%.0f%%)\n", i+1, numTasks, 100*float64(i+1)/float64(numTasks))
		}
	}
	pool.Stop()

	return PixelGridToImage(pool.pixelStats, width, height), totals
}
