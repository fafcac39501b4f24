package renderer

import (
	"context"
	"runtime"
	"sync"
)

// rowTask asks a worker to render one frame row
type rowTask struct {
	Row int // Frame row, 0 = top
}

// rowResult reports a finished (or skipped) row
type rowResult struct {
	row     int
	pixels  int
	samples int
	err     error
}

// WorkerPool manages parallel row rendering.
// Rows write disjoint slices of the shared frame, so no locking is needed.
type WorkerPool struct {
	taskQueue   chan rowTask
	resultQueue chan rowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	frame       *Frame
	taskQueue   chan rowTask
	resultQueue chan rowResult
}

// NewWorkerPool creates a worker pool that renders into frame
func NewWorkerPool(raytracer *Raytracer, frame *Frame, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan rowTask, frame.Height),   // Buffer for every row
		resultQueue: make(chan rowResult, frame.Height), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			frame:       frame,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task rowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (rowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop. Once ctx is done the remaining rows are
// answered with the context error so the collector never blocks.
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			w.resultQueue <- rowResult{row: task.Row, err: err}
			continue
		}
		w.resultQueue <- w.raytracer.renderRow(task.Row, w.frame)
	}
}
