package service

import (
	"context"
	"runtime"
	"sync"
	"time"

	"vendbridge/internal/model"
)

// workerPool fans status queries for pending orders out over a fixed
// number of workers. The provider rate limits aggressively; a 429
// pauses the whole pool for the penalty window instead of hammering it
// from every worker.
type workerPool struct {
	numWorkers int

	pauseMu sync.Mutex
	paused  bool
}

func newWorkerPool() *workerPool {
	return &workerPool{
		numWorkers: runtime.NumCPU(),
	}
}

func (wp *workerPool) isPaused() bool {
	wp.pauseMu.Lock()
	defer wp.pauseMu.Unlock()

	return wp.paused
}

func (wp *workerPool) pauseWithTimer(duration time.Duration) {
	wp.pauseMu.Lock()
	defer wp.pauseMu.Unlock()

	if wp.paused {
		return
	}

	wp.paused = true

	go func() {
		time.Sleep(duration)
		wp.resume()
	}()
}

func (wp *workerPool) resume() {
	wp.pauseMu.Lock()
	defer wp.pauseMu.Unlock()

	if !wp.paused {
		return
	}

	wp.paused = false
}

// process runs fn over the orders and returns when all are done or the
// context is cancelled.
func (wp *workerPool) process(ctx context.Context, orders []model.Order, fn func(context.Context, model.Order)) {
	jobs := make(chan model.Order, len(orders))
	for _, order := range orders {
		jobs <- order
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(wp.numWorkers)
	for i := 0; i < wp.numWorkers; i++ {
		go func() {
			defer wg.Done()
			for order := range jobs {
				if ctx.Err() != nil {
					return
				}
				if wp.isPaused() {
					return
				}
				fn(ctx, order)
			}
		}()
	}

	wg.Wait()
}
