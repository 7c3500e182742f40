// Package parallel provides a small bounded worker pool for fanning
// independent per-item work out across goroutines. The traversal core
// has its own range-partitioned dispatch (internal/bvh); this package
// serves the surrounding tooling, e.g. cmd/bvhbench's fixture
// generation.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// PoolConfig configures the worker pool behavior.
type PoolConfig struct {
	// MaxWorkers is the maximum number of concurrent workers.
	// Default: min(runtime.NumCPU(), 8), floor 2.
	MaxWorkers int

	// TaskBufferSize is the buffer size of the work channel.
	// Default: MaxWorkers * 2.
	TaskBufferSize int

	// Timeout bounds the entire operation. Default: 0 (no timeout).
	Timeout time.Duration
}

// DefaultPoolConfig returns a default pool configuration.
func DefaultPoolConfig() PoolConfig {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers < 2 {
		workers = 2
	}
	return PoolConfig{
		MaxWorkers:     workers,
		TaskBufferSize: workers * 2,
	}
}

// WithWorkers returns a copy of the config with the given worker count.
func (c PoolConfig) WithWorkers(n int) PoolConfig {
	c.MaxWorkers = n
	return c
}

// WithTimeout returns a copy of the config with the given timeout.
func (c PoolConfig) WithTimeout(d time.Duration) PoolConfig {
	c.Timeout = d
	return c
}

func (c PoolConfig) workers(nItems int) int {
	w := c.MaxWorkers
	if w <= 0 {
		w = DefaultPoolConfig().MaxWorkers
	}
	if w > nItems {
		w = nItems
	}
	return w
}

func (c PoolConfig) buffer() int {
	if c.TaskBufferSize > 0 {
		return c.TaskBufferSize
	}
	w := c.MaxWorkers
	if w <= 0 {
		w = DefaultPoolConfig().MaxWorkers
	}
	return w * 2
}

// run feeds item indices [0, n) to min(MaxWorkers, n) goroutines, each invoking
// process. It returns once every submitted index has been processed or
// the context (including any configured timeout) is done.
func (c PoolConfig) run(ctx context.Context, n int, process func(ctx context.Context, idx int)) {
	if n == 0 {
		return
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	work := make(chan int, c.buffer())
	var wg sync.WaitGroup
	for w := 0; w < c.workers(n); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-work:
					if !ok {
						return
					}
					process(ctx, idx)
				}
			}
		}()
	}

	go func() {
		defer close(work)
		for i := 0; i < n; i++ {
			select {
			case <-ctx.Done():
				return
			case work <- i:
			}
		}
	}()

	wg.Wait()
}

// ForEach executes fn for each item in parallel. Returns the number of
// items processed successfully and the first error fn returned; an error
// does not stop the remaining items.
func ForEach[T any](
	ctx context.Context,
	items []T,
	config PoolConfig,
	fn func(ctx context.Context, item T) error,
) (processed int64, firstError error) {
	var count atomic.Int64
	var once sync.Once

	config.run(ctx, len(items), func(ctx context.Context, idx int) {
		if err := fn(ctx, items[idx]); err != nil {
			once.Do(func() { firstError = err })
			return
		}
		count.Add(1)
	})

	return count.Load(), firstError
}

// Map applies fn to each item in parallel and returns the results in
// input order, along with the first error fn returned. Slots whose fn
// errored (or was cut off by the context) hold the zero value.
func Map[T any, R any](
	ctx context.Context,
	items []T,
	config PoolConfig,
	fn func(ctx context.Context, item T) (R, error),
) ([]R, error) {
	results := make([]R, len(items))
	var once sync.Once
	var firstError error

	config.run(ctx, len(items), func(ctx context.Context, idx int) {
		r, err := fn(ctx, items[idx])
		if err != nil {
			once.Do(func() { firstError = err })
			return
		}
		results[idx] = r
	})

	return results, firstError
}
