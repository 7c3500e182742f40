package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestForEach_ProcessesEveryItem(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	var sum atomic.Int64
	processed, err := ForEach(context.Background(), items, DefaultPoolConfig(), func(ctx context.Context, item int) error {
		sum.Add(int64(item))
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if processed != 100 {
		t.Fatalf("expected 100 items processed, got %d", processed)
	}
	if sum.Load() != 99*100/2 {
		t.Errorf("expected sum %d, got %d", 99*100/2, sum.Load())
	}
}

func TestForEach_EmptyInput(t *testing.T) {
	processed, err := ForEach(context.Background(), []int(nil), DefaultPoolConfig(), func(ctx context.Context, item int) error {
		t.Fatal("fn must not be called for empty input")
		return nil
	})
	if processed != 0 || err != nil {
		t.Fatalf("expected (0, nil) for empty input, got (%d, %v)", processed, err)
	}
}

func TestForEach_ReportsFirstErrorAndContinues(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	wantErr := errors.New("item rejected")

	processed, err := ForEach(context.Background(), items, DefaultPoolConfig().WithWorkers(2), func(ctx context.Context, item int) error {
		if item == 3 {
			return wantErr
		}
		return nil
	})

	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the item error to surface, got %v", err)
	}
	if processed != int64(len(items)-1) {
		t.Errorf("expected the remaining %d items to still process, got %d", len(items)-1, processed)
	}
}

func TestForEach_SingleWorkerStillCompletes(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	var count atomic.Int64
	processed, err := ForEach(context.Background(), items, DefaultPoolConfig().WithWorkers(1), func(ctx context.Context, item int) error {
		count.Add(1)
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if processed != 5 || count.Load() != 5 {
		t.Errorf("expected all 5 items with a single worker, got processed=%d count=%d", processed, count.Load())
	}
}

func TestForEach_CancelledContextStopsEarly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := make([]int, 1000)
	processed, _ := ForEach(ctx, items, DefaultPoolConfig(), func(ctx context.Context, item int) error {
		return nil
	})

	if processed == 1000 {
		t.Error("expected a pre-cancelled context to cut the run short")
	}
}

func TestForEach_TimeoutApplies(t *testing.T) {
	items := make([]int, 64)
	config := DefaultPoolConfig().WithWorkers(2).WithTimeout(10 * time.Millisecond)

	start := time.Now()
	ForEach(context.Background(), items, config, func(ctx context.Context, item int) error {
		select {
		case <-ctx.Done():
		case <-time.After(time.Second):
		}
		return nil
	})

	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("expected the timeout to bound the run, took %v", elapsed)
	}
}

func TestMap_PreservesInputOrder(t *testing.T) {
	items := []int{5, 3, 8, 1, 9, 2}

	results, err := Map(context.Background(), items, DefaultPoolConfig(), func(ctx context.Context, item int) (int, error) {
		return item * item, nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, item := range items {
		if results[i] != item*item {
			t.Errorf("results[%d] = %d, want %d", i, results[i], item*item)
		}
	}
}

func TestMap_ErrorLeavesZeroValue(t *testing.T) {
	items := []int{1, 2, 3}
	wantErr := errors.New("no square for 2")

	results, err := Map(context.Background(), items, DefaultPoolConfig(), func(ctx context.Context, item int) (int, error) {
		if item == 2 {
			return 0, wantErr
		}
		return item * item, nil
	})

	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the mapper error to surface, got %v", err)
	}
	if results[0] != 1 || results[1] != 0 || results[2] != 9 {
		t.Errorf("expected [1 0 9], got %v", results)
	}
}

func TestDefaultPoolConfig_Bounds(t *testing.T) {
	config := DefaultPoolConfig()

	if config.MaxWorkers < 2 || config.MaxWorkers > 8 {
		t.Errorf("expected MaxWorkers in [2, 8], got %d", config.MaxWorkers)
	}
	if config.TaskBufferSize != config.MaxWorkers*2 {
		t.Errorf("expected TaskBufferSize %d, got %d", config.MaxWorkers*2, config.TaskBufferSize)
	}
}
