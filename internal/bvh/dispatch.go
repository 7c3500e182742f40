package bvh

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// rangeFunc processes one partition range of src, writing into the
// disjoint dest region reserved for it, and returns the count of items
// actually written (<= len(dest)). expand.go and collect.go supply the
// concrete self/ray variants.
type rangeFunc func(src, dest []Pair, rng Range) int

// dispatch partitions [0, n) into tasks, runs fn over each task's disjoint
// worst-case-sized region of dest (fanout*range.Len() long), and compacts
// the per-task outputs into a dense prefix of dest. It returns the total
// item count written, i.e. the next level's n.
//
// When the partition collapses to a single range (T == 1, the dominant
// small-input path), fn runs inline on the calling goroutine — no
// errgroup, no task dispatch. This mirrors ParallelAnalyzer's
// errgroup.WithContext + SetLimit fan-out for the T > 1 case while
// keeping the common case free of goroutine overhead.
func dispatch(parallelism, minChunk, n int, dest []Pair, fanout int, src []Pair, fn rangeFunc) int {
	ranges := Partition(n, parallelism, minChunk)

	if len(ranges) == 1 {
		r := ranges[0]
		return fn(src, dest[fanout*r.Start:fanout*r.End], r)
	}

	counts := make([]int, len(ranges))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(len(ranges))

	for t, r := range ranges {
		t, r := t, r
		g.Go(func() error {
			region := dest[fanout*r.Start : fanout*r.End]
			counts[t] = fn(src, region, r)
			return nil
		})
	}
	// Expansion and collection never return an error; the only failure
	// mode is an invariant violation, which panics rather than
	// propagating through errgroup.
	_ = g.Wait()

	total := counts[0]
	for t := 1; t < len(ranges); t++ {
		r := ranges[t]
		region := dest[fanout*r.Start : fanout*r.End]
		copy(dest[total:total+counts[t]], region[:counts[t]])
		total += counts[t]
	}
	return total
}
