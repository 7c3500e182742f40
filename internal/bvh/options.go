package bvh

import "runtime"

// IndexType names the width the caller intends for node/ray indices.
// The engine always stores Pair{U,V uint32} internally; this is
// advisory metadata surfaced to callers building fixtures, not a
// runtime-checked contract. Cache compatibility between Traverse and
// TraverseRays is checked separately, via Cache.Kind (see
// incompatibleCacheError's doc comment).
type IndexType int

const (
	// IndexTypeUint32 is the only width the engine currently supports.
	IndexTypeUint32 IndexType = iota
)

// Options configures a traversal call.
type Options struct {
	// BlockSize is advisory metadata, like IndexType: the engine does not
	// read it. BVTT buffers are always sized from the computed initial
	// work set and the pre-sizing rules, whatever its value.
	BlockSize int

	// IndexType documents the index width a caller's fixtures use.
	IndexType IndexType

	// ParallelismHint caps the number of concurrent tasks a dispatch may
	// use (T_max in the partitioner). Zero means DefaultParallelismHint().
	ParallelismHint int

	// MinChunk is the minimum number of items a task partition range may
	// cover (the partitioner's min_chunk floor). Zero means MinChunk
	// from partition.go, the core's fixed default of 100.
	MinChunk int

	// TraceHook, if set, is called once per expansion level with the
	// source level just expanded and the destination items it produced,
	// before the buffer swap. It exists for tests and diagnostics that
	// need to observe BVTT contents level by level (e.g. confirming
	// self-check suppression one level above the leaves); production
	// callers normally leave it nil.
	TraceHook func(level int, items []Pair)
}

// DefaultOptions returns the zero-value-friendly defaults: no block-size
// hint, uint32 indices, parallelism auto-detected from the runtime.
func DefaultOptions() Options {
	return Options{
		IndexType:       IndexTypeUint32,
		ParallelismHint: DefaultParallelismHint(),
		MinChunk:        MinChunk,
	}
}

// DefaultParallelismHint mirrors pkg/parallel's DefaultPoolConfig: cap at
// 8 workers to avoid excessive task overhead on large machines, floor at
// 2 so small machines still get some overlap between tasks.
func DefaultParallelismHint() int {
	workers := runtime.NumCPU()
	if workers > 8 {
		workers = 8
	}
	if workers < 2 {
		workers = 2
	}
	return workers
}

func (o Options) parallelism() int {
	if o.ParallelismHint > 0 {
		return o.ParallelismHint
	}
	return DefaultParallelismHint()
}

func (o Options) minChunk() int {
	if o.MinChunk > 0 {
		return o.MinChunk
	}
	return MinChunk
}
