package bvh

import (
	"github.com/perf-analysis/bvhtraverse/pkg/utils"
)

// BVH bundles the external collaborators the driver needs: the implicit
// tree shape, bounding volumes for internal/leaf nodes, the user-facing
// leaves, and the physical-slot-to-user-id permutation. Construction of
// these (Morton ordering, tree assembly, geometry fitting) lives outside
// this package.
type BVH struct {
	Tree   *Tree
	Nodes  Nodes
	Leaves Leaves
	Order  []int
}

func validateStartLevel(tree *Tree, startLevel int) error {
	if startLevel < tree.BuiltLevel || startLevel > tree.Levels {
		return invalidLevelError(startLevel, tree.BuiltLevel, tree.Levels)
	}
	return nil
}

// defaultSelfStartLevel implements start_level = max(L/2, built_level).
func defaultSelfStartLevel(tree *Tree) int {
	sl := tree.Levels / 2
	if sl < tree.BuiltLevel {
		sl = tree.BuiltLevel
	}
	if sl < 1 {
		sl = 1
	}
	return sl
}

// Traverse enumerates all leaf pairs (i, j), i < j, whose bounding
// volumes overlap. startLevel == 0 selects the default
// max(levels/2, built_level). Pass a previous TraversalResult's
// AsCache() to reuse its buffers.
func Traverse(bvh *BVH, startLevel int, cache *Cache, opts Options, logger utils.Logger) (*TraversalResult, error) {
	tree := bvh.Tree
	if startLevel == 0 {
		startLevel = defaultSelfStartLevel(tree)
	}
	if err := validateStartLevel(tree, startLevel); err != nil {
		return nil, err
	}
	if cache != nil && cache.Kind == CacheKindRay {
		return nil, incompatibleCacheError("cache was last seeded by TraverseRays; Traverse requires a self-traversal (or unseeded) cache")
	}
	if logger == nil {
		logger = &utils.NullLogger{}
	}

	if tree.RealNodes <= 1 {
		c := cache
		if c == nil {
			c = &Cache{}
		}
		return &TraversalResult{StartLevel: startLevel, Cache1: c.A, Cache2: c.B, Kind: CacheKindSelf}, nil
	}

	parallelism := opts.parallelism()
	minChunk := opts.minChunk()

	c, n := SeedSelf(tree, startLevel, cache)
	numChecks := n
	a, b := c.A, c.B

	for level := startLevel; level < tree.Levels; level++ {
		selfChecksEnabled := level < tree.Levels-1
		b = ensureCapacity(b, selfFanout*n)

		nodes := bvh.Nodes
		nNext := dispatch(parallelism, minChunk, n, b, selfFanout, a[:n], func(src, dest []Pair, rng Range) int {
			return expandSelfRange(tree, nodes, selfChecksEnabled, src, dest, rng)
		})

		logger.Debug("bvh self expand level=%d n=%d n_next=%d", level, n, nNext)
		if opts.TraceHook != nil {
			opts.TraceHook(level, b[:nNext])
		}
		numChecks += nNext
		a, b = b, a
		n = nNext
	}

	b = ensureCapacity(b, n)
	m := dispatch(parallelism, minChunk, n, b, 1, a[:n], func(src, dest []Pair, rng Range) int {
		return collectSelfRange(tree, bvh.Leaves, bvh.Order, src, dest, rng)
	})

	return &TraversalResult{
		StartLevel:  startLevel,
		NumChecks:   numChecks,
		NumContacts: m,
		Contacts:    b[:m],
		Cache1:      b,
		Cache2:      a,
		Kind:        CacheKindSelf,
	}, nil
}

// TraverseRays enumerates all (leaf, ray) pairs where the ray hits the
// leaf's bounding volume. startLevel == 0 selects the default of 1.
// Traverse and TraverseRays are intentionally separate entry points that
// share only the index algebra, buffer types and dispatch below them;
// one never calls into the other's driver loop.
func TraverseRays(bvh *BVH, rays Rays, startLevel int, cache *Cache, opts Options, logger utils.Logger) (*TraversalResult, error) {
	tree := bvh.Tree
	if startLevel == 0 {
		startLevel = 1
	}
	if err := validateStartLevel(tree, startLevel); err != nil {
		return nil, err
	}
	if cache != nil && cache.Kind == CacheKindSelf {
		return nil, incompatibleCacheError("cache was last seeded by Traverse; TraverseRays requires a ray-traversal (or unseeded) cache")
	}
	if logger == nil {
		logger = &utils.NullLogger{}
	}

	numRays := rays.Len()
	if numRays == 0 {
		c := cache
		if c == nil {
			c = &Cache{}
		}
		return &TraversalResult{StartLevel: startLevel, Cache1: c.A, Cache2: c.B, Kind: CacheKindRay}, nil
	}

	parallelism := opts.parallelism()
	minChunk := opts.minChunk()

	c, n := SeedRays(tree, numRays, startLevel, cache)
	numChecks := n
	a, b := c.A, c.B

	for level := startLevel; level < tree.Levels; level++ {
		b = ensureCapacity(b, rayFanout*n)

		nodes := bvh.Nodes
		nNext := dispatch(parallelism, minChunk, n, b, rayFanout, a[:n], func(src, dest []Pair, rng Range) int {
			return expandRayRange(tree, nodes, rays, src, dest, rng)
		})

		logger.Debug("bvh ray expand level=%d n=%d n_next=%d", level, n, nNext)
		if opts.TraceHook != nil {
			opts.TraceHook(level, b[:nNext])
		}
		numChecks += nNext
		a, b = b, a
		n = nNext
	}

	b = ensureCapacity(b, n)
	m := dispatch(parallelism, minChunk, n, b, 1, a[:n], func(src, dest []Pair, rng Range) int {
		return collectRayRange(tree, bvh.Leaves, rays, bvh.Order, src, dest, rng)
	})

	return &TraversalResult{
		StartLevel:  startLevel,
		NumChecks:   numChecks,
		NumContacts: m,
		Contacts:    b[:m],
		Cache1:      b,
		Cache2:      a,
		Kind:        CacheKindRay,
	}, nil
}
