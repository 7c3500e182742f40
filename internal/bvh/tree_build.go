package bvh

// NewTree builds the index-algebra shape for a flat leaf count. This is
// deliberately not a BVH constructor: it performs no Morton ordering, no
// geometric bucketing, and no bounding-volume fitting. It exists to turn
// "I have R leaves, built down to level B" into a Tree that Traverse and
// TraverseRays can address, for use by tests, fixtures, and cmd/bvhbench.
// A real construction pipeline would replace this, not internal/bvh.
func NewTree(realLeaves, builtLevel int) *Tree {
	if realLeaves < 1 {
		realLeaves = 1
	}

	levels := 1
	for NodesPerLevel(levels) < realLeaves {
		levels++
	}

	t := &Tree{
		Levels:        levels,
		RealLeaves:    realLeaves,
		VirtualLeaves: NodesPerLevel(levels) - realLeaves,
		BuiltLevel:    builtLevel,
	}

	// levelOffset[l] is the memory index of the first real node of level
	// l: the exclusive prefix sum of RealNodesAt over levels 1..l-1.
	// levelOffset[1] stays 0 (the root starts storage at slot 0).
	t.levelOffset = make([]int, levels+1)
	for l := 2; l <= levels; l++ {
		t.levelOffset[l] = t.levelOffset[l-1] + t.RealNodesAt(l-1)
	}
	t.RealNodes = t.levelOffset[levels] + t.RealNodesAt(levels)

	return t
}

// IdentityOrder returns the trivial order[] permutation order[i] = i,
// for callers that don't reorder leaves during construction (e.g.
// cmd/bvhbench's synthetic fixtures).
func IdentityOrder(realLeaves int) []int {
	order := make([]int, realLeaves)
	for i := range order {
		order[i] = i
	}
	return order
}
