package bvh

import "math/bits"

// Tree describes the shape of an implicit perfect binary tree: Levels
// levels of 1-based level-order node indices, with the leaf level padded
// out to a power of two by VirtualLeaves virtual (non-real) slots.
//
// Virtuals are always right-packed within a level: if node k is virtual,
// every node to its right in the same level is virtual too, and if k is
// real, every node to its left is real. This is what makes IsVirtual and
// MemoryIndex branchless integer arithmetic instead of a lookup table.
type Tree struct {
	Levels        int // L: number of levels, root is level 1
	RealNodes     int // sum of RealNodesAt over all levels; 2*RealLeaves - 1 only when VirtualLeaves == 0
	RealLeaves    int // R
	VirtualLeaves int // V = 2^(Levels-1) - RealLeaves
	BuiltLevel    int // shallowest level with materialised bounding volumes

	// levelOffset[l] is the memory index of the first real node of level
	// l, i.e. sum(RealNodesAt(1..l-1)). Indexed 1..Levels; levelOffset
	// has Levels+1 entries, and levelOffset[Levels] is the first leaf's
	// memory index (LeafOffset).
	levelOffset []int
}

// NodesPerLevel returns 2^(level-1), the slot count of a full level
// (real and virtual combined).
func NodesPerLevel(level int) int {
	return 1 << uint(level-1)
}

// virtualAt returns the number of virtual (padding) slots in the given
// level: V >> (L - level). Virtuals halve away one level at a time as you
// go up the tree, staying right-packed.
func (t *Tree) virtualAt(level int) int {
	return t.VirtualLeaves >> uint(t.Levels-level)
}

// RealNodesAt returns the number of real (non-virtual) nodes in the given
// level.
func (t *Tree) RealNodesAt(level int) int {
	return NodesPerLevel(level) - t.virtualAt(level)
}

// levelOf returns the 1-based level containing implicit index k, i.e.
// floor(log2(k)) + 1. bits.Len gives exactly that for k >= 1.
func levelOf(k int) int {
	return bits.Len(uint(k))
}

// IsVirtual reports whether implicit index k is a padding slot: true iff
// k's position within its level, counted from the left (0-based), falls
// at or past the real/virtual boundary for that level.
func (t *Tree) IsVirtual(k int) bool {
	level := levelOf(k)
	offset := k - NodesPerLevel(level)
	return offset >= t.RealNodesAt(level)
}

// MemoryIndex returns the physical storage slot for a real implicit
// index k: the count of real nodes in shallower levels, plus k's
// left-counted offset within its own level (valid because real nodes
// occupy the leftmost positions of every level).
//
// Callers must only invoke this on real (non-virtual) indices; the BVTT
// expansion rules in expand.go guarantee virtual indices are pruned
// before MemoryIndex would ever be asked about them.
func (t *Tree) MemoryIndex(k int) int {
	level := levelOf(k)
	offset := k - NodesPerLevel(level)
	return t.levelOffset[level] + offset
}

// LeafOffset is the memory index of the first leaf: the sum of
// RealNodesAt over every level shallower than the leaf level. This
// equals RealNodes - RealLeaves only when the leaf count is a power of
// two (no virtual padding); with padding, some "internal" nodes still
// count as real despite having a virtual child, so the sum can exceed
// RealLeaves - 1. Translating a leaf-level memory index into a 0-based
// leaf slot is MemoryIndex(k) - LeafOffset() regardless.
func (t *Tree) LeafOffset() int {
	return t.levelOffset[t.Levels]
}
