package bvh

// collectSelfRange runs the final overlap test on leaf-level self-pairs
// src[rng.Start:rng.End) and emits canonicalized contacts into dest, which
// must be exactly rng.Len() long (fanout 1: each input produces at most
// one output). Returns the number written.
func collectSelfRange(tree *Tree, leaves Leaves, order []int, src, dest []Pair, rng Range) int {
	leafOffset := tree.LeafOffset()
	n := 0
	for idx := rng.Start; idx < rng.End; idx++ {
		item := src[idx]

		p1 := tree.MemoryIndex(int(item.U)) - leafOffset
		p2 := tree.MemoryIndex(int(item.V)) - leafOffset
		r1, r2 := order[p1], order[p2]

		if !leaves.Leaf(r1).Overlap(leaves.Leaf(r2)) {
			continue
		}

		a, b := uint32(r1), uint32(r2)
		if a > b {
			a, b = b, a
		}
		dest[n] = Pair{a, b}
		n++
	}

	if n > len(dest) {
		invariantViolation(tree.Levels, rng.Start, "self collection wrote past its reserved region")
	}
	return n
}

// collectRayRange runs the final ray_hit test on leaf-level (node, ray)
// items src[rng.Start:rng.End) and emits (leaf, ray) contacts into dest,
// which must be exactly rng.Len() long.
func collectRayRange(tree *Tree, leaves Leaves, rays Rays, order []int, src, dest []Pair, rng Range) int {
	leafOffset := tree.LeafOffset()
	n := 0
	for idx := rng.Start; idx < rng.End; idx++ {
		item := src[idx]

		p := tree.MemoryIndex(int(item.U)) - leafOffset
		r := order[p]
		ray := item.V

		if !leaves.Leaf(r).RayHit(rays.Origin(int(ray)), rays.Direction(int(ray))) {
			continue
		}

		dest[n] = Pair{uint32(r), ray}
		n++
	}

	if n > len(dest) {
		invariantViolation(tree.Levels, rng.Start, "ray collection wrote past its reserved region")
	}
	return n
}
