package bvh

// fakeBV is a BoundingVolume stub whose overlap/ray-hit behaviour is
// configured directly, so expand/collect/driver tests can exercise the
// traversal machinery without any real geometry.
type fakeBV struct {
	overlaps bool
	rayHits  bool
}

func (f fakeBV) Overlap(other BoundingVolume) bool       { return f.overlaps }
func (f fakeBV) RayHit(origin, direction [3]float64) bool { return f.rayHits }

func allOverlap() fakeBV { return fakeBV{overlaps: true, rayHits: true} }
func noOverlap() fakeBV  { return fakeBV{overlaps: false, rayHits: false} }

func fillNodes(n int, bv fakeBV) SliceNodes {
	nodes := make(SliceNodes, n)
	for i := range nodes {
		nodes[i] = bv
	}
	return nodes
}

func fillLeaves(n int, bv fakeBV) SliceLeaves {
	leaves := make(SliceLeaves, n)
	for i := range leaves {
		leaves[i] = bv
	}
	return leaves
}
