package bvh

// expandSelfRange expands the self-traversal work items src[rng.Start:rng.End)
// into dest, which must be exactly selfFanout*rng.Len() long (the
// worst-case fanout region reserved for this range by the dispatcher). It
// returns the number of items actually written, k <= len(dest).
//
// selfChecksEnabled corresponds to the level the *source* items live at:
// self-checks stop sprouting one level above the leaves (level == L-1),
// since a self-check at a parent-of-leaves would only ever produce
// leaf-on-self pairs that collect.go has no use for.
func expandSelfRange(tree *Tree, nodes Nodes, selfChecksEnabled bool, src, dest []Pair, rng Range) int {
	n := 0
	for idx := rng.Start; idx < rng.End; idx++ {
		item := src[idx]
		u, v := item.U, item.V

		if u == v {
			left, right := 2*u, 2*u+1
			if tree.IsVirtual(int(right)) {
				if selfChecksEnabled {
					dest[n] = Pair{left, left}
					n++
				}
				continue
			}
			if selfChecksEnabled {
				dest[n] = Pair{left, left}
				n++
				dest[n] = Pair{right, right}
				n++
				dest[n] = Pair{left, right}
				n++
			} else {
				dest[n] = Pair{left, right}
				n++
			}
			continue
		}

		nu := nodes.Node(tree.MemoryIndex(int(u)))
		nv := nodes.Node(tree.MemoryIndex(int(v)))
		if !nu.Overlap(nv) {
			continue
		}

		lu, ru := 2*u, 2*u+1
		lv, rv := 2*v, 2*v+1
		if tree.IsVirtual(int(rv)) {
			dest[n] = Pair{lu, lv}
			n++
			dest[n] = Pair{ru, lv}
			n++
		} else {
			dest[n] = Pair{lu, lv}
			n++
			dest[n] = Pair{lu, rv}
			n++
			dest[n] = Pair{ru, lv}
			n++
			dest[n] = Pair{ru, rv}
			n++
		}
	}

	if n > len(dest) {
		invariantViolation(0, rng.Start, "self expansion wrote past its reserved region")
	}
	return n
}

// expandRayRange expands ray-traversal work items src[rng.Start:rng.End)
// into dest, which must be exactly rayFanout*rng.Len() long. Every source
// item names an internal node (expand.go is never invoked on leaf-level
// items — the driver hands those to collect.go instead), so a hit always
// sprouts into children rather than terminating.
func expandRayRange(tree *Tree, nodes Nodes, rays Rays, src, dest []Pair, rng Range) int {
	n := 0
	for idx := rng.Start; idx < rng.End; idx++ {
		item := src[idx]
		node, ray := item.U, item.V

		bv := nodes.Node(tree.MemoryIndex(int(node)))
		if !bv.RayHit(rays.Origin(int(ray)), rays.Direction(int(ray))) {
			continue
		}

		left, right := 2*node, 2*node+1
		if tree.IsVirtual(int(right)) {
			dest[n] = Pair{left, ray}
			n++
		} else {
			dest[n] = Pair{left, ray}
			n++
			dest[n] = Pair{right, ray}
			n++
		}
	}

	if n > len(dest) {
		invariantViolation(0, rng.Start, "ray expansion wrote past its reserved region")
	}
	return n
}
