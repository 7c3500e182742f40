package bvgeom

import (
	"math"

	"github.com/perf-analysis/bvhtraverse/internal/bvh"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max [3]float64
}

// Overlap reports whether this box and other intersect.
func (a AABB) Overlap(other bvh.BoundingVolume) bool {
	switch o := other.(type) {
	case AABB:
		for i := 0; i < 3; i++ {
			if a.Max[i] < o.Min[i] || o.Max[i] < a.Min[i] {
				return false
			}
		}
		return true
	case Sphere:
		return sphereAABBOverlap(o, a)
	default:
		return other.Overlap(a)
	}
}

// RayHit tests a forward half-line ray against the box via the slab
// method.
func (a AABB) RayHit(origin, direction [3]float64) bool {
	tMin, tMax := negInf, posInf
	for i := 0; i < 3; i++ {
		if direction[i] == 0 {
			if origin[i] < a.Min[i] || origin[i] > a.Max[i] {
				return false
			}
			continue
		}
		inv := 1 / direction[i]
		t1 := (a.Min[i] - origin[i]) * inv
		t2 := (a.Max[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return false
		}
	}
	return tMax >= 0
}

// Union returns the smallest box enclosing both a and other, for
// building internal-node bounding volumes bottom-up from leaves.
func (a AABB) Union(other AABB) AABB {
	var out AABB
	for i := 0; i < 3; i++ {
		out.Min[i] = math.Min(a.Min[i], other.Min[i])
		out.Max[i] = math.Max(a.Max[i], other.Max[i])
	}
	return out
}

// sphereAABBOverlap tests a sphere against a box by clamping the
// sphere's center into the box and comparing the clamped distance to the
// radius.
func sphereAABBOverlap(s Sphere, b AABB) bool {
	var closest [3]float64
	for i := 0; i < 3; i++ {
		c := s.Center[i]
		if c < b.Min[i] {
			c = b.Min[i]
		} else if c > b.Max[i] {
			c = b.Max[i]
		}
		closest[i] = c
	}
	d := sub(s.Center, closest)
	return dot(d, d) <= s.Radius*s.Radius
}
