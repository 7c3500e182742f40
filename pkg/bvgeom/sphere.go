// Package bvgeom provides concrete bounding-volume primitives — sphere
// and axis-aligned box — implementing internal/bvh.BoundingVolume. No
// tree or traversal logic lives here; that boundary is deliberate.
package bvgeom

import (
	"math"

	"github.com/perf-analysis/bvhtraverse/internal/bvh"
)

// Sphere is a bounding sphere: center plus radius.
type Sphere struct {
	Center [3]float64
	Radius float64
}

// Overlap reports whether this sphere and other intersect. Sphere vs.
// AABB uses the shared sphereAABBOverlap test, which AABB.Overlap also
// uses, so either ordering gives the same answer; any other volume type
// is asked through its own Overlap.
func (s Sphere) Overlap(other bvh.BoundingVolume) bool {
	switch o := other.(type) {
	case Sphere:
		d := sub(s.Center, o.Center)
		r := s.Radius + o.Radius
		return dot(d, d) <= r*r
	case AABB:
		return sphereAABBOverlap(s, o)
	default:
		return other.Overlap(s)
	}
}

// Bounds returns the axis-aligned box tightly enclosing the sphere, for
// callers building internal-node volumes on top of sphere leaves.
func (s Sphere) Bounds() AABB {
	r := [3]float64{s.Radius, s.Radius, s.Radius}
	return AABB{Min: sub(s.Center, r), Max: add(s.Center, r)}
}

// RayHit tests a forward half-line ray against the sphere via the
// standard ray-sphere quadratic.
func (s Sphere) RayHit(origin, direction [3]float64) bool {
	oc := sub(origin, s.Center)
	a := dot(direction, direction)
	if a == 0 {
		return dot(oc, oc) <= s.Radius*s.Radius
	}
	b := 2 * dot(oc, direction)
	c := dot(oc, oc) - s.Radius*s.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	return t1 >= 0 || t2 >= 0
}
