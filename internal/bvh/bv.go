package bvh

// BoundingVolume is the sole polymorphism point of the traversal core. The
// engine never looks inside a bounding volume; it only asks whether two
// overlap or whether a ray hits one. Concrete geometry (sphere, AABB, ...)
// lives outside this package, e.g. in pkg/bvgeom.
type BoundingVolume interface {
	// Overlap reports whether this volume and other intersect.
	Overlap(other BoundingVolume) bool
	// RayHit reports whether the ray starting at origin heading in
	// direction (both length-3) intersects this volume as a forward
	// half-line.
	RayHit(origin, direction [3]float64) bool
}

// Nodes supplies bounding volumes for internal and leaf-level nodes,
// indexed by memory index (see Tree.MemoryIndex). Implementations must
// cover every memory index from built_level down to the leaf level.
type Nodes interface {
	Node(memoryIndex int) BoundingVolume
}

// Leaves supplies the user-facing leaf bounding volumes, indexed by the
// original input order (not physical leaf slot).
type Leaves interface {
	Leaf(userIndex int) BoundingVolume
	Len() int
}

// Rays supplies ray origins and directions by ray index.
type Rays interface {
	Origin(ray int) [3]float64
	Direction(ray int) [3]float64
	Len() int
}
