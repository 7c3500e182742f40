package bvh

// SliceNodes, SliceLeaves and SliceRays are the minimal concrete
// Nodes/Leaves/Rays backing used by tests and cmd/bvhbench: flat slices
// indexed the way the interfaces require, with no storage tricks of their
// own.
type SliceNodes []BoundingVolume

// Node implements Nodes.
func (s SliceNodes) Node(memoryIndex int) BoundingVolume { return s[memoryIndex] }

type SliceLeaves []BoundingVolume

// Leaf implements Leaves.
func (s SliceLeaves) Leaf(userIndex int) BoundingVolume { return s[userIndex] }

// Len implements Leaves.
func (s SliceLeaves) Len() int { return len(s) }

// SliceRays is a Rays implementation over parallel origin/direction
// slices. Mismatched lengths fail fast in NewSliceRays, before any
// traversal work runs.
type SliceRays struct {
	Origins    [][3]float64
	Directions [][3]float64
}

// NewSliceRays validates that origins and directions have matching
// counts and returns a Rays ready to pass to TraverseRays.
func NewSliceRays(origins, directions [][3]float64) (*SliceRays, error) {
	if len(origins) != len(directions) {
		return nil, invalidRayShapeError("origins and directions must have the same length")
	}
	return &SliceRays{Origins: origins, Directions: directions}, nil
}

// Origin implements Rays.
func (s *SliceRays) Origin(ray int) [3]float64 { return s.Origins[ray] }

// Direction implements Rays.
func (s *SliceRays) Direction(ray int) [3]float64 { return s.Directions[ray] }

// Len implements Rays.
func (s *SliceRays) Len() int { return len(s.Origins) }
