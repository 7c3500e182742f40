// Package bvh implements the level-synchronous breadth-first traversal
// engine over an implicit bounding-volume hierarchy.
//
// # Package Organization
//
// File name prefixes group the components:
//
// ## Tree index algebra (tree_*.go)
//   - tree.go: Tree struct, IsVirtual, MemoryIndex, NodesPerLevel, RealNodesAt
//   - tree_build.go: minimal implicit-tree builder for tests/benchmarks
//
// ## Task partitioning (partition.go)
//   - partition.go: Partition, the T-way contiguous range splitter
//
// ## BVTT buffers (buffer.go)
//   - buffer.go: Cache, Pair, SeedSelf, SeedRays, grow-only resizing
//
// ## Level expansion and leaf collection (expand.go, collect.go)
//   - expand.go: per-level pruning and child sprouting
//   - collect.go: leaf-level overlap/ray_hit test and canonicalization
//
// ## Dispatch and driving (dispatch.go, driver.go)
//   - dispatch.go: parallel fan-out over a partition plus sequential compaction
//   - driver.go: Traverse, TraverseRays
//
// ## Supporting types (bv.go, options.go, result.go, errors.go)
//   - bv.go: BoundingVolume capability interface and the Nodes/Leaves collaborators
//   - options.go: Options, DefaultOptions
//   - result.go: TraversalResult, AsCache
//   - errors.go: precondition and invariant errors
package bvh
