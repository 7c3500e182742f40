package cmd

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/perf-analysis/bvhtraverse/internal/bvh"
	"github.com/perf-analysis/bvhtraverse/pkg/bvgeom"
	"github.com/perf-analysis/bvhtraverse/pkg/parallel"
	"github.com/perf-analysis/bvhtraverse/pkg/utils"
)

var (
	numLeaves   int
	numRays     int
	spacing     float64
	radius      float64
	seed        int64
	parallelism int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a self- and (optionally) ray-traversal benchmark",
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&numLeaves, "leaves", 1000, "Number of synthetic sphere leaves")
	runCmd.Flags().IntVar(&numRays, "rays", 0, "Number of synthetic rays (0 skips ray traversal)")
	runCmd.Flags().Float64Var(&spacing, "spacing", 1.0, "Average spacing between sphere centers")
	runCmd.Flags().Float64Var(&radius, "radius", 0.6, "Sphere radius (held constant across leaves)")
	runCmd.Flags().Int64Var(&seed, "seed", 1, "Random seed for leaf placement")
	runCmd.Flags().IntVar(&parallelism, "parallelism", 0, "Override bvh.parallelism_hint from config (0 keeps config value)")
}

func runBench(cmd *cobra.Command, args []string) error {
	log := GetLogger()
	conf := GetConfig()

	timer := utils.NewTimer("bvhbench", utils.WithLogger(log))

	buildPhase := timer.Start("build")
	leaves := randomSpheres(numLeaves, spacing, radius, seed)
	tree, nodes, leafVolumes, order := buildTree(leaves)
	buildPhase.Stop()

	opts := bvh.DefaultOptions()
	opts.BlockSize = conf.BVH.BlockSize
	opts.ParallelismHint = conf.BVH.ParallelismHint
	opts.MinChunk = conf.BVH.MinChunk
	if parallelism > 0 {
		opts.ParallelismHint = parallelism
	}

	b := &bvh.BVH{Tree: tree, Nodes: nodes, Leaves: leafVolumes, Order: order}

	selfPhase := timer.Start("self_traverse")
	selfResult, err := bvh.Traverse(b, 0, nil, opts, log)
	selfPhase.Stop()
	if err != nil {
		return fmt.Errorf("self traversal failed: %w", err)
	}

	log.Info("leaves=%d levels=%d real_nodes=%d virtual_leaves=%d",
		numLeaves, tree.Levels, tree.RealNodes, tree.VirtualLeaves)
	log.Info("self traversal: start_level=%d num_checks=%d num_contacts=%d",
		selfResult.StartLevel, selfResult.NumChecks, selfResult.NumContacts)

	if numRays > 0 {
		rays := randomRays(numRays, spacing, float64(numLeaves), seed+1)
		sliceRays, err := bvh.NewSliceRays(rays.origins, rays.directions)
		if err != nil {
			return fmt.Errorf("building rays: %w", err)
		}

		rayPhase := timer.Start("ray_traverse")
		rayResult, err := bvh.TraverseRays(b, sliceRays, 0, nil, opts, log)
		rayPhase.Stop()
		if err != nil {
			return fmt.Errorf("ray traversal failed: %w", err)
		}

		log.Info("ray traversal: rays=%d num_checks=%d num_contacts=%d",
			numRays, rayResult.NumChecks, rayResult.NumContacts)
	}

	timer.PrintSummary()
	return nil
}

// randomSpheres places numLeaves spheres of fixed radius along a jittered
// line with the given average spacing, deterministic for a given seed.
// Jitter is drawn sequentially from the seeded RNG (so placement doesn't
// depend on goroutine scheduling order), then the per-leaf sphere
// construction itself — independent across indices — fans out over
// pkg/parallel.ForEach.
func randomSpheres(n int, spacing, radius float64, seed int64) []bvgeom.Sphere {
	rng := rand.New(rand.NewSource(seed))
	jitter := make([]float64, n)
	for i := range jitter {
		jitter[i] = rng.Float64()
	}

	spheres := make([]bvgeom.Sphere, n)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	parallel.ForEach(context.Background(), indices, parallel.DefaultPoolConfig(), func(ctx context.Context, i int) error {
		z := float64(i)*spacing + jitter[i]*spacing*0.25
		spheres[i] = bvgeom.Sphere{Center: [3]float64{0, 0, z}, Radius: radius}
		return nil
	})

	return spheres
}

type rayBatch struct {
	origins    [][3]float64
	directions [][3]float64
}

// randomRays fires rays from random points near the leaf field toward a
// random point on the z-axis, so a realistic fraction hit something. Draws
// are taken from the seeded RNG sequentially per ray (to stay
// deterministic), then each ray's origin/direction is written in parallel.
func randomRays(n int, spacing, span float64, seed int64) rayBatch {
	rng := rand.New(rand.NewSource(seed))
	type draw struct {
		jx, jy, jz float64
	}
	draws := make([]draw, n)
	for i := range draws {
		draws[i] = draw{rng.Float64(), rng.Float64(), rng.Float64()}
	}

	batch := rayBatch{
		origins:    make([][3]float64, n),
		directions: make([][3]float64, n),
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	parallel.ForEach(context.Background(), indices, parallel.DefaultPoolConfig(), func(ctx context.Context, i int) error {
		d := draws[i]
		origin := [3]float64{(d.jx - 0.5) * spacing * 4, (d.jy - 0.5) * spacing * 4, -spacing}
		target := [3]float64{0, 0, d.jz * span}
		dir := [3]float64{target[0] - origin[0], target[1] - origin[1], target[2] - origin[2]}
		batch.origins[i] = origin
		batch.directions[i] = dir
		return nil
	})

	return batch
}

// buildTree assembles an implicit-tree shape and bottom-up AABB node
// volumes over leaves, since tree/geometry construction otherwise lives
// outside internal/bvh's scope.
func buildTree(leaves []bvgeom.Sphere) (*bvh.Tree, bvh.Nodes, bvh.Leaves, []int) {
	tree := bvh.NewTree(len(leaves), 1)
	order := bvh.IdentityOrder(len(leaves))

	vols := make([]bvgeom.AABB, tree.RealNodes)
	leafOffset := tree.LeafOffset()
	rl := tree.RealNodesAt(tree.Levels)
	for slot := 0; slot < rl; slot++ {
		vols[leafOffset+slot] = leaves[order[slot]].Bounds()
	}

	for level := tree.Levels - 1; level >= 1; level-- {
		m := bvh.NodesPerLevel(level)
		levelRl := tree.RealNodesAt(level)
		for k := m; k < m+levelRl; k++ {
			left, right := 2*k, 2*k+1
			lv := vols[tree.MemoryIndex(left)]
			if tree.IsVirtual(right) {
				vols[tree.MemoryIndex(k)] = lv
			} else {
				vols[tree.MemoryIndex(k)] = lv.Union(vols[tree.MemoryIndex(right)])
			}
		}
	}

	nodes := make(bvh.SliceNodes, len(vols))
	for i, v := range vols {
		nodes[i] = v
	}

	leafVolumes := make(bvh.SliceLeaves, len(leaves))
	for i, s := range leaves {
		leafVolumes[i] = s
	}

	return tree, nodes, leafVolumes, order
}
