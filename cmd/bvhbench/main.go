// Command bvhbench drives internal/bvh's traversal core against
// synthetically generated spheres, for benchmarking and for exercising
// the engine outside of its test suite.
package main

import "github.com/perf-analysis/bvhtraverse/cmd/bvhbench/cmd"

func main() {
	cmd.Execute()
}
