package bvh

import "testing"

func TestOptions_MinChunkDefaultsToPartitionConstant(t *testing.T) {
	var o Options
	if got := o.minChunk(); got != MinChunk {
		t.Fatalf("expected zero-value Options.MinChunk to default to %d, got %d", MinChunk, got)
	}

	o.MinChunk = 7
	if got := o.minChunk(); got != 7 {
		t.Fatalf("expected an explicit MinChunk to be honored, got %d", got)
	}
}

func TestDefaultOptions_SetsMinChunk(t *testing.T) {
	opts := DefaultOptions()
	if opts.MinChunk != MinChunk {
		t.Fatalf("expected DefaultOptions to set MinChunk=%d, got %d", MinChunk, opts.MinChunk)
	}
}

func TestTraverse_SmallerMinChunkStillFindsEveryContact(t *testing.T) {
	bvh := buildBVH(9, allOverlap())

	opts := DefaultOptions()
	opts.MinChunk = 1
	opts.ParallelismHint = 4

	res, err := Traverse(bvh, 1, nil, opts, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 9 * 8 / 2
	if res.NumContacts != want {
		t.Fatalf("expected all %d pairs among 9 leaves, got %d", want, res.NumContacts)
	}
}
