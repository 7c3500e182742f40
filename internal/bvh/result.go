package bvh

// TraversalResult is returned by Traverse and TraverseRays. Contacts is a
// view into Cache1[0:NumContacts) — the "contacts live in cache1"
// convention — so callers must not reslice or reorder Cache1 before
// reading Contacts, and should pass this result back in as next call's
// cache to reuse the buffers.
type TraversalResult struct {
	StartLevel  int
	NumChecks   int
	NumContacts int
	Contacts    []Pair

	Cache1 []Pair
	Cache2 []Pair
	Kind   CacheKind
}

// AsCache packages a TraversalResult's buffers back into a Cache for
// reuse by a subsequent call, satisfying the cache-idempotence property:
// running a traversal with cache=nil and then with cache=prevResult.AsCache()
// must yield the same contact multiset, with buffers that only grow. The
// Kind tag travels with the buffers so the next call can reject reusing a
// self-traversal result for a ray call or vice versa.
func (r *TraversalResult) AsCache() *Cache {
	if r == nil {
		return nil
	}
	return &Cache{A: r.Cache1, B: r.Cache2, Kind: r.Kind}
}
