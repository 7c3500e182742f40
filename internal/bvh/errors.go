package bvh

import (
	"fmt"

	apperrors "github.com/perf-analysis/bvhtraverse/pkg/errors"
)

// invalidLevelError reports a start_level outside [built_level, L].
func invalidLevelError(startLevel, builtLevel, levels int) error {
	return apperrors.Wrap(apperrors.CodeInvalidLevel,
		fmt.Sprintf("start_level %d out of range [%d, %d]", startLevel, builtLevel, levels),
		nil,
	)
}

// invalidRayShapeError reports mismatched ray origin/direction arrays.
func invalidRayShapeError(reason string) error {
	return apperrors.Wrap(apperrors.CodeInvalidRayShape, reason, nil)
}

// incompatibleCacheError reports a cache whose buffers were last seeded for
// the other query shape: Traverse and TraverseRays both accept a *Cache,
// and Cache.A/Cache.B are concretely typed []Pair either way, so nothing
// about the buffers themselves flags a self-traversal cache handed to
// TraverseRays (or vice versa) — the (u,v) node pairs one call wrote would
// be silently reinterpreted as (node,ray) pairs by the other. Cache.Kind
// exists to catch exactly this before any traversal work runs; see
// Traverse's and TraverseRays' Kind checks in driver.go.
func incompatibleCacheError(reason string) error {
	return apperrors.Wrap(apperrors.CodeIncompatibleCache, reason, nil)
}

// invariantViolation panics with a diagnostic naming the level and item
// index. Invariant failures are not recoverable: the pre-sizing rules
// make them impossible unless the buffers themselves are corrupt.
func invariantViolation(level, item int, reason string) {
	panic(apperrors.Wrap(apperrors.CodeInvariant,
		fmt.Sprintf("level=%d item=%d: %s", level, item, reason),
		nil,
	))
}
