// Package catalog holds the static coordinate dataset quizzes are drawn from
// and the keyword matcher that selects a quiz target for a free-text
// condition.
//
// The dataset is TOML, bundled into the binary with go:embed and overridable
// via configuration. Each entry carries the answer label, coordinate, lowercase
// tags for matching, a preferred zoom, and whether it lies inside the map
// provider's home-region coverage.
//
// Matching is deliberately simple: the condition is tokenized into keywords and
// entries whose tags intersect the keyword set become candidates. Both the
// comparison (substring vs exact) and the selection among candidates (random vs
// first) are configuration choices, not hardcoded behavior. When nothing
// matches, the whole catalog is the candidate pool, so selection only fails on
// an empty catalog — a fatal configuration error caught at startup.
package catalog
