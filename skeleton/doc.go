// Package skeleton builds and measures centerlines for chain warps:
// straight targets with preserved segment lengths, nearest-neighborhood
// assignment of query points, and synthetic generators (lines, arcs,
// helices) for tests, examples and benchmarks.
//
// Point sets are rows of 3-column gonum mat.Dense matrices, matching the
// rigidchain conventions. Measurement and construction functions return
// sentinel errors on malformed input; generators panic on impossible
// fixture sizes.
package skeleton
