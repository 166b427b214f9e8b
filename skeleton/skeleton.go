// Package skeleton - centerline construction and measurement.
//
// Description:
//   A centerline is an ordered polyline of 3-D points, one row per point.
//   This file derives straight targets from bent centerlines, assigns query
//   points to their nearest skeleton neighborhood, and measures segment and
//   arc lengths. All functions validate their input and report malformed
//   point sets through the sentinel errors below.
package skeleton

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// dims is the only supported point dimensionality.
const dims = 3

var (
	// ErrNilInput is returned when a required matrix is nil.
	ErrNilInput = errors.New("skeleton: nil input matrix")
	// ErrBadDimension is returned when a point set does not carry exactly three columns.
	ErrBadDimension = errors.New("skeleton: points must be 3-dimensional")
	// ErrTooFewPoints is returned when a centerline has fewer than two points.
	ErrTooFewPoints = errors.New("skeleton: centerline needs at least two points")
	// ErrZeroDirection is returned when a direction vector has zero length.
	ErrZeroDirection = errors.New("skeleton: zero-length direction")
	// ErrEmptyQuery is returned when there are no query points to assign.
	ErrEmptyQuery = errors.New("skeleton: empty query set")
)

// StraightTarget returns the straightened counterpart of the centerline x:
// it starts at x's first point and advances along the unit direction of dir
// by each original segment length in turn. Segment lengths are preserved
// exactly, which is what lets a chain warp land every skeleton point on its
// target without drift.
//
// Contract:
//   - x must be a non-nil Ns×3 matrix with Ns ≥ 2 and finite entries.
//   - dir must have non-zero length; only its direction is used.
//
// Complexity: O(Ns) time, O(Ns) space.
func StraightTarget(x *mat.Dense, dir r3.Vec) (*mat.Dense, error) {
	segs, err := SegmentLengths(x)
	if err != nil {
		return nil, err
	}
	if r3.Norm2(dir) == 0 {
		return nil, ErrZeroDirection
	}
	u := r3.Unit(dir)

	n, _ := x.Dims()
	y := mat.NewDense(n, dims, nil)
	start := rowVec(x, 0)
	y.SetRow(0, []float64{start.X, start.Y, start.Z})

	travel := 0.0
	for i := 1; i < n; i++ {
		travel += segs[i-1]
		p := r3.Add(start, r3.Scale(travel, u))
		y.SetRow(i, []float64{p.X, p.Y, p.Z})
	}
	return y, nil
}

// AssignNearest maps every query point to the index of its nearest skeleton
// point. Ties resolve to the lowest index. The search is brute force,
// O(Nq·Ns); centerlines are short enough that an index structure would not
// pay for itself.
func AssignNearest(xi, x *mat.Dense) ([]int, error) {
	if xi == nil || x == nil {
		return nil, ErrNilInput
	}
	nq, dq := xi.Dims()
	ns, ds := x.Dims()
	if nq == 0 {
		return nil, ErrEmptyQuery
	}
	if dq != dims || ds != dims {
		return nil, ErrBadDimension
	}

	idx := make([]int, nq)
	for k := 0; k < nq; k++ {
		p := rowVec(xi, k)
		best, bestDist := 0, math.Inf(1)
		for i := 0; i < ns; i++ {
			if d := r3.Norm2(r3.Sub(p, rowVec(x, i))); d < bestDist {
				best, bestDist = i, d
			}
		}
		idx[k] = best
	}
	return idx, nil
}

// SegmentLengths returns the Ns-1 distances between consecutive centerline
// points. Zero-length segments are reported as zeros, not errors; the chain
// warp decides how to handle them.
func SegmentLengths(x *mat.Dense) ([]float64, error) {
	if x == nil {
		return nil, ErrNilInput
	}
	n, d := x.Dims()
	if d != dims {
		return nil, ErrBadDimension
	}
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	segs := make([]float64, n-1)
	for i := 1; i < n; i++ {
		segs[i-1] = r3.Norm(r3.Sub(rowVec(x, i), rowVec(x, i-1)))
	}
	return segs, nil
}

// ArcLength returns the total polyline length of the centerline.
func ArcLength(x *mat.Dense) (float64, error) {
	segs, err := SegmentLengths(x)
	if err != nil {
		return 0, err
	}
	return floats.Sum(segs), nil
}

// rowVec reads row i of m as an r3 vector.
func rowVec(m *mat.Dense, i int) r3.Vec {
	return r3.Vec{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2)}
}
