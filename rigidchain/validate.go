// Package rigidchain - input validation for the chain warper.
//
// This file contains the fail-fast checks run once at the Transform entry:
//  1. Options sanity (threshold sign, known policy).
//  2. Matrix presence, dimensionality and cardinality contracts.
//  3. Finiteness of every coordinate.
//  4. Assignment-vector range (every query point must own a skeleton link).
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - One O(Ns + Nq) pass; no allocations.
package rigidchain

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// spaceDims is the only supported point dimensionality: link rotation axes
// are built from a 3D cross product.
const spaceDims = 3

// validateAll verifies options + matrices + assignment vector.
// It returns (ns, nq), skeleton length and query count, on success.
//
// Contract:
//   - x, y, xi non-nil, all with exactly spaceDims columns.
//   - rows(x) == rows(y) ≥ 2.
//   - len(idx) == rows(xi); every idx[k] ∈ [0, rows(x)).
//   - every coordinate finite.
//   - opts.Epsilon ≥ 0 and opts.OnDegenerate a known policy.
//
// Complexity: O(Ns + Nq) time, O(1) extra space.
func validateAll(x, y, xi *mat.Dense, idx []int, opts Options) (ns, nq int, err error) {
	// Stage 1: options sanity.
	if err = validateOptions(opts); err != nil {
		return 0, 0, err
	}

	// Stage 2: presence.
	if x == nil || y == nil || xi == nil {
		return 0, 0, ErrNilInput
	}

	// Stage 3: dimensionality. Column counts must agree before the 3D
	// restriction applies, so mixed inputs report the mismatch, not the
	// unsupported dimension.
	rx, cx := x.Dims()
	ry, cy := y.Dims()
	ri, ci := xi.Dims()
	if cx != cy || cx != ci {
		return 0, 0, ErrDimensionMismatch
	}
	if cx != spaceDims {
		return 0, 0, ErrUnsupportedDimension
	}

	// Stage 4: cardinalities.
	if rx != ry {
		return 0, 0, ErrCardinalityMismatch
	}
	if rx < 2 {
		return 0, 0, ErrSkeletonTooShort
	}
	if len(idx) != ri {
		return 0, 0, ErrCardinalityMismatch
	}

	// Stage 5: finiteness. NaN or ±Inf coordinates would poison every
	// later stage.
	if !finiteAll(x) || !finiteAll(y) || !finiteAll(xi) {
		return 0, 0, ErrNonFinitePoint
	}

	// Stage 6: assignment range. An out-of-range value would never be
	// finalized by any link.
	for k := 0; k < len(idx); k++ {
		if idx[k] < 0 || idx[k] >= rx {
			return 0, 0, ErrAssignmentRange
		}
	}

	return rx, ri, nil
}

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// A negative or NaN threshold would invert or wreck every degeneracy
	// test ⇒ reject.
	if opts.Epsilon < 0 || math.IsNaN(opts.Epsilon) {
		return ErrBadOption
	}
	switch opts.OnDegenerate {
	case DegenerateIdentity, DegenerateError:
		return nil
	default:
		return ErrBadOption
	}
}

// finiteAll reports whether every entry of m is a finite number.
//
// Complexity: O(rows·cols).
func finiteAll(m *mat.Dense) bool {
	r, c := m.Dims()

	var v float64 // current entry under inspection
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}
