package rigidchain

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/unbend/kabsch"
)

// Rigid chain warp
//
// Description:
//
//	The warp maps query points from the frame of a bent skeleton X onto
//	the frame of a target skeleton Y by chaining one rigid step per
//	skeleton link. Distances inside a neighborhood survive; the warp as a
//	whole may fold. Collinear skeletons are fine - no spline system gets
//	inverted anywhere.
//
// Algorithm Outline:
//  1. Validate shapes, finiteness, assignment range (validate.go).
//  2. Initial pose: best-fit rigid alignment (kabsch) of X[0:2] onto
//     Y[0:2], applied to every query point and the whole skeleton.
//     Neighborhoods 0 and 1 are finalized.
//  3. For each link i = 2..Ns-1:
//     a. Pair-align the working segment (i-1, i) onto the target segment;
//     keep only the pair centroids (translation center). A two-point
//     fit cannot fix the twist about its chord, so its rotation is
//     discarded.
//     b. vx, vy = unit link directions in the working copy and target.
//     c. theta = arccos(vx·vy); axis = vx×vy. A zero axis (collinear
//     directions) means the identity rotation regardless of theta.
//     d. Apply p' = μy + T·(p − μx) to every pending query point and to
//     the skeleton tail from i onward.
//     e. Finalize query points assigned to neighborhood i.
//  4. Return the query positions as a fresh Nq×3 matrix.
//
// Complexity:
//
//	Time   = O(Ns·Nq + Ns²)
//	Memory = O(Ns + Nq)
//
// Errors: see errors.go; zero-length segments follow Options.OnDegenerate.

// Transform warps the query points xi from the frame of skeleton x into
// the frame of skeleton y.
//
// x and y are Ns×3 matrices holding the bent and the target skeleton, row
// i of x corresponding to row i of y; row order defines the chain. xi is
// an Nq×3 matrix of query points, and idx assigns each of them to a
// skeleton neighborhood: query point k rides the rigid frame of skeleton
// point idx[k] (0-based). A nil opts means DefaultOptions.
//
// The returned matrix is fresh with the shape of xi; inputs are never
// mutated. On error the result is nil - no partial output is produced.
//
// Contract:
//   - dimensions: x, y, xi carry exactly 3 columns.
//   - cardinality: rows(x) == rows(y) ≥ 2, len(idx) == rows(xi).
//   - range: every idx[k] ∈ [0, rows(x)).
//
// Complexity: O(Ns·Nq + Ns²) time, O(Ns + Nq) extra space.
func Transform(x, y, xi *mat.Dense, idx []int, opts *Options) (*mat.Dense, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	ns, nq, err := validateAll(x, y, xi, idx, o)
	if err != nil {
		return nil, err
	}

	st := newChainState(x, xi, idx, ns, nq)

	if err = st.alignInitial(y, o); err != nil {
		return nil, err
	}

	for i := 2; i < ns; i++ {
		if err = st.chainLink(y, i, o); err != nil {
			return nil, err
		}
	}

	return st.result(), nil
}

// chainState is the per-call state threaded through the chain: current
// skeleton positions, current query positions, and the pending set. Every
// buffer is owned by one call; nothing is shared across invocations.
type chainState struct {
	work    []r3.Vec // skeleton under the transforms applied so far
	out     []r3.Vec // query points under the transforms applied so far
	pending []bool   // query points still riding subsequent links
	idx     []int    // neighborhood assignment (shared, read-only)
}

// newChainState copies the inputs into owned working buffers. Neighborhoods
// 0 and 1 are finalized by the initial alignment, so only higher
// assignments start out pending.
func newChainState(x, xi *mat.Dense, idx []int, ns, nq int) *chainState {
	st := &chainState{
		work:    make([]r3.Vec, ns),
		out:     make([]r3.Vec, nq),
		pending: make([]bool, nq),
		idx:     idx,
	}

	for i := 0; i < ns; i++ {
		st.work[i] = rowVec(x, i)
	}
	for k := 0; k < nq; k++ {
		st.out[k] = rowVec(xi, k)
		st.pending[k] = idx[k] > 1
	}

	return st
}

// alignInitial fixes the global pose: the best-fit rigid alignment of the
// first skeleton pair onto the target's first pair, applied to every query
// point and the whole skeleton.
//
// A degenerate first pair (either skeleton) leaves no orientation frame;
// under DegenerateIdentity the stage degrades to the pure translation
// between the pair midpoints.
func (st *chainState) alignInitial(y *mat.Dense, o Options) error {
	y0, y1 := rowVec(y, 0), rowVec(y, 1)

	segX := r3.Sub(st.work[1], st.work[0])
	segY := r3.Sub(y1, y0)
	if r3.Norm2(segX) <= o.Epsilon || r3.Norm2(segY) <= o.Epsilon {
		if o.OnDegenerate == DegenerateError {
			return ErrDegenerateSegment
		}

		shift := r3.Sub(midpoint(y0, y1), midpoint(st.work[0], st.work[1]))
		for k := range st.out {
			st.out[k] = r3.Add(st.out[k], shift)
		}
		for i := range st.work {
			st.work[i] = r3.Add(st.work[i], shift)
		}

		return nil
	}

	f := kabsch.New(pairDense(st.work[0], st.work[1]), pairDense(y0, y1))
	r, t, ok := f.Transform()
	if !ok {
		return kabsch.ErrFactorizationFailed
	}

	for k := range st.out {
		st.out[k] = applyPose(r, t, st.out[k])
	}
	for i := range st.work {
		st.work[i] = applyPose(r, t, st.work[i])
	}

	return nil
}

// chainLink applies link i: the rigid step carrying the working skeleton
// segment (i-1, i) onto the target segment, moving every pending query
// point and the skeleton tail with it, then freezing neighborhood i.
func (st *chainState) chainLink(y *mat.Dense, i int, o Options) error {
	// Pair alignment of the two most recent skeleton points; only the
	// centroids survive as the translation center.
	f := kabsch.New(
		pairDense(st.work[i-1], st.work[i]),
		pairDense(rowVec(y, i-1), rowVec(y, i)),
	)
	muP, muQ := f.Centroids()
	center, target := vecOf(muP), vecOf(muQ)

	segX := r3.Sub(st.work[i], st.work[i-1])
	segY := r3.Sub(rowVec(y, i), rowVec(y, i-1))

	rot, err := linkRotation(segX, segY, o)
	if err != nil {
		return err
	}

	// p' = μy + T·(p − μx): rotate about the pair centroid, then carry it
	// onto the target centroid.
	for k := range st.out {
		if st.pending[k] {
			st.out[k] = r3.Add(target, rot.Rotate(r3.Sub(st.out[k], center)))
		}
	}
	for j := i; j < len(st.work); j++ {
		st.work[j] = r3.Add(target, rot.Rotate(r3.Sub(st.work[j], center)))
	}

	// Freeze neighborhood i.
	for k := range st.idx {
		if st.idx[k] == i {
			st.pending[k] = false
		}
	}

	return nil
}

// linkRotation builds the axis-angle rotation carrying direction segX onto
// segY. Zero-length segments follow the configured policy; a zero axis
// between healthy segments (collinear directions) is always the identity,
// never an error.
func linkRotation(segX, segY r3.Vec, o Options) (r3.Rotation, error) {
	identity := r3.NewRotation(0, r3.Vec{})

	if r3.Norm2(segX) <= o.Epsilon || r3.Norm2(segY) <= o.Epsilon {
		if o.OnDegenerate == DegenerateError {
			return identity, ErrDegenerateSegment
		}
		return identity, nil
	}

	vx := r3.Unit(segX)
	vy := r3.Unit(segY)

	axis := r3.Cross(vx, vy)
	if r3.Norm2(axis) <= o.Epsilon {
		return identity, nil
	}

	// Clamp before Acos: rounding may push the dot product past ±1.
	cos := r3.Dot(vx, vy)
	theta := math.Acos(math.Max(-1, math.Min(1, cos)))

	return r3.NewRotation(theta, axis), nil
}

// result packs the final query positions into a fresh matrix.
func (st *chainState) result() *mat.Dense {
	out := mat.NewDense(len(st.out), spaceDims, nil)
	for k, p := range st.out {
		out.SetRow(k, []float64{p.X, p.Y, p.Z})
	}

	return out
}

// rowVec reads row i of m as an r3 vector.
func rowVec(m *mat.Dense, i int) r3.Vec {
	return r3.Vec{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2)}
}

// vecOf converts a 3-element dense vector to its r3 form.
func vecOf(v *mat.VecDense) r3.Vec {
	return r3.Vec{X: v.AtVec(0), Y: v.AtVec(1), Z: v.AtVec(2)}
}

// midpoint returns the point halfway between a and b.
func midpoint(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}

// pairDense packs two points into a 2×3 matrix for the alignment
// primitive.
func pairDense(a, b r3.Vec) *mat.Dense {
	return mat.NewDense(2, spaceDims, []float64{
		a.X, a.Y, a.Z,
		b.X, b.Y, b.Z,
	})
}

// applyPose maps p through r·p + t.
func applyPose(r *mat.Dense, t *mat.VecDense, p r3.Vec) r3.Vec {
	return r3.Vec{
		X: r.At(0, 0)*p.X + r.At(0, 1)*p.Y + r.At(0, 2)*p.Z + t.AtVec(0),
		Y: r.At(1, 0)*p.X + r.At(1, 1)*p.Y + r.At(1, 2)*p.Z + t.AtVec(1),
		Z: r.At(2, 0)*p.X + r.At(2, 1)*p.Y + r.At(2, 2)*p.Z + t.AtVec(2),
	}
}
