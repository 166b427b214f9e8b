package kabsch

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Fit accumulates the first-order moments of two corresponding point sets
// p and q, deferring the expensive part of the estimation.
//
// Construction computes the centroids of both sets and the population
// variance of p; the SVD that yields the rotation runs only when Transform
// is called. Callers that need just the pair centroids (chained warps reuse
// them as a translation center) never pay for the factorization.
type Fit struct {
	p, q     *mat.Dense
	n, d     int
	muP, muQ *mat.VecDense
	varP     float64
}

// New creates a Fit for the correspondence p→q.
//
// p and q are n×d matrices, row i of p corresponding to row i of q.
// New panics if the dimensions of p and q differ: a mismatched
// correspondence is a programmer error, not a data condition.
func New(p, q *mat.Dense) *Fit {
	n, d := p.Dims()
	nq, dq := q.Dims()
	if n != nq || d != dq {
		panic("kabsch: dimensions of p and q do not match")
	}

	muP := mat.NewVecDense(d, nil)
	muQ := mat.NewVecDense(d, nil)

	colP := make([]float64, n)
	colQ := make([]float64, n)

	var varP float64
	for j := 0; j < d; j++ {
		mat.Col(colP, j, p)
		mat.Col(colQ, j, q)

		meanP, varPj := stat.PopMeanVariance(colP, nil)

		muP.SetVec(j, meanP)
		muQ.SetVec(j, stat.Mean(colQ, nil))

		varP += varPj
	}

	return &Fit{p: p, q: q, n: n, d: d, muP: muP, muQ: muQ, varP: varP}
}

// Dims returns the number of correspondences n and the spatial dimension d.
func (f *Fit) Dims() (n, d int) { return f.n, f.d }

// Var returns the population variance of point set p, summed over
// dimensions. Variance at or near zero means the points of p coincide and
// the rotation is undetermined.
func (f *Fit) Var() float64 { return f.varP }

// Centroids returns the centroids of p and q. The vectors are owned by the
// Fit; callers must not modify them.
func (f *Fit) Centroids() (muP, muQ *mat.VecDense) { return f.muP, f.muQ }

// Transform computes the rigid transformation parameters.
//
// It returns the d×d rotation matrix r and the translation vector t
// minimizing Σ‖q_i − (r·p_i + t)‖² over the correspondence, with
// det(r) == +1. ok is false if the SVD fails to converge.
func (f *Fit) Transform() (r *mat.Dense, t *mat.VecDense, ok bool) {
	// Center both point sets on their centroids.
	pc := mat.NewDense(f.n, f.d, nil)
	qc := mat.NewDense(f.n, f.d, nil)
	for i := 0; i < f.n; i++ {
		for j := 0; j < f.d; j++ {
			pc.Set(i, j, f.p.At(i, j)-f.muP.AtVec(j))
			qc.Set(i, j, f.q.At(i, j)-f.muQ.AtVec(j))
		}
	}

	// Cross-covariance H = Qcᵀ·Pc / n.
	cov := mat.NewDense(f.d, f.d, nil)
	cov.Mul(qc.T(), pc)
	cov.Scale(1/float64(f.n), cov)

	var svd mat.SVD
	if !svd.Factorize(cov, mat.SVDFull) {
		return nil, nil, false
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Reflection guard: flip the weakest singular direction when
	// det(U)·det(V) < 0 so that r stays a proper rotation.
	s := mat.NewDiagDense(f.d, nil)
	for i := 0; i < f.d; i++ {
		s.SetDiag(i, 1)
	}
	if mat.Det(&u)*mat.Det(&v) < 0 {
		s.SetDiag(f.d-1, -1)
	}

	r = mat.NewDense(f.d, f.d, nil)
	r.Product(&u, s, v.T())

	// t = μq − r·μp.
	rMuP := mat.NewVecDense(f.d, nil)
	rMuP.MulVec(r, f.muP)

	t = mat.NewVecDense(f.d, nil)
	t.CopyVec(f.muQ)
	t.AddScaledVec(t, -1, rMuP)

	return r, t, true
}

// Align finds the best-fit rigid transformation mapping p onto q in one
// call.
//
// p and q are n×d matrices with row-wise correspondence; Align panics if
// their dimensions differ. It returns DegenerateInputError when the
// variance of p is at or below machine epsilon (coincident points leave the
// rotation undetermined) and ErrFactorizationFailed when the SVD does not
// converge. For a custom degeneracy threshold build a Fit with New, inspect
// Var, and call Transform directly.
func Align(p, q *mat.Dense) (*mat.Dense, *mat.VecDense, error) {
	f := New(p, q)

	if f.varP <= math.Nextafter(1.0, 2.0)-1.0 {
		return nil, nil, DegenerateInputError(f.varP)
	}

	r, t, ok := f.Transform()
	if !ok {
		return nil, nil, ErrFactorizationFailed
	}

	return r, t, nil
}
