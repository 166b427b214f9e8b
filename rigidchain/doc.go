// Package rigidchain warps point sets by chaining per-segment rigid
// transformations along an ordered skeleton.
//
// 🚀 What is a rigid chain warp?
//
//	Given a bent skeleton X, a target skeleton Y of the same length
//	(index-wise correspondence X[i] ↔ Y[i]) and query points XI assigned
//	to skeleton neighborhoods, Transform carries XI into the frame of Y:
//	  • the first two skeleton points fix the global pose (best-fit
//	    rigid alignment, no scaling)
//	  • every further link contributes one rotation+translation step,
//	    applied to all not-yet-finalized points and the remaining skeleton
//	  • a query point freezes once its neighborhood's link has been chained
//	Typical use: straightening a curved artery centerline while carrying
//	the surrounding sample points along with it.
//
// ✨ Key features:
//   - preserves distances inside a neighborhood (local rigidity)
//   - tolerates collinear skeletons that defeat spline warps (TPS, EBS)
//   - folding/overlap across neighborhoods is allowed — the warp is not a
//     diffeomorphism and does not try to be invertible
//   - configurable handling of zero-length links (identity vs. hard error)
//   - sentinel errors, fail-fast validation, inputs never mutated
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/unbend/rigidchain"
//
//	opts := rigidchain.DefaultOptions()
//	out, err := rigidchain.Transform(x, y, xi, idx, &opts)
//
// Points are rows of 3-column gonum mat.Dense matrices; idx[k] names the
// 0-based skeleton neighborhood that query point k rides. Passing a nil
// *Options means DefaultOptions.
//
// Performance:
//
//   - Time:   O(Ns·Nq + Ns²) worst case (every link revisits what is pending)
//   - Memory: O(Ns + Nq) working state; inputs are shared read-only
//
// The chain is strictly sequential: every link starts from the working
// state the previous link produced, so links cannot run in parallel.
// See example_test.go for a worked straightening.
package rigidchain
