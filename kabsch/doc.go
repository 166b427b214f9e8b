// Package kabsch estimates best-fit rigid transformations (rotation +
// translation, no scaling) between corresponding point sets.
//
// The estimate is the classical Kabsch solution: center both sets, take the
// SVD of the cross-covariance, correct reflections so that det(R) == +1,
// and recover the translation from the centroids, t = μq − R·μp. It
// minimizes Σ‖q_i − (R·p_i + t)‖² over all proper rotations.
//
// Two entry points:
//
//   - Align — one call with an automatic degeneracy check: near-zero
//     variance of p yields DegenerateInputError, a non-converging SVD
//     yields ErrFactorizationFailed.
//   - New / Transform — a two-phase Fit. Construction accumulates centroids
//     and variance only; Transform runs the SVD. Inspect Var between the
//     two to apply a custom degeneracy threshold, or use Centroids alone
//     when only the translation center of a correspondence is needed.
//
// Point sets are n×d matrices with one point per row, any n ≥ 1 and d ≥ 2.
// Reflections are never returned.
package kabsch
