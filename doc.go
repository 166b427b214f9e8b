// Package unbend straightens curved centerlines — a piecewise-rigid,
// correspondence-driven warp that maps an ordered skeleton onto a target
// path and carries a cloud of query points along with it.
//
// 🚀 What is unbend?
//
//	A compact geometry library for skeleton-driven warping of 3D point sets:
//		• Rigid chain warper: per-segment rotation+translation chained along
//		  an ordered skeleton, preserving distances inside each neighborhood
//		• Best-fit rigid alignment (Kabsch, no scaling, reflection-safe)
//		• Straight-target construction, nearest-neighborhood assignment
//		• Synthetic centerlines (lines, arcs, helices) for tests & tuning
//		• Before/after rendering to PNG and interactive HTML
//
// ✨ Why choose unbend?
//
//   - Tolerates collinear skeletons that defeat spline warps (TPS, EBS)
//   - Local rigidity – distances within a neighborhood survive the warp
//   - Deterministic, allocation-bounded, single synchronous call
//   - Sentinel errors, errors.Is-friendly, no panics on user input
//
// Under the hood, everything is organized under four subpackages:
//
//	kabsch/     — best-fit rotation+translation between point correspondences
//	rigidchain/ — the chain warper itself (validate → align → iterate)
//	skeleton/   — centerline utilities: targets, assignment, generators
//	viz/        — gonum/plot PNG and go-echarts HTML overlays
//
// Quick ASCII example:
//
//	    bent skeleton          straightened
//	    C                      A───B───C
//	   /            ⇒
//	  A───B
//
//	query points near B ride B's rigid frame; points near C ride C's.
//
// Dive into examples/ for an end-to-end artery-straightening walk-through
// and DESIGN.md for the algorithmic notes.
//
//	go get github.com/katalvlaran/unbend
package unbend
