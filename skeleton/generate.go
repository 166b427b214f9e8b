// Package skeleton - synthetic centerline generators.
//
// Fixtures for tests, examples and benchmarks: straight lines, planar
// circular arcs and helices. Generators panic when asked for fewer than two
// points - a fixture that cannot exist is a programmer error, not a data
// condition.
package skeleton

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Line returns n points evenly spaced from from to to, endpoints included.
func Line(n int, from, to r3.Vec) *mat.Dense {
	mustPoints(n)
	step := r3.Scale(1/float64(n-1), r3.Sub(to, from))

	x := mat.NewDense(n, dims, nil)
	for i := 0; i < n; i++ {
		p := r3.Add(from, r3.Scale(float64(i), step))
		x.SetRow(i, []float64{p.X, p.Y, p.Z})
	}
	return x
}

// Arc returns n points on a planar circular arc of the given radius. The
// arc starts at the origin heading along +x, bends towards +y and sweeps
// sweep radians in total.
func Arc(n int, radius, sweep float64) *mat.Dense {
	mustPoints(n)

	x := mat.NewDense(n, dims, nil)
	for i := 0; i < n; i++ {
		phi := sweep * float64(i) / float64(n-1)
		x.SetRow(i, []float64{
			radius * math.Sin(phi),
			radius * (1 - math.Cos(phi)),
			0,
		})
	}
	return x
}

// Helix returns n points on a helix around the z axis with the given radius
// and pitch (axial advance per full turn), winding turns times in total.
// The first point sits at (radius, 0, 0).
func Helix(n int, radius, pitch, turns float64) *mat.Dense {
	mustPoints(n)

	x := mat.NewDense(n, dims, nil)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * turns * float64(i) / float64(n-1)
		x.SetRow(i, []float64{
			radius * math.Cos(t),
			radius * math.Sin(t),
			pitch * t / (2 * math.Pi),
		})
	}
	return x
}

func mustPoints(n int) {
	if n < 2 {
		panic("skeleton: generator needs at least two points")
	}
}
