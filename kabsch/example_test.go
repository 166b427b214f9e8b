package kabsch_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/unbend/kabsch"
)

// ExampleAlign registers three scanned corner points onto their reference
// pose (a quarter-turn about z plus a shift along x) and reports the
// registration quality.
func ExampleAlign() {
	scan := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
	})
	ref := mat.NewDense(3, 3, []float64{
		2, 0, 0,
		2, 1, 0,
		1, 0, 0,
	})

	r, t, err := kabsch.Align(scan, ref)
	if err != nil {
		fmt.Println("align:", err)
		return
	}

	// Largest distance between a mapped scan point and its reference.
	var maxResid float64
	for i := 0; i < 3; i++ {
		var d2 float64
		for j := 0; j < 3; j++ {
			v := t.AtVec(j)
			for k := 0; k < 3; k++ {
				v += r.At(j, k) * scan.At(i, k)
			}
			diff := v - ref.At(i, j)
			d2 += diff * diff
		}
		if d := math.Sqrt(d2); d > maxResid {
			maxResid = d
		}
	}

	fmt.Printf("det(R) = %.1f\n", mat.Det(r))
	fmt.Printf("max residual = %.1f\n", maxResid)
	// Output:
	// det(R) = 1.0
	// max residual = 0.0
}

// ExampleFit separates the cheap moment accumulation from the SVD: inspect
// the spread first, run the factorization only when it is safe.
func ExampleFit() {
	p := mat.NewDense(2, 3, []float64{
		0, 0, 0,
		2, 0, 0,
	})
	q := mat.NewDense(2, 3, []float64{
		0, 1, 0,
		0, 3, 0,
	})

	f := kabsch.New(p, q)
	if f.Var() <= 1e-12 {
		fmt.Println("degenerate correspondence")
		return
	}

	r, t, ok := f.Transform()
	if !ok {
		fmt.Println("factorization failed")
		return
	}

	// A rigid map preserves the chord length between the two points.
	a := mappedPoint(r, t, 0, 0, 0)
	b := mappedPoint(r, t, 2, 0, 0)
	chord := math.Sqrt((a[0]-b[0])*(a[0]-b[0]) + (a[1]-b[1])*(a[1]-b[1]) + (a[2]-b[2])*(a[2]-b[2]))

	fmt.Printf("chord after fit = %.1f\n", chord)
	// Output:
	// chord after fit = 2.0
}

// mappedPoint applies r·p + t to a single 3D point.
func mappedPoint(r *mat.Dense, t *mat.VecDense, x, y, z float64) [3]float64 {
	in := [3]float64{x, y, z}
	var out [3]float64
	for j := 0; j < 3; j++ {
		v := t.AtVec(j)
		for k := 0; k < 3; k++ {
			v += r.At(j, k) * in[k]
		}
		out[j] = v
	}
	return out
}
