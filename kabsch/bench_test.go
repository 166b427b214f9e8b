package kabsch_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/unbend/kabsch"
)

// benchmarkAlign runs Align on an n-point synthetic correspondence (points
// on a low-frequency space curve rotated a third of a turn about z).
func benchmarkAlign(b *testing.B, n int) {
	p := mat.NewDense(n, 3, nil)
	q := mat.NewDense(n, 3, nil)
	s, c := math.Sincos(2 * math.Pi / 3)
	for i := 0; i < n; i++ {
		u := float64(i) / float64(n)
		x, y, z := math.Cos(3*u), math.Sin(2*u), u
		p.SetRow(i, []float64{x, y, z})
		q.SetRow(i, []float64{c*x - s*y, s*x + c*y, z + 0.5})
	}

	b.ResetTimer() // ignore fixture construction
	for i := 0; i < b.N; i++ {
		if _, _, err := kabsch.Align(p, q); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_Pair measures the minimal two-point fit used by chained
// warps.
func BenchmarkAlign_Pair(b *testing.B) {
	benchmarkAlign(b, 2)
}

// BenchmarkAlign_Small measures a typical landmark-sized correspondence.
func BenchmarkAlign_Small(b *testing.B) {
	benchmarkAlign(b, 16)
}

// BenchmarkAlign_Large measures a dense point-cloud correspondence.
func BenchmarkAlign_Large(b *testing.B) {
	benchmarkAlign(b, 4096)
}

// BenchmarkNew_MomentsOnly measures the deferred construction path alone,
// the cost chained warps pay per link.
func BenchmarkNew_MomentsOnly(b *testing.B) {
	p := mat.NewDense(2, 3, []float64{0, 0, 0, 1, 0, 0})
	q := mat.NewDense(2, 3, []float64{0, 0, 0, 0, 1, 0})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := kabsch.New(p, q)
		if f.Var() < 0 {
			b.Fatal("variance cannot be negative")
		}
	}
}
