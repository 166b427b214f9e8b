// Package rigidchain_test - benchmarks over synthetic helix centerlines.
package rigidchain_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/unbend/rigidchain"
	"github.com/katalvlaran/unbend/skeleton"
)

// benchSink keeps the compiler from discarding benchmark results.
var benchSink *mat.Dense

// benchmarkTransform straightens an ns-point helix along +x and warps nq
// probes scattered around it. Fixture construction stays outside the timed
// region.
func benchmarkTransform(b *testing.B, ns, nq int) {
	b.Helper()

	bent := skeleton.Helix(ns, 1.0, 0.4, 2.5)
	straight, err := skeleton.StraightTarget(bent, r3.Vec{X: 1})
	if err != nil {
		b.Fatal(err)
	}

	xi := mat.NewDense(nq, 3, nil)
	for k := 0; k < nq; k++ {
		i := k % ns
		off := 0.01 * float64(k%7)
		xi.Set(k, 0, bent.At(i, 0)+off)
		xi.Set(k, 1, bent.At(i, 1)-off)
		xi.Set(k, 2, bent.At(i, 2)+0.5*off)
	}
	idx, err := skeleton.AssignNearest(xi, bent)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		out, err := rigidchain.Transform(bent, straight, xi, idx, nil)
		if err != nil {
			b.Fatal(err)
		}
		benchSink = out
	}
}

func BenchmarkTransform_ShortChain(b *testing.B) { benchmarkTransform(b, 16, 128) }
func BenchmarkTransform_LongChain(b *testing.B)  { benchmarkTransform(b, 128, 1024) }
func BenchmarkTransform_ManyProbes(b *testing.B) { benchmarkTransform(b, 32, 8192) }
