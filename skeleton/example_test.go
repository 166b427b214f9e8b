package skeleton_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/unbend/skeleton"
)

// ExampleStraightTarget straightens a quarter-circle centerline along +x
// and shows that the polyline length survives the construction.
func ExampleStraightTarget() {
	bent := skeleton.Arc(4, 1.0, math.Pi/2)

	straight, err := skeleton.StraightTarget(bent, r3.Vec{X: 1})
	if err != nil {
		fmt.Println("straighten failed:", err)
		return
	}

	before, _ := skeleton.ArcLength(bent)
	after, _ := skeleton.ArcLength(straight)
	fmt.Printf("bent length     = %.2f\n", before)
	fmt.Printf("straight length = %.2f\n", after)

	// Output:
	// bent length     = 1.55
	// straight length = 1.55
}

// ExampleAssignNearest assigns three probes to a short straight centerline.
func ExampleAssignNearest() {
	x := skeleton.Line(3, r3.Vec{}, r3.Vec{X: 2}) // skeleton points at x = 0, 1, 2
	xi := skeleton.Line(3, r3.Vec{X: 0.2, Y: 0.1}, r3.Vec{X: 1.8, Y: 0.1})

	idx, err := skeleton.AssignNearest(xi, x)
	if err != nil {
		fmt.Println("assignment failed:", err)
		return
	}
	fmt.Println(idx)

	// Output:
	// [0 1 2]
}
