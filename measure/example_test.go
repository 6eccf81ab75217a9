package measure_test

import (
	"fmt"

	"github.com/katalvlaran/motley/kernel"
	"github.com/katalvlaran/motley/measure"
)

// ExampleSegmentVolatility measures a 6×4 rectangle: sides 6,4,6,4.
func ExampleSegmentVolatility() {
	rect := kernel.ClosedPolyline(v(0, 0), v(6, 0), v(6, 4), v(0, 4))
	seg, _ := measure.SegmentVolatility(rect)
	corner, _ := measure.CornerAngleVolatility(rect)
	fmt.Printf("segments %.2f corners %.2f\n", seg, corner)
	// Output:
	// segments 1.00 corners 0.00
}

// ExamplePathDrift compares a detouring path with its straight baseline.
func ExamplePathDrift() {
	path := kernel.NewPolyline(v(0, 0), v(0, 20), v(180, 20), v(180, 0))
	d, _ := measure.PathDrift(path)
	fmt.Printf("drift %.1f\n", d)
	// Output:
	// drift 20.0
}
