package massing_test

import (
	"fmt"

	"github.com/katalvlaran/motley/kernel"
	"github.com/katalvlaran/motley/massing"
)

// ExampleSolve generates a small hall along a straight spine.
func ExampleSolve() {
	boundary := kernel.ClosedPolyline(pt(0, 0), pt(60, 0), pt(60, 30), pt(0, 30))
	cell := kernel.ClosedPolyline(pt(0, 0), pt(6, 0), pt(6, 4), pt(0, 4))
	path := kernel.NewPolyline(pt(0, 15), pt(60, 15))

	m, err := massing.Solve(boundary, cell, path, massing.WithJobID(fixedJob))
	if err != nil {
		fmt.Println(err)
		return
	}
	s := m.Summary()
	fmt.Printf("stations %d, tiers %d, cells %d, short axes %d\n",
		len(s.Stations), s.TiersPerSide, s.Cells, s.ShortAxes)
	// Output: stations 11, tiers 2, cells 20, short axes 10
}
