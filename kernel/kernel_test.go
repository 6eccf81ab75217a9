package kernel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/unixpickle/model3d/model3d"

	"github.com/katalvlaran/motley/kernel"
)

// CSGSuite exercises the reference kernel.
type CSGSuite struct {
	suite.Suite
	k *kernel.CSG
}

func (s *CSGSuite) SetupTest() {
	s.k = kernel.New()
}

func (s *CSGSuite) box(x0, y0, side, z0, h float64) kernel.Solid {
	sol, err := kernel.ExtrudeCapped(s.k, square(x0, y0, side, z0), vec(0, 0, h))
	require.NoError(s.T(), err)
	return sol
}

// TestDefaults verifies option handling.
func (s *CSGSuite) TestDefaults() {
	require.Equal(s.T(), kernel.DefaultTolerance, s.k.Tolerance())
	require.Equal(s.T(), 0.01, kernel.New(kernel.WithTolerance(0.01)).Tolerance())
	require.Panics(s.T(), func() { kernel.WithTolerance(0) })
	require.Panics(s.T(), func() { kernel.WithSampleDensity(0) })
}

// TestCapPlanarValidation checks every profile rejection path.
func (s *CSGSuite) TestCapPlanarValidation() {
	_, err := s.k.CapPlanar(square(0, 0, 2, 0))
	require.NoError(s.T(), err)

	_, err = s.k.CapPlanar(kernel.NewPolyline(vec(0, 0, 0), vec(2, 0, 0), vec(2, 2, 0)))
	require.ErrorIs(s.T(), err, kernel.ErrOpenProfile)

	_, err = s.k.CapPlanar(kernel.ClosedPolyline(vec(0, 0, 0), vec(4, 0, 0), vec(4, 4, 3), vec(0, 4, 0)))
	require.ErrorIs(s.T(), err, kernel.ErrNonPlanar)

	bowtie := kernel.ClosedPolyline(vec(0, 0, 0), vec(4, 4, 0), vec(4, 0, 0), vec(0, 6, 0))
	_, err = s.k.CapPlanar(bowtie)
	require.ErrorIs(s.T(), err, kernel.ErrSelfIntersecting)

	flat := kernel.ClosedPolyline(vec(0, 0, 0), vec(2, 0, 0), vec(4, 0, 0))
	_, err = s.k.CapPlanar(flat)
	require.ErrorIs(s.T(), err, kernel.ErrZeroArea)
}

// TestExtrudeCapped builds a box and checks membership.
func (s *CSGSuite) TestExtrudeCapped() {
	b := s.box(0, 0, 4, 0, 3)
	require.True(s.T(), b.Contains(model3d.XYZ(2, 2, 1.5)))
	require.False(s.T(), b.Contains(model3d.XYZ(2, 2, 3.5)))
	require.False(s.T(), b.Contains(model3d.XYZ(5, 2, 1)))
	require.InDelta(s.T(), 3.0, b.Max().Z, 1e-9)

	_, err := s.k.Extrude(square(0, 0, 4, 0), vec(1, 0, 0))
	require.ErrorIs(s.T(), err, kernel.ErrParallelExtrusion)
}

// TestJoinRequiresClosedShell checks that a missing cap is reported.
func (s *CSGSuite) TestJoinRequiresClosedShell() {
	prof := square(0, 0, 4, 0)
	wall, err := s.k.Extrude(prof, vec(0, 0, 3))
	require.NoError(s.T(), err)
	bottom, err := s.k.CapPlanar(prof)
	require.NoError(s.T(), err)

	_, err = s.k.Join(wall, bottom)
	require.ErrorIs(s.T(), err, kernel.ErrOpenShell)

	stray, err := s.k.CapPlanar(square(10, 10, 1, 0))
	require.NoError(s.T(), err)
	top, err := s.k.CapPlanar(wall.Ends[1])
	require.NoError(s.T(), err)
	_, err = s.k.Join(wall, bottom, top, stray)
	require.ErrorIs(s.T(), err, kernel.ErrOpenShell)

	sol, err := s.k.Join(wall, top, bottom)
	require.NoError(s.T(), err)
	require.True(s.T(), sol.Contains(model3d.XYZ(1, 1, 1)))
}

// TestLoft checks a straight loft between a large and a small square.
func (s *CSGSuite) TestLoft() {
	a := square(0, 0, 4, 0)
	b := square(1, 1, 2, 4)
	wall, err := s.k.Loft(a, b)
	require.NoError(s.T(), err)
	ca, err := s.k.CapPlanar(a)
	require.NoError(s.T(), err)
	cb, err := s.k.CapPlanar(b)
	require.NoError(s.T(), err)
	sol, err := s.k.Join(wall, ca, cb)
	require.NoError(s.T(), err)

	require.True(s.T(), sol.Contains(model3d.XYZ(0.2, 0.2, 0.1)))
	require.False(s.T(), sol.Contains(model3d.XYZ(0.2, 0.2, 3.9)))
	require.True(s.T(), sol.Contains(model3d.XYZ(2, 2, 3.9)))

	_, err = s.k.Loft(a, kernel.ClosedPolyline(vec(0, 0, 4), vec(1, 0, 4), vec(0, 1, 4)))
	require.ErrorIs(s.T(), err, kernel.ErrLoftMismatch)
	_, err = s.k.Loft(a, square(5, 5, 2, 0))
	require.ErrorIs(s.T(), err, kernel.ErrLoftMismatch)
}

// TestSweepAlongBentRail sweeps a square section around a right angle.
func (s *CSGSuite) TestSweepAlongBentRail() {
	rail := kernel.NewPolyline(vec(0, 0, 0), vec(10, 0, 0), vec(10, 10, 0))
	start := rail.PerpendicularFrameAtLength(0)
	prof := kernel.ClosedPolyline(
		start.PointAt(-1, -1), start.PointAt(1, -1), start.PointAt(1, 1), start.PointAt(-1, 1),
	)
	wall, err := s.k.Sweep(rail, prof)
	require.NoError(s.T(), err)
	c0, err := s.k.CapPlanar(wall.Ends[0])
	require.NoError(s.T(), err)
	c1, err := s.k.CapPlanar(wall.Ends[1])
	require.NoError(s.T(), err)
	sol, err := s.k.Join(wall, c0, c1)
	require.NoError(s.T(), err)

	require.True(s.T(), sol.Contains(model3d.XYZ(5, 0, 0)))
	require.True(s.T(), sol.Contains(model3d.XYZ(10, 5, 0.5)))
	require.False(s.T(), sol.Contains(model3d.XYZ(5, 5, 0)))
	for _, p := range wall.Ends[1].Points {
		require.InDelta(s.T(), 10.0, p.Y, 1e-9, "end loop lies on the rail end plane")
	}

	_, err = s.k.Sweep(kernel.NewPolyline(vec(0, 0, 0)), prof)
	require.ErrorIs(s.T(), err, kernel.ErrShortRail)
}

// TestDifferenceOutcomes covers the untouched, carved and consumed cases.
func (s *CSGSuite) TestDifferenceOutcomes() {
	a := s.box(0, 0, 4, 0, 4)

	out, err := s.k.Difference(a, s.box(10, 10, 1, 0, 1))
	require.NoError(s.T(), err)
	require.Len(s.T(), out, 1)
	require.Equal(s.T(), a, out[0])

	out, err = s.k.Difference(a, s.box(1, 1, 2, -1, 6))
	require.NoError(s.T(), err)
	require.Len(s.T(), out, 1)
	require.False(s.T(), out[0].Contains(model3d.XYZ(2, 2, 2)))
	require.True(s.T(), out[0].Contains(model3d.XYZ(0.5, 0.5, 2)))

	out, err = s.k.Difference(a, s.box(-1, -1, 6, -1, 6))
	require.NoError(s.T(), err)
	require.Empty(s.T(), out)

	_, err = s.k.Difference(nil, a)
	require.ErrorIs(s.T(), err, kernel.ErrNilSolid)
}

// TestSafeDifference checks the never-fail contract.
func (s *CSGSuite) TestSafeDifference() {
	a := s.box(0, 0, 4, 0, 4)

	c := kernel.SafeDifference(s.k, a)
	require.True(s.T(), c.Applied)
	require.Equal(s.T(), a, c.Solid)

	c = kernel.SafeDifference(s.k, a, s.box(-1, -1, 6, -1, 6))
	require.False(s.T(), c.Applied)
	require.Equal(s.T(), a, c.Solid)
	require.True(s.T(), errors.Is(c.Err, kernel.ErrNoResult))

	c = kernel.SafeDifference(s.k, a, nil)
	require.False(s.T(), c.Applied)
	require.ErrorIs(s.T(), c.Err, kernel.ErrNilSolid)

	c = kernel.SafeDifference(s.k, a, s.box(1, 1, 2, 3, 2))
	require.True(s.T(), c.Applied)
	require.NoError(s.T(), c.Err)
}

// TestUnionAndTranslate covers Union edge cases and translation.
func (s *CSGSuite) TestUnionAndTranslate() {
	_, err := s.k.Union()
	require.ErrorIs(s.T(), err, kernel.ErrEmptyUnion)

	a := s.box(0, 0, 1, 0, 1)
	u, err := s.k.Union(a)
	require.NoError(s.T(), err)
	require.Equal(s.T(), a, u)

	moved := kernel.Translate(kernel.Translate(a, vec(5, 0, 0)), vec(0, 0, 2))
	require.True(s.T(), moved.Contains(model3d.XYZ(5.5, 0.5, 2.5)))
	require.False(s.T(), moved.Contains(model3d.XYZ(0.5, 0.5, 0.5)))
	require.InDelta(s.T(), 6.0, moved.Max().X, 1e-9)

	u, err = s.k.Union(a, moved)
	require.NoError(s.T(), err)
	require.True(s.T(), u.Contains(model3d.XYZ(0.5, 0.5, 0.5)))
	require.True(s.T(), u.Contains(model3d.XYZ(5.5, 0.5, 2.5)))
}

// TestProfileDifference subtracts a strip from a square region.
func (s *CSGSuite) TestProfileDifference() {
	rings, err := s.k.ProfileDifference(square(0, 0, 4, 2), kernel.ClosedPolyline(
		vec(3, -1, 2), vec(5, -1, 2), vec(5, 5, 2), vec(3, 5, 2),
	))
	require.NoError(s.T(), err)
	require.Len(s.T(), rings, 1)
	require.InDelta(s.T(), 12.0, kernel.AreaXY(rings[0], 1e-6), 1e-6)
	require.InDelta(s.T(), 2.0, rings[0].Start().Z, 1e-9)

	// A strip across the middle leaves two pieces, the larger first.
	rings, err = s.k.ProfileDifference(square(0, 0, 4, 0), kernel.ClosedPolyline(
		vec(1, -1, 0), vec(2, -1, 0), vec(2, 5, 0), vec(1, 5, 0),
	))
	require.NoError(s.T(), err)
	require.Len(s.T(), rings, 2)
	require.InDelta(s.T(), 8.0, kernel.AreaXY(rings[0], 1e-6), 1e-6)
	require.InDelta(s.T(), 4.0, kernel.AreaXY(rings[1], 1e-6), 1e-6)

	rings, err = s.k.ProfileDifference(square(0, 0, 1, 0), square(-1, -1, 3, 0))
	require.NoError(s.T(), err)
	require.Empty(s.T(), rings)

	_, err = s.k.ProfileDifference(kernel.Line(vec(0, 0, 0), vec(1, 0, 0)), square(0, 0, 1, 0))
	require.ErrorIs(s.T(), err, kernel.ErrOpenProfile)
}

func TestCSGSuite(t *testing.T) {
	suite.Run(t, new(CSGSuite))
}
