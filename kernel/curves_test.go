package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motley/kernel"
)

func TestJoinCurvesClosesLoop(t *testing.T) {
	parts := []*kernel.Polyline{
		kernel.Line(vec(0, 0, 0), vec(4, 0, 0)),
		kernel.Line(vec(4, 4, 0), vec(0, 4, 0)),
		kernel.Line(vec(4, 0, 0), vec(4, 4, 0)),
		kernel.Line(vec(0, 0, 0), vec(0, 4, 0)), // reversed on purpose
	}
	out := kernel.JoinCurves(parts, 1e-6)
	require.Len(t, out, 1)
	require.True(t, out[0].IsClosed(1e-6))
	require.Equal(t, 5, out[0].Len())
	require.InDelta(t, 16.0, kernel.AreaXY(out[0], 1e-6), 1e-9)
}

func TestJoinCurvesKeepsDisjointChains(t *testing.T) {
	out := kernel.JoinCurves([]*kernel.Polyline{
		kernel.Line(vec(0, 0, 0), vec(1, 0, 0)),
		kernel.Line(vec(5, 5, 0), vec(6, 5, 0)),
		kernel.Line(vec(1, 0, 0), vec(2, 0, 0)),
	}, 1e-6)
	require.Len(t, out, 2)
	require.Equal(t, 3, out[0].Len())
	require.False(t, out[0].IsClosed(1e-6))
}

func TestIntersectCurves(t *testing.T) {
	a := kernel.Line(vec(0, 0, 0), vec(10, 0, 0))
	b := kernel.NewPolyline(vec(2, -1, 0), vec(2, 1, 0), vec(7, 1, 0), vec(7, -1, 0))

	hits := kernel.IntersectCurves(a, b, 1e-6)
	require.Len(t, hits, 2)
	requireVec(t, vec(2, 0, 0), hits[0].Point)
	require.InDelta(t, 2.0, hits[0].LengthA, 1e-9)
	require.InDelta(t, 1.0, hits[0].LengthB, 1e-9)
	requireVec(t, vec(7, 0, 0), hits[1].Point)
	require.InDelta(t, 8.0, hits[1].LengthB, 1e-9)

	require.Empty(t, kernel.IntersectCurves(a, kernel.Line(vec(0, 5, 0), vec(10, 5, 0)), 1e-6))
}

func TestSplitClosed(t *testing.T) {
	sq := square(0, 0, 4, 0) // length 16
	inner, outer := kernel.SplitClosed(sq, 2, 10)

	require.InDelta(t, 8.0, inner.Length(), 1e-9)
	require.InDelta(t, 8.0, outer.Length(), 1e-9)
	requireVec(t, vec(2, 0, 0), inner.Start())
	requireVec(t, vec(2, 4, 0), inner.End())
	requireVec(t, vec(2, 4, 0), outer.Start())
	requireVec(t, vec(2, 0, 0), outer.End())
}

func TestRegionHelpers(t *testing.T) {
	sq := square(0, 0, 4, 3)
	require.InDelta(t, 16.0, kernel.AreaXY(sq, 1e-6), 1e-9)
	requireVec(t, vec(2, 2, 3), kernel.CentroidXY(sq, 1e-6))

	require.True(t, kernel.ContainsXY(sq, vec(1, 1, 100), 1e-6))
	require.False(t, kernel.ContainsXY(sq, vec(5, 1, 0), 1e-6))
	require.False(t, kernel.ContainsXY(kernel.Line(vec(0, 0, 0), vec(1, 1, 0)), vec(0.5, 0.5, 0), 1e-6))
}
