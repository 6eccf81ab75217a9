package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motley/kernel"
)

const eps = 1e-9

func vec(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }

func requireVec(t *testing.T, want, got r3.Vec, msgAndArgs ...any) {
	t.Helper()
	require.InDeltaf(t, want.X, got.X, 1e-6, "X %v", msgAndArgs)
	require.InDeltaf(t, want.Y, got.Y, 1e-6, "Y %v", msgAndArgs)
	require.InDeltaf(t, want.Z, got.Z, 1e-6, "Z %v", msgAndArgs)
}

func square(x0, y0, side, z float64) *kernel.Polyline {
	return kernel.ClosedPolyline(
		vec(x0, y0, z), vec(x0+side, y0, z), vec(x0+side, y0+side, z), vec(x0, y0+side, z),
	)
}

func TestPolylineLengthAndPoints(t *testing.T) {
	c := kernel.NewPolyline(vec(0, 0, 0), vec(3, 0, 0), vec(3, 4, 0))
	require.InDelta(t, 7.0, c.Length(), eps)
	require.Equal(t, []float64{3, 4}, c.SegmentLengths())

	requireVec(t, vec(1.5, 0, 0), c.PointAtLength(1.5))
	requireVec(t, vec(3, 1, 0), c.PointAtLength(4))
	requireVec(t, vec(0, 0, 0), c.PointAtLength(-5))
	requireVec(t, vec(3, 4, 0), c.PointAtLength(100))
	requireVec(t, vec(3, 0.5, 0), c.PointAtNormalizedLength(0.5))

	requireVec(t, vec(1, 0, 0), c.TangentAtLength(1))
	requireVec(t, vec(0, 1, 0), c.TangentAtLength(5))
}

func TestPolylineIsClosed(t *testing.T) {
	require.True(t, square(0, 0, 2, 0).IsClosed(eps))
	require.False(t, kernel.NewPolyline(vec(0, 0, 0), vec(1, 0, 0), vec(0, 0, 0)).IsClosed(eps),
		"three points cannot bound a region")
	require.False(t, kernel.NewPolyline(vec(0, 0, 0), vec(1, 0, 0), vec(1, 1, 0), vec(0, 1, 0)).IsClosed(eps))
}

func TestPolylineDivideByCount(t *testing.T) {
	c := kernel.Line(vec(0, 0, 0), vec(10, 0, 0))

	inner := c.DivideByCount(10, false)
	require.Len(t, inner, 9)
	requireVec(t, vec(1, 0, 0), inner[0])
	requireVec(t, vec(9, 0, 0), inner[8])

	all := c.DivideByCount(8, true)
	require.Len(t, all, 9)
	requireVec(t, vec(0, 0, 0), all[0])
	requireVec(t, vec(10, 0, 0), all[8])

	assert.Nil(t, c.DivideByCount(0, true))
}

func TestPolylineExtendAndSubCurve(t *testing.T) {
	c := kernel.NewPolyline(vec(0, 0, 0), vec(10, 0, 0), vec(10, 10, 0))

	ext := c.Extend(5)
	requireVec(t, vec(-5, 0, 0), ext.Start())
	requireVec(t, vec(10, 15, 0), ext.End())
	requireVec(t, vec(0, 0, 0), c.Start(), "receiver must not change")

	sub := c.SubCurve(5, 15)
	require.Equal(t, 3, sub.Len())
	requireVec(t, vec(5, 0, 0), sub.Start())
	requireVec(t, vec(10, 0, 0), sub.Points[1])
	requireVec(t, vec(10, 5, 0), sub.End())

	rev := c.Reverse()
	requireVec(t, vec(10, 10, 0), rev.Start())
	requireVec(t, vec(0, 0, 0), rev.End())
}

func TestPolylineClosestPoint(t *testing.T) {
	c := kernel.NewPolyline(vec(0, 0, 0), vec(10, 0, 0), vec(10, 10, 0))
	p, s := c.ClosestPoint(vec(4, -3, 0))
	requireVec(t, vec(4, 0, 0), p)
	require.InDelta(t, 4.0, s, eps)

	p, s = c.ClosestPoint(vec(14, 6, 0))
	requireVec(t, vec(10, 6, 0), p)
	require.InDelta(t, 16.0, s, eps)
}

func TestPolylineTransforms(t *testing.T) {
	sq := square(0, 0, 2, 0)

	scaled := sq.Scale(vec(1, 1, 0), 2)
	requireVec(t, vec(-1, -1, 0), scaled.Start())

	rot := kernel.Line(vec(1, 0, 0), vec(2, 0, 0)).Rotate(math.Pi/2, kernel.UnitZ, vec(0, 0, 0))
	requireVec(t, vec(0, 1, 0), rot.Start())
	requireVec(t, vec(0, 2, 0), rot.End())

	box := sq.Translate(vec(0, 0, 5)).BoundingBox()
	requireVec(t, vec(0, 0, 5), box.Min)
	requireVec(t, vec(2, 2, 5), box.Max)
}

func TestFrames(t *testing.T) {
	c := kernel.Line(vec(0, 0, 0), vec(0, 10, 0))

	f := c.FrameAtLength(5)
	requireVec(t, vec(0, 5, 0), f.Origin)
	requireVec(t, vec(0, 1, 0), f.XAxis)
	requireVec(t, vec(-1, 0, 0), f.YAxis)
	requireVec(t, vec(0, 0, 1), f.ZAxis)

	p := c.PerpendicularFrameAtLength(0)
	requireVec(t, vec(0, 1, 0), p.ZAxis)
	requireVec(t, vec(0, 0, 1), p.YAxis, "perpendicular frames keep Y up")
	require.InDelta(t, 0.0, p.XAxis.Z, eps)
}

func TestNewPlane(t *testing.T) {
	pl, err := kernel.NewPlane(vec(1, 2, 3), vec(2, 0, 0), vec(1, 1, 0))
	require.NoError(t, err)
	requireVec(t, vec(1, 0, 0), pl.XAxis)
	requireVec(t, vec(0, 1, 0), pl.YAxis)
	requireVec(t, vec(0, 0, 1), pl.ZAxis)
	requireVec(t, vec(2, 4, 3), pl.PointAt(1, 2))

	_, err = kernel.NewPlane(vec(0, 0, 0), vec(1, 0, 0), vec(3, 0, 0))
	require.ErrorIs(t, err, kernel.ErrDegenerateFrame)

	_, err = kernel.PlaneFromNormal(vec(0, 0, 0), r3.Vec{})
	require.ErrorIs(t, err, kernel.ErrDegenerateFrame)
}

func TestPolylineSplitAndSegments(t *testing.T) {
	c := kernel.NewPolyline(vec(0, 0, 0), vec(10, 0, 0), vec(10, 10, 0))

	parts := c.Split(15, 5, -1, 40)
	require.Len(t, parts, 3)
	require.InDelta(t, 5.0, parts[0].Length(), eps)
	require.InDelta(t, 10.0, parts[1].Length(), eps)
	require.InDelta(t, 5.0, parts[2].Length(), eps)
	requireVec(t, vec(10, 5, 0), parts[2].Start())

	segs := c.Segments()
	require.Len(t, segs, 2)
	requireVec(t, vec(10, 0, 0), segs[1].Start())
}
