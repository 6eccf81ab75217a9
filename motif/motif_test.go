package motif_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motley/kernel"
	"github.com/katalvlaran/motley/motif"
)

func TestGothicShape(t *testing.T) {
	t.Parallel()
	c, err := motif.Gothic(kernel.WorldXY, 6, 8.5, 7)
	require.NoError(t, err)
	require.True(t, c.IsClosed(1e-9))
	require.Equal(t, 2*motif.ArcSegments+4, c.Len())

	box := c.BoundingBox()
	require.InDelta(t, -3.0, box.Min.X, 1e-9)
	require.InDelta(t, 3.0, box.Max.X, 1e-9)
	require.InDelta(t, 0.0, box.Min.Y, 1e-9)
	require.InDelta(t, 8.5, box.Max.Y, 1e-9)

	// Symmetric about the plane's Y axis; the last point closes the loop.
	n := c.Len() - 2
	for i := 0; i <= n; i++ {
		p, q := c.Points[i], c.Points[n-i]
		require.InDelta(t, -p.X, q.X, 1e-9)
		require.InDelta(t, p.Y, q.Y, 1e-9)
	}

	k := kernel.New()
	_, err = k.CapPlanar(c)
	require.NoError(t, err, "profile must bound a simple planar face")
}

func TestGothicKeepsPinchWhenTallEnough(t *testing.T) {
	t.Parallel()
	// Rise 6 from pinch 9 covers the 4-unit half span: springing stays at 9.
	c, err := motif.Gothic(kernel.WorldXY, 8, 15, 9)
	require.NoError(t, err)
	require.InDelta(t, 9.0, c.Points[1].Y, 1e-9)
	require.InDelta(t, -4.0, c.Points[1].X, 1e-9)
}

func TestGothicCountsMatchAcrossSizes(t *testing.T) {
	t.Parallel()
	a, err := motif.Gothic(kernel.WorldXY, 3, 15, 9)
	require.NoError(t, err)
	b, err := motif.Gothic(kernel.WorldXY, 13.5, 15, 9)
	require.NoError(t, err)
	require.Equal(t, a.Len(), b.Len())
}

func TestGothicInPlane(t *testing.T) {
	t.Parallel()
	pl, err := kernel.NewPlane(r3.Vec{X: 5, Y: 5}, r3.Vec{Y: 1}, r3.Vec{Z: 1})
	require.NoError(t, err)
	c, err := motif.Gothic(pl, 4, 10, 6)
	require.NoError(t, err)
	for _, p := range c.Points {
		require.InDelta(t, 5.0, p.X, 1e-9)
	}
	require.InDelta(t, 10.0, c.BoundingBox().Max.Z, 1e-9)
}

func TestGothicErrors(t *testing.T) {
	t.Parallel()
	_, err := motif.Gothic(kernel.WorldXY, 0.5, 15, 9)
	require.ErrorIs(t, err, motif.ErrSpanTooNarrow)
	_, err = motif.Gothic(kernel.WorldXY, 4, 0, 0)
	require.ErrorIs(t, err, motif.ErrInvalidSize)
	_, err = motif.Gothic(kernel.WorldXY, 4, 5, 5)
	require.ErrorIs(t, err, motif.ErrInvalidSize)
	_, err = motif.Gothic(kernel.WorldXY, 40, 15, 9)
	require.ErrorIs(t, err, motif.ErrArchTooFlat)
}

func TestRectangle(t *testing.T) {
	t.Parallel()
	c, err := motif.Rectangle(kernel.WorldXY, 1, -1, -1.75, 1.75)
	require.NoError(t, err)
	require.Equal(t, 5, c.Len())
	require.InDelta(t, 7.0, kernel.AreaXY(c, 1e-9), 1e-9)

	_, err = motif.Rectangle(kernel.WorldXY, 1, 1, 0, 2)
	require.ErrorIs(t, err, motif.ErrEmptyRect)
}
