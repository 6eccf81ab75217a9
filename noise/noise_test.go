package noise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motley/noise"
)

func TestRemap(t *testing.T) {
	t.Parallel()
	require.InDelta(t, 0.25, noise.Remap(10, noise.Interval{Hi: 40}, noise.Unit), 1e-12)
	require.InDelta(t, 15.0, noise.Remap(0.5, noise.Unit, noise.Interval{Lo: 10, Hi: 20}), 1e-12)
	require.Equal(t, 3.0, noise.Remap(7, noise.Interval{Lo: 1, Hi: 1}, noise.Interval{Lo: 3, Hi: 9}))
}

func TestFromVolatilityClamps(t *testing.T) {
	t.Parallel()
	require.Equal(t, noise.Zero, noise.FromVolatility(0, noise.SegmentSource))
	require.Equal(t, noise.Range{Max: 0.5}, noise.FromVolatility(20, noise.DriftSource))
	require.Equal(t, noise.Range{Max: 1}, noise.FromVolatility(55, noise.DriftSource))
	require.Equal(t, noise.Zero, noise.FromVolatility(-3, noise.CornerSource))
}

func TestValueBounds(t *testing.T) {
	t.Parallel()
	r := noise.NewStream(noise.DefaultSeed)
	for i := 0; i < 1000; i++ {
		x := noise.Value(r, 9, 13, noise.Range{Max: 1})
		require.GreaterOrEqual(t, x, 9.0)
		require.LessOrEqual(t, x, 13.0)
	}
	for i := 0; i < 100; i++ {
		x := noise.Value(r, 9, 13, noise.Range{Max: 0.25})
		require.GreaterOrEqual(t, x, 10.5)
		require.LessOrEqual(t, x, 11.5)
	}
}

func TestValueZeroNoiseIsMidpoint(t *testing.T) {
	t.Parallel()
	r := noise.NewStream(1)
	for i := 0; i < 10; i++ {
		require.Equal(t, 11.0, noise.Value(r, 9, 13, noise.Zero))
	}
}

func TestStreamsAreReproducible(t *testing.T) {
	t.Parallel()
	a, b := noise.NewStream(noise.DefaultSeed), noise.NewStream(noise.DefaultSeed)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestRemapAll(t *testing.T) {
	t.Parallel()
	in := []float64{2, 4, 6}
	out := noise.RemapAll(in, noise.Interval{Lo: 0, Hi: 100})
	require.Equal(t, []float64{0, 50, 100}, out)
	require.Equal(t, []float64{2, 4, 6}, in)
	require.Empty(t, noise.RemapAll(nil, noise.Unit))
}
