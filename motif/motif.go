// SPDX-License-Identifier: MIT

package motif

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motley/kernel"
)

const (
	// MinSpan is the narrowest arch Gothic will build.
	MinSpan = 1.0
	// ArcSegments is the number of straight segments per arch flank.
	ArcSegments = 8
)

// Gothic returns a closed pointed-arch profile in plane pl: the base runs
// along pl's X axis centred on its origin, the apex sits at height along pl's
// Y axis, and the two circular flanks spring from height pinch. When the
// flanks would meet below the apex at that springing height, the springing
// line is raised until they meet exactly at the apex.
func Gothic(pl kernel.Plane, width, height, pinch float64) (*kernel.Polyline, error) {
	if width < MinSpan {
		return nil, fmt.Errorf("Gothic: width %g < %g: %w", width, MinSpan, ErrSpanTooNarrow)
	}
	if height <= 0 || pinch < 0 || pinch >= height {
		return nil, fmt.Errorf("Gothic: height %g pinch %g: %w", height, pinch, ErrInvalidSize)
	}
	half := width / 2
	spring := pinch
	if height-spring < half {
		spring = height - half
	}
	if spring <= 0 {
		return nil, fmt.Errorf("Gothic: width %g height %g: %w", width, height, ErrArchTooFlat)
	}
	rise := height - spring
	xc := (rise*rise - half*half) / width
	radius := xc + half
	apex := math.Atan2(rise, -xc)

	flank := make([][2]float64, ArcSegments+1)
	for k := range flank {
		a := math.Pi + (apex-math.Pi)*float64(k)/ArcSegments
		flank[k] = [2]float64{xc + radius*math.Cos(a), spring + radius*math.Sin(a)}
	}
	flank[0] = [2]float64{-half, spring}
	flank[ArcSegments] = [2]float64{0, height}

	pts := make([]r3.Vec, 0, 2*ArcSegments+4)
	pts = append(pts, pl.PointAt(-half, 0))
	for _, uv := range flank {
		pts = append(pts, pl.PointAt(uv[0], uv[1]))
	}
	for k := ArcSegments - 1; k >= 0; k-- {
		pts = append(pts, pl.PointAt(-flank[k][0], flank[k][1]))
	}
	pts = append(pts, pl.PointAt(half, 0))
	return kernel.ClosedPolyline(pts...), nil
}

// Rectangle returns the closed rectangle [u0,u1]×[v0,v1] in plane pl, wound
// counter-clockwise about pl's normal.
func Rectangle(pl kernel.Plane, u0, u1, v0, v1 float64) (*kernel.Polyline, error) {
	if u0 > u1 {
		u0, u1 = u1, u0
	}
	if v0 > v1 {
		v0, v1 = v1, v0
	}
	if u1-u0 <= 0 || v1-v0 <= 0 {
		return nil, fmt.Errorf("Rectangle: [%g,%g]×[%g,%g]: %w", u0, u1, v0, v1, ErrEmptyRect)
	}
	return kernel.ClosedPolyline(
		pl.PointAt(u0, v0), pl.PointAt(u1, v0), pl.PointAt(u1, v1), pl.PointAt(u0, v1),
	), nil
}
