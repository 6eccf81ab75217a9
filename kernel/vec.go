// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
	"gonum.org/v1/gonum/spatial/r3"
)

// Frequently used axis vectors.
var (
	UnitX = r3.Vec{X: 1}
	UnitY = r3.Vec{Y: 1}
	UnitZ = r3.Vec{Z: 1}
)

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// Lerp interpolates linearly from a (t=0) to b (t=1).
func Lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

// Unit returns v scaled to length one and false when v is (nearly) zero.
func Unit(v r3.Vec) (r3.Vec, bool) {
	n := r3.Norm(v)
	if n < 1e-12 {
		return r3.Vec{}, false
	}
	return r3.Scale(1/n, v), true
}

// VectorAngle returns the unsigned angle in radians between a and b, in [0, π].
// Zero vectors yield 0.
func VectorAngle(a, b r3.Vec) float64 {
	ua, okA := Unit(a)
	ub, okB := Unit(b)
	if !okA || !okB {
		return 0
	}
	d := r3.Dot(ua, ub)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d)
}

// RotateZ rotates v by angle radians about the world Z axis.
func RotateZ(v r3.Vec, angle float64) r3.Vec {
	return r3.Rotate(v, angle, UnitZ)
}

func toCoord(v r3.Vec) model3d.Coord3D {
	return model3d.XYZ(v.X, v.Y, v.Z)
}

func fromCoord(c model3d.Coord3D) r3.Vec {
	return r3.Vec{X: c.X, Y: c.Y, Z: c.Z}
}
