// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Carve is the outcome of SafeDifference. Solid is always usable: it is the
// carved result when Applied is true and the untouched input otherwise.
// Err records why a carve was dropped.
type Carve struct {
	Solid   Solid
	Applied bool
	Err     error
}

// SafeDifference subtracts removals from a and never fails. When the kernel
// reports an error, or the difference consumes a entirely, the input solid is
// returned with Applied=false. An empty removal set is an identity that counts
// as applied.
func SafeDifference(k Kernel, a Solid, removals ...Solid) Carve {
	if len(removals) == 0 {
		return Carve{Solid: a, Applied: true}
	}
	pieces, err := k.Difference(a, removals...)
	if err != nil {
		return Carve{Solid: a, Err: err}
	}
	switch len(pieces) {
	case 0:
		return Carve{Solid: a, Err: fmt.Errorf("SafeDifference: %w", ErrNoResult)}
	case 1:
		return Carve{Solid: pieces[0], Applied: true}
	}
	u, err := k.Union(pieces...)
	if err != nil {
		return Carve{Solid: a, Err: err}
	}
	return Carve{Solid: u, Applied: true}
}

// ExtrudeCapped extrudes a closed planar profile along dir and closes both
// ends, yielding a solid prism.
func ExtrudeCapped(k Kernel, profile *Polyline, dir r3.Vec) (Solid, error) {
	wall, err := k.Extrude(profile, dir)
	if err != nil {
		return nil, err
	}
	bottom, err := k.CapPlanar(profile)
	if err != nil {
		return nil, err
	}
	top, err := k.CapPlanar(wall.Ends[1])
	if err != nil {
		return nil, err
	}
	return k.Join(wall, bottom, top)
}
