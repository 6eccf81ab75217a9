// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalid indicates a configuration value outside its allowed set.
	// Validate wraps it with the offending field.
	ErrInvalid = errors.New("config: invalid value")

	// ErrNoCurves indicates an input section that supplies no curve for one
	// of boundary, cell or path.
	ErrNoCurves = errors.New("config: missing input curve")

	// ErrBadPoint indicates a point that does not have two or three
	// coordinates.
	ErrBadPoint = errors.New("config: point needs 2 or 3 coordinates")
)
