// SPDX-License-Identifier: MIT

package export

import "errors"

var (
	// ErrUnknownFormat indicates a report format other than yaml or json.
	ErrUnknownFormat = errors.New("export: unknown report format")

	// ErrNilSolid indicates a nil solid handed to WriteSTL.
	ErrNilSolid = errors.New("export: nil solid")

	// ErrResolution indicates a non-positive mesh resolution.
	ErrResolution = errors.New("export: mesh resolution must be positive")
)
