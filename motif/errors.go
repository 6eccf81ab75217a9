// SPDX-License-Identifier: MIT

package motif

import "errors"

var (
	// ErrSpanTooNarrow indicates an arch width below MinSpan.
	ErrSpanTooNarrow = errors.New("motif: span too narrow")

	// ErrInvalidSize indicates a non-positive height, a negative pinch or a
	// pinch that reaches the apex.
	ErrInvalidSize = errors.New("motif: invalid arch size")

	// ErrArchTooFlat indicates that the arch cannot rise from a positive
	// springing line to its apex for the given width.
	ErrArchTooFlat = errors.New("motif: arch too flat for its span")

	// ErrEmptyRect indicates a rectangle with zero extent on either axis.
	ErrEmptyRect = errors.New("motif: empty rectangle")
)
