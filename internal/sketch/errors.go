// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sketch

import "errors"

// Hard decode errors. Each aborts the entire document scan: the format's
// schema is closed, so an unrecognized tag or code means a version mismatch
// rather than a skippable record, and no partial result is returned.
var (
	// ErrUnsupportedGeometry marks a geometry type tag outside the twelve
	// known kinds.
	ErrUnsupportedGeometry = errors.New("unsupported geometry type")

	// ErrMalformedGeometry marks a recognized geometry type missing its
	// required nested element.
	ErrMalformedGeometry = errors.New("malformed geometry element")

	// ErrUnknownConstraintType marks a constraint type code outside the
	// closed 0-19 table.
	ErrUnknownConstraintType = errors.New("unknown constraint type")
)
