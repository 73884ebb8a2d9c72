// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Sketch is one decoded Sketcher::SketchObject. Every field is populated in
// a single parse pass and is read-only thereafter; sequence order equals
// source document order, because constraints reference geometry by position.
type Sketch struct {
	// Name is the document-internal object name, unique per document.
	Name string

	// Label is the user-visible label, falling back to Name when the
	// document stores none.
	Label string

	// Geometry holds the sketch's own elements. The zero-based position in
	// this sequence is the identity constraint references use.
	Geometry []Geometry

	// Constraints holds the sketch's constraints in document order.
	Constraints []Constraint

	// ExternalGeo holds geometry imported by reference from outside the
	// sketch, in encounter order.
	ExternalGeo []Geometry

	// ExternalGeoByID keys the same external geometry by its stored
	// negative id (first encountered = -1, second = -2, ...). Elements
	// stored without an id appear in ExternalGeo but not here.
	ExternalGeoByID map[int]Geometry

	// FullyConstrained reports whether the document marks the sketch's
	// degrees of freedom as fully determined.
	FullyConstrained bool
}

// GeometryCount returns the number of internal geometry elements.
func (s Sketch) GeometryCount() int { return len(s.Geometry) }

// ConstraintCount returns the number of constraints.
func (s Sketch) ConstraintCount() int { return len(s.Constraints) }

// ExternalGeometryCount returns the number of external geometry elements.
func (s Sketch) ExternalGeometryCount() int { return len(s.ExternalGeo) }
