// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NoGeometry is the sentinel value for a constraint reference slot that
// names no geometry. It is structural, not an error: most constraint kinds
// use fewer than three references.
const NoGeometry = -2000

// ConstraintType is the semantic kind of a constraint, named as the FreeCAD
// Python API names it (constraint.Type).
type ConstraintType string

const (
	ConstraintNone              ConstraintType = "None"
	ConstraintCoincident        ConstraintType = "Coincident"
	ConstraintHorizontal        ConstraintType = "Horizontal"
	ConstraintVertical          ConstraintType = "Vertical"
	ConstraintParallel          ConstraintType = "Parallel"
	ConstraintTangent           ConstraintType = "Tangent"
	ConstraintDistance          ConstraintType = "Distance"
	ConstraintDistanceX         ConstraintType = "DistanceX"
	ConstraintDistanceY         ConstraintType = "DistanceY"
	ConstraintAngle             ConstraintType = "Angle"
	ConstraintPerpendicular     ConstraintType = "Perpendicular"
	ConstraintRadius            ConstraintType = "Radius"
	ConstraintEqual             ConstraintType = "Equal"
	ConstraintPointOnObject     ConstraintType = "PointOnObject"
	ConstraintSymmetric         ConstraintType = "Symmetric"
	ConstraintInternalAlignment ConstraintType = "InternalAlignment"
	ConstraintSnellsLaw         ConstraintType = "SnellsLaw"
	ConstraintBlock             ConstraintType = "Block"
	ConstraintDiameter          ConstraintType = "Diameter"
	ConstraintWeight            ConstraintType = "Weight"
)

// constraintTypesByCode maps the integer code stored in Document.xml to its
// API name. The table is closed: Sketcher::ConstraintType defines exactly
// codes 0 through 19, and an out-of-range code indicates a format version
// mismatch, not a skippable record.
var constraintTypesByCode = [...]ConstraintType{
	0:  ConstraintNone,
	1:  ConstraintCoincident,
	2:  ConstraintHorizontal,
	3:  ConstraintVertical,
	4:  ConstraintParallel,
	5:  ConstraintTangent,
	6:  ConstraintDistance,
	7:  ConstraintDistanceX,
	8:  ConstraintDistanceY,
	9:  ConstraintAngle,
	10: ConstraintPerpendicular,
	11: ConstraintRadius,
	12: ConstraintEqual,
	13: ConstraintPointOnObject,
	14: ConstraintSymmetric,
	15: ConstraintInternalAlignment,
	16: ConstraintSnellsLaw,
	17: ConstraintBlock,
	18: ConstraintDiameter,
	19: ConstraintWeight,
}

// ConstraintTypeFromCode looks up a stored constraint type code. The second
// result is false for codes outside the closed table.
func ConstraintTypeFromCode(code int) (ConstraintType, bool) {
	if code < 0 || code >= len(constraintTypesByCode) {
		return "", false
	}
	return constraintTypesByCode[code], true
}

// PointPos identifies which point of a referenced geometry a constraint
// attaches to, matching Sketcher::PointPos.
type PointPos string

const (
	PosNone  PointPos = "none"
	PosStart PointPos = "start"
	PosEnd   PointPos = "end"
	PosMid   PointPos = "mid"
)

var pointPosByCode = [...]PointPos{
	0: PosNone,
	1: PosStart,
	2: PosEnd,
	3: PosMid,
}

// PointPosFromCode looks up a stored point position code. The second result
// is false for codes outside the closed table.
func PointPosFromCode(code int) (PointPos, bool) {
	if code < 0 || code >= len(pointPosByCode) {
		return "", false
	}
	return pointPosByCode[code], true
}

// Constraint is a single sketch constraint. First, Second, and Third index
// into the owning sketch's geometry sequence (zero-based); negative values
// address external geometry and NoGeometry marks an unused slot.
type Constraint struct {
	// Type is the constraint kind, e.g. "Distance".
	Type ConstraintType `json:"type" yaml:"type"`

	// Name is the user-assigned constraint name, empty when unnamed.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Value is the dimension value for dimensional constraints
	// (distance in mm, angle in radians).
	Value float64 `json:"value" yaml:"value"`

	First     int      `json:"first" yaml:"first"`
	FirstPos  PointPos `json:"first_pos" yaml:"first_pos"`
	Second    int      `json:"second" yaml:"second"`
	SecondPos PointPos `json:"second_pos" yaml:"second_pos"`
	Third     int      `json:"third" yaml:"third"`
	ThirdPos  PointPos `json:"third_pos" yaml:"third_pos"`

	// Driving reports whether the constraint drives the solver; a
	// non-driving constraint is a reference dimension.
	Driving bool `json:"driving" yaml:"driving"`

	// InVirtualSpace reports whether the constraint is shown in the
	// sketch's virtual space layer.
	InVirtualSpace bool `json:"in_virtual_space" yaml:"in_virtual_space"`

	// IsActive reports whether the constraint participates in solving.
	IsActive bool `json:"is_active" yaml:"is_active"`

	// LabelDistance and LabelPosition place the dimension label in the
	// sketch view.
	LabelDistance float64 `json:"label_distance" yaml:"label_distance"`
	LabelPosition float64 `json:"label_position" yaml:"label_position"`
}
