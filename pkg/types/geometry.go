// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FreeCAD geometry type tags as stored in the Geometry property's
// type attribute.
const (
	KindPoint          = "Part::GeomPoint"
	KindLine           = "Part::GeomLine"
	KindLineSegment    = "Part::GeomLineSegment"
	KindCircle         = "Part::GeomCircle"
	KindArcOfCircle    = "Part::GeomArcOfCircle"
	KindEllipse        = "Part::GeomEllipse"
	KindArcOfEllipse   = "Part::GeomArcOfEllipse"
	KindHyperbola      = "Part::GeomHyperbola"
	KindArcOfHyperbola = "Part::GeomArcOfHyperbola"
	KindParabola       = "Part::GeomParabola"
	KindArcOfParabola  = "Part::GeomArcOfParabola"
	KindBSplineCurve   = "Part::GeomBSplineCurve"
)

// Geometry is one stored curve or point primitive belonging to a sketch.
// The variant set is closed: the file format defines exactly twelve kinds,
// and only the types in this package implement the interface. Derived
// quantities (endpoints, foci, knot sequences) are computed from the stored
// parameters, never stored redundantly.
type Geometry interface {
	// Kind returns the FreeCAD type tag, e.g. "Part::GeomLineSegment".
	Kind() string

	// IsConstruction reports whether the element is construction geometry,
	// used only as a solving aid.
	IsConstruction() bool

	sealedGeometry()
}

// Point is a point in 3D space (Part.Point).
type Point struct {
	X            float64
	Y            float64
	Z            float64
	Construction bool
}

// Line is an infinite line (Part.Line). Rare in sketches.
type Line struct {
	Location     Vector
	Direction    Vector
	Construction bool
}

// LineSegment is a bounded line segment (Part.LineSegment).
type LineSegment struct {
	StartPoint   Vector
	EndPoint     Vector
	Construction bool
}

// Circle is a full circle (Part.Circle).
type Circle struct {
	Center       Vector
	Radius       float64
	AngleXU      float64
	Axis         Vector
	Construction bool
}

// ArcOfCircle is an arc of a circle (Part.ArcOfCircle). StartAngle and
// EndAngle are parameter angles relative to the curve's local frame.
type ArcOfCircle struct {
	Center       Vector
	Radius       float64
	AngleXU      float64
	Axis         Vector
	StartAngle   float64
	EndAngle     float64
	Construction bool
}

// Ellipse is a full ellipse (Part.Ellipse).
type Ellipse struct {
	Center       Vector
	MajorRadius  float64
	MinorRadius  float64
	AngleXU      float64
	Axis         Vector
	Construction bool
}

// ArcOfEllipse is an arc of an ellipse (Part.ArcOfEllipse).
type ArcOfEllipse struct {
	Center       Vector
	MajorRadius  float64
	MinorRadius  float64
	AngleXU      float64
	Axis         Vector
	StartAngle   float64
	EndAngle     float64
	Construction bool
}

// Hyperbola is a full hyperbola (Part.Hyperbola).
type Hyperbola struct {
	Center       Vector
	MajorRadius  float64
	MinorRadius  float64
	AngleXU      float64
	Axis         Vector
	Construction bool
}

// ArcOfHyperbola is an arc of a hyperbola (Part.ArcOfHyperbola).
type ArcOfHyperbola struct {
	Center       Vector
	MajorRadius  float64
	MinorRadius  float64
	AngleXU      float64
	Axis         Vector
	StartAngle   float64
	EndAngle     float64
	Construction bool
}

// Parabola is a full parabola (Part.Parabola). Focal is the focal distance;
// the semi-latus rectum is 2*Focal.
type Parabola struct {
	Center       Vector
	Focal        float64
	AngleXU      float64
	Axis         Vector
	Construction bool
}

// ArcOfParabola is an arc of a parabola (Part.ArcOfParabola).
type ArcOfParabola struct {
	Center       Vector
	Focal        float64
	AngleXU      float64
	Axis         Vector
	StartAngle   float64
	EndAngle     float64
	Construction bool
}

// BSplinePole is one control point of a B-spline curve with its weight.
type BSplinePole struct {
	Point  Vector
	Weight float64
}

// BSplineKnot is one parametric breakpoint of a B-spline curve with its
// multiplicity.
type BSplineKnot struct {
	Value float64
	Mult  int
}

// BSplineCurve is a B-spline curve (Part.BSplineCurve). Poles and Knots are
// in stored document order.
type BSplineCurve struct {
	Degree       int
	Periodic     bool
	Poles        []BSplinePole
	Knots        []BSplineKnot
	Construction bool
}

func (g Point) Kind() string          { return KindPoint }
func (g Line) Kind() string           { return KindLine }
func (g LineSegment) Kind() string    { return KindLineSegment }
func (g Circle) Kind() string         { return KindCircle }
func (g ArcOfCircle) Kind() string    { return KindArcOfCircle }
func (g Ellipse) Kind() string        { return KindEllipse }
func (g ArcOfEllipse) Kind() string   { return KindArcOfEllipse }
func (g Hyperbola) Kind() string      { return KindHyperbola }
func (g ArcOfHyperbola) Kind() string { return KindArcOfHyperbola }
func (g Parabola) Kind() string       { return KindParabola }
func (g ArcOfParabola) Kind() string  { return KindArcOfParabola }
func (g BSplineCurve) Kind() string   { return KindBSplineCurve }

func (g Point) IsConstruction() bool          { return g.Construction }
func (g Line) IsConstruction() bool           { return g.Construction }
func (g LineSegment) IsConstruction() bool    { return g.Construction }
func (g Circle) IsConstruction() bool         { return g.Construction }
func (g ArcOfCircle) IsConstruction() bool    { return g.Construction }
func (g Ellipse) IsConstruction() bool        { return g.Construction }
func (g ArcOfEllipse) IsConstruction() bool   { return g.Construction }
func (g Hyperbola) IsConstruction() bool      { return g.Construction }
func (g ArcOfHyperbola) IsConstruction() bool { return g.Construction }
func (g Parabola) IsConstruction() bool       { return g.Construction }
func (g ArcOfParabola) IsConstruction() bool  { return g.Construction }
func (g BSplineCurve) IsConstruction() bool   { return g.Construction }

func (Point) sealedGeometry()          {}
func (Line) sealedGeometry()           {}
func (LineSegment) sealedGeometry()    {}
func (Circle) sealedGeometry()         {}
func (ArcOfCircle) sealedGeometry()    {}
func (Ellipse) sealedGeometry()        {}
func (ArcOfEllipse) sealedGeometry()   {}
func (Hyperbola) sealedGeometry()      {}
func (ArcOfHyperbola) sealedGeometry() {}
func (Parabola) sealedGeometry()       {}
func (ArcOfParabola) sealedGeometry()  {}
func (BSplineCurve) sealedGeometry()   {}
