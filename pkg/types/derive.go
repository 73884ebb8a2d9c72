// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "math"

// Derived geometry math. All curve parameters are stored in the curve's
// local frame: a point (localX, localY) is rotated by AngleXU and, when the
// normal axis points into the sketch plane (Axis.Z < 0), mirrored across the
// rotated X axis. The conventions match the FreeCAD geometry kernel.

// mirrorSign returns +1 for a normal axis on or above the sketch plane and
// -1 for one below it (the sketch plane viewed from the back).
func mirrorSign(axisZ float64) float64 {
	if axisZ >= 0 {
		return 1.0
	}
	return -1.0
}

// rotateMirror maps a local-frame point onto the sketch plane around center.
// The Z coordinate is taken from the center unchanged.
func rotateMirror(center Vector, localX, localY, angleXU, axisZ float64) Vector {
	cos := math.Cos(angleXU)
	sin := math.Sin(angleXU)
	sign := mirrorSign(axisZ)
	return Vector{
		X: center.X + localX*cos - localY*sin*sign,
		Y: center.Y + localX*sin + localY*cos*sign,
		Z: center.Z,
	}
}

// circlePoint evaluates a point on a circle at parameter angle. For pure
// circular curves AngleXU folds additively into the parameter and the mirror
// applies to the sine term alone.
func circlePoint(center Vector, radius, angle, angleXU, axisZ float64) Vector {
	effective := angleXU + angle
	return Vector{
		X: center.X + radius*math.Cos(effective),
		Y: center.Y + radius*math.Sin(effective)*mirrorSign(axisZ),
		Z: center.Z,
	}
}

// ellipsePoint evaluates a point on an ellipse at parameter angle.
func ellipsePoint(center Vector, major, minor, angle, angleXU, axisZ float64) Vector {
	return rotateMirror(center, major*math.Cos(angle), minor*math.Sin(angle), angleXU, axisZ)
}

// hyperbolaPoint evaluates a point on a hyperbola at parameter angle.
func hyperbolaPoint(center Vector, major, minor, angle, angleXU, axisZ float64) Vector {
	return rotateMirror(center, major*math.Cosh(angle), minor*math.Sinh(angle), angleXU, axisZ)
}

// parabolaPoint evaluates a point on a parabola at parameter t, with
// semi-latus rectum p = 2*focal.
func parabolaPoint(center Vector, focal, t, angleXU, axisZ float64) Vector {
	p := 2.0 * focal
	return rotateMirror(center, p*t*t/2.0, p*t, angleXU, axisZ)
}

// StartPoint returns the start point of g. The second result is false for
// variants without endpoints (Point, Line, and the full closed curves).
// A B-spline's start point is its first pole's location, not a curve
// evaluation; an empty pole sequence yields the zero vector.
func StartPoint(g Geometry) (Vector, bool) {
	switch g := g.(type) {
	case LineSegment:
		return g.StartPoint, true
	case ArcOfCircle:
		return circlePoint(g.Center, g.Radius, g.StartAngle, g.AngleXU, g.Axis.Z), true
	case ArcOfEllipse:
		return ellipsePoint(g.Center, g.MajorRadius, g.MinorRadius, g.StartAngle, g.AngleXU, g.Axis.Z), true
	case ArcOfHyperbola:
		return hyperbolaPoint(g.Center, g.MajorRadius, g.MinorRadius, g.StartAngle, g.AngleXU, g.Axis.Z), true
	case ArcOfParabola:
		return parabolaPoint(g.Center, g.Focal, g.StartAngle, g.AngleXU, g.Axis.Z), true
	case BSplineCurve:
		if len(g.Poles) == 0 {
			return Vector{}, true
		}
		return g.Poles[0].Point, true
	case Point, Line, Circle, Ellipse, Hyperbola, Parabola:
		return Vector{}, false
	}
	return Vector{}, false
}

// EndPoint returns the end point of g, under the same rules as StartPoint.
func EndPoint(g Geometry) (Vector, bool) {
	switch g := g.(type) {
	case LineSegment:
		return g.EndPoint, true
	case ArcOfCircle:
		return circlePoint(g.Center, g.Radius, g.EndAngle, g.AngleXU, g.Axis.Z), true
	case ArcOfEllipse:
		return ellipsePoint(g.Center, g.MajorRadius, g.MinorRadius, g.EndAngle, g.AngleXU, g.Axis.Z), true
	case ArcOfHyperbola:
		return hyperbolaPoint(g.Center, g.MajorRadius, g.MinorRadius, g.EndAngle, g.AngleXU, g.Axis.Z), true
	case ArcOfParabola:
		return parabolaPoint(g.Center, g.Focal, g.EndAngle, g.AngleXU, g.Axis.Z), true
	case BSplineCurve:
		if len(g.Poles) == 0 {
			return Vector{}, true
		}
		return g.Poles[len(g.Poles)-1].Point, true
	case Point, Line, Circle, Ellipse, Hyperbola, Parabola:
		return Vector{}, false
	}
	return Vector{}, false
}

// Focal returns the focal distance sqrt(|a^2 - b^2|).
func (g Ellipse) Focal() float64 {
	return math.Sqrt(math.Abs(g.MajorRadius*g.MajorRadius - g.MinorRadius*g.MinorRadius))
}

// Focus1 returns the focus on the positive major axis. Foci lie on the
// rotated major axis and are not mirrored by the normal direction.
func (g Ellipse) Focus1() Vector {
	f := g.Focal()
	return Vector{
		X: g.Center.X + f*math.Cos(g.AngleXU),
		Y: g.Center.Y + f*math.Sin(g.AngleXU),
		Z: g.Center.Z,
	}
}

// Focus2 returns the focus on the negative major axis.
func (g Ellipse) Focus2() Vector {
	f := g.Focal()
	return Vector{
		X: g.Center.X - f*math.Cos(g.AngleXU),
		Y: g.Center.Y - f*math.Sin(g.AngleXU),
		Z: g.Center.Z,
	}
}

// KnotSequence expands each knot into Mult repetitions of its value, in
// stored knot order. Ascending order is trusted, not enforced.
func (g BSplineCurve) KnotSequence() []float64 {
	var seq []float64
	for _, k := range g.Knots {
		for i := 0; i < k.Mult; i++ {
			seq = append(seq, k.Value)
		}
	}
	return seq
}
