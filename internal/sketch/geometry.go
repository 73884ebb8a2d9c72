// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sketch decodes Sketcher::SketchObject data out of a FreeCAD
// property tree: geometry elements, constraints, and whole-sketch assembly.
package sketch

import (
	"fmt"

	"github.com/pdiddy/fcsketch/internal/document"
	"github.com/pdiddy/fcsketch/pkg/types"
)

// decodeConstruction reads the optional <Construction value="1"/> child.
func decodeConstruction(geomEl *document.Element) bool {
	c := geomEl.Child("Construction")
	if c == nil {
		return false
	}
	return document.NewReader(c).Flag("value", false)
}

// vec3 reads three float attributes as a vector, each defaulting to 0.
func vec3(r *document.Reader, xAttr, yAttr, zAttr string) types.Vector {
	return types.Vector{
		X: r.Float(xAttr, 0),
		Y: r.Float(yAttr, 0),
		Z: r.Float(zAttr, 0),
	}
}

// axisOf reads the curve's normal axis, defaulting to (0,0,1): a curve
// stored without a normal lies flat in the sketch plane.
func axisOf(r *document.Reader) types.Vector {
	return types.Vector{
		X: r.Float("NormalX", 0),
		Y: r.Float("NormalY", 0),
		Z: r.Float("NormalZ", 1),
	}
}

// decodeGeometry converts one <Geometry type="..."> node into its variant.
func decodeGeometry(geomEl *document.Element) (types.Geometry, error) {
	kind := document.NewReader(geomEl).Str("type", "")
	construction := decodeConstruction(geomEl)

	require := func(tag string) (*document.Reader, error) {
		el := geomEl.Child(tag)
		if el == nil {
			return nil, fmt.Errorf("%w: geometry %q missing <%s>", ErrMalformedGeometry, kind, tag)
		}
		return document.NewReader(el), nil
	}

	var (
		g   types.Geometry
		err error
	)
	switch kind {
	case types.KindPoint:
		var r *document.Reader
		if r, err = require("GeomPoint"); err != nil {
			return nil, err
		}
		g = types.Point{
			X:            r.Float("X", 0),
			Y:            r.Float("Y", 0),
			Z:            r.Float("Z", 0),
			Construction: construction,
		}
		err = r.Err()

	case types.KindLine:
		var r *document.Reader
		if r, err = require("GeomLine"); err != nil {
			return nil, err
		}
		g = types.Line{
			Location:     vec3(r, "PosX", "PosY", "PosZ"),
			Direction:    vec3(r, "DirX", "DirY", "DirZ"),
			Construction: construction,
		}
		err = r.Err()

	case types.KindLineSegment:
		var r *document.Reader
		if r, err = require("LineSegment"); err != nil {
			return nil, err
		}
		g = types.LineSegment{
			StartPoint:   vec3(r, "StartX", "StartY", "StartZ"),
			EndPoint:     vec3(r, "EndX", "EndY", "EndZ"),
			Construction: construction,
		}
		err = r.Err()

	case types.KindCircle:
		var r *document.Reader
		if r, err = require("Circle"); err != nil {
			return nil, err
		}
		g = types.Circle{
			Center:       vec3(r, "CenterX", "CenterY", "CenterZ"),
			Radius:       r.Float("Radius", 0),
			AngleXU:      r.Float("AngleXU", 0),
			Axis:         axisOf(r),
			Construction: construction,
		}
		err = r.Err()

	case types.KindArcOfCircle:
		var r *document.Reader
		if r, err = require("ArcOfCircle"); err != nil {
			return nil, err
		}
		g = types.ArcOfCircle{
			Center:       vec3(r, "CenterX", "CenterY", "CenterZ"),
			Radius:       r.Float("Radius", 0),
			AngleXU:      r.Float("AngleXU", 0),
			Axis:         axisOf(r),
			StartAngle:   r.Float("StartAngle", 0),
			EndAngle:     r.Float("EndAngle", 0),
			Construction: construction,
		}
		err = r.Err()

	case types.KindEllipse:
		var r *document.Reader
		if r, err = require("Ellipse"); err != nil {
			return nil, err
		}
		g = types.Ellipse{
			Center:       vec3(r, "CenterX", "CenterY", "CenterZ"),
			MajorRadius:  r.Float("MajorRadius", 0),
			MinorRadius:  r.Float("MinorRadius", 0),
			AngleXU:      r.Float("AngleXU", 0),
			Axis:         axisOf(r),
			Construction: construction,
		}
		err = r.Err()

	case types.KindArcOfEllipse:
		var r *document.Reader
		if r, err = require("ArcOfEllipse"); err != nil {
			return nil, err
		}
		g = types.ArcOfEllipse{
			Center:       vec3(r, "CenterX", "CenterY", "CenterZ"),
			MajorRadius:  r.Float("MajorRadius", 0),
			MinorRadius:  r.Float("MinorRadius", 0),
			AngleXU:      r.Float("AngleXU", 0),
			Axis:         axisOf(r),
			StartAngle:   r.Float("StartAngle", 0),
			EndAngle:     r.Float("EndAngle", 0),
			Construction: construction,
		}
		err = r.Err()

	case types.KindHyperbola:
		var r *document.Reader
		if r, err = require("Hyperbola"); err != nil {
			return nil, err
		}
		g = types.Hyperbola{
			Center:       vec3(r, "CenterX", "CenterY", "CenterZ"),
			MajorRadius:  r.Float("MajorRadius", 0),
			MinorRadius:  r.Float("MinorRadius", 0),
			AngleXU:      r.Float("AngleXU", 0),
			Axis:         axisOf(r),
			Construction: construction,
		}
		err = r.Err()

	case types.KindArcOfHyperbola:
		var r *document.Reader
		if r, err = require("ArcOfHyperbola"); err != nil {
			return nil, err
		}
		g = types.ArcOfHyperbola{
			Center:       vec3(r, "CenterX", "CenterY", "CenterZ"),
			MajorRadius:  r.Float("MajorRadius", 0),
			MinorRadius:  r.Float("MinorRadius", 0),
			AngleXU:      r.Float("AngleXU", 0),
			Axis:         axisOf(r),
			StartAngle:   r.Float("StartAngle", 0),
			EndAngle:     r.Float("EndAngle", 0),
			Construction: construction,
		}
		err = r.Err()

	case types.KindParabola:
		var r *document.Reader
		if r, err = require("Parabola"); err != nil {
			return nil, err
		}
		g = types.Parabola{
			Center:       vec3(r, "CenterX", "CenterY", "CenterZ"),
			Focal:        r.Float("Focal", 0),
			AngleXU:      r.Float("AngleXU", 0),
			Axis:         axisOf(r),
			Construction: construction,
		}
		err = r.Err()

	case types.KindArcOfParabola:
		var r *document.Reader
		if r, err = require("ArcOfParabola"); err != nil {
			return nil, err
		}
		g = types.ArcOfParabola{
			Center:       vec3(r, "CenterX", "CenterY", "CenterZ"),
			Focal:        r.Float("Focal", 0),
			AngleXU:      r.Float("AngleXU", 0),
			Axis:         axisOf(r),
			StartAngle:   r.Float("StartAngle", 0),
			EndAngle:     r.Float("EndAngle", 0),
			Construction: construction,
		}
		err = r.Err()

	case types.KindBSplineCurve:
		el := geomEl.Child("BSplineCurve")
		if el == nil {
			return nil, fmt.Errorf("%w: geometry %q missing <BSplineCurve>", ErrMalformedGeometry, kind)
		}
		g, err = decodeBSpline(el, construction)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGeometry, kind)
	}

	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", kind, err)
	}
	return g, nil
}

// decodeBSpline reads a <BSplineCurve> element, collecting interleaved
// <Pole> and <Knot> children into two ordered sequences.
func decodeBSpline(el *document.Element, construction bool) (types.Geometry, error) {
	r := document.NewReader(el)
	curve := types.BSplineCurve{
		Degree:       r.Int("Degree", 0),
		Periodic:     r.Flag("IsPeriodic", false),
		Construction: construction,
	}

	for _, child := range el.Children {
		cr := document.NewReader(child)
		switch child.Tag {
		case "Pole":
			curve.Poles = append(curve.Poles, types.BSplinePole{
				Point:  vec3(cr, "X", "Y", "Z"),
				Weight: cr.Float("Weight", 1.0),
			})
		case "Knot":
			curve.Knots = append(curve.Knots, types.BSplineKnot{
				Value: cr.Float("Value", 0),
				Mult:  cr.Int("Mult", 1),
			})
		}
		if err := cr.Err(); err != nil {
			return nil, err
		}
	}

	return curve, r.Err()
}

// decodeGeometryList reads the <Geometry> children of a property's
// <GeometryList>, preserving document order. A missing list yields an empty
// sequence.
func decodeGeometryList(prop *document.Element) ([]types.Geometry, error) {
	listEl := prop.Child("GeometryList")
	if listEl == nil {
		return nil, nil
	}
	var out []types.Geometry
	for i, geomEl := range listEl.ChildrenByTag("Geometry") {
		g, err := decodeGeometry(geomEl)
		if err != nil {
			return nil, fmt.Errorf("geometry %d: %w", i, err)
		}
		out = append(out, g)
	}
	return out, nil
}

// decodeExternalGeometry reads an external-geometry property into both its
// ordered sequence and its map keyed by the stored id. An element without an
// id attribute stays in the sequence but is omitted from the map.
func decodeExternalGeometry(prop *document.Element) ([]types.Geometry, map[int]types.Geometry, error) {
	listEl := prop.Child("GeometryList")
	if listEl == nil {
		return nil, nil, nil
	}
	var seq []types.Geometry
	byID := make(map[int]types.Geometry)
	for i, geomEl := range listEl.ChildrenByTag("Geometry") {
		g, err := decodeGeometry(geomEl)
		if err != nil {
			return nil, nil, fmt.Errorf("external geometry %d: %w", i, err)
		}
		seq = append(seq, g)

		r := document.NewReader(geomEl)
		if _, ok := geomEl.Attr("id"); ok {
			id := r.Int("id", 0)
			if err := r.Err(); err != nil {
				return nil, nil, fmt.Errorf("external geometry %d: %w", i, err)
			}
			byID[id] = g
		}
	}
	return seq, byID, nil
}
