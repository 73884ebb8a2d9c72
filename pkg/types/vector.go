// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the immutable data model produced by a sketch scan:
// vectors, the closed set of geometry variants, constraints, and the Sketch
// record itself. Field names follow the FreeCAD Python API (e.g.
// sketch.Geometry[0].StartPoint, constraint.First) so downstream tooling can
// map results back to FreeCAD documentation.
package types

// Vector is a 3D coordinate triple, matching FreeCAD's App.Vector.
// The zero value is the origin.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}
