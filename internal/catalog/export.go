// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/fcsketch/pkg/types"
)

// ExportGeometry is one geometry element flattened for serialization, with
// a kind discriminator and the derived endpoints filled in where defined.
type ExportGeometry struct {
	Kind         string `json:"kind" yaml:"kind"`
	Construction bool   `json:"construction" yaml:"construction"`

	Start     *types.Vector `json:"start,omitempty" yaml:"start,omitempty"`
	End       *types.Vector `json:"end,omitempty" yaml:"end,omitempty"`
	Center    *types.Vector `json:"center,omitempty" yaml:"center,omitempty"`
	Location  *types.Vector `json:"location,omitempty" yaml:"location,omitempty"`
	Direction *types.Vector `json:"direction,omitempty" yaml:"direction,omitempty"`

	Radius      *float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	MajorRadius *float64 `json:"major_radius,omitempty" yaml:"major_radius,omitempty"`
	MinorRadius *float64 `json:"minor_radius,omitempty" yaml:"minor_radius,omitempty"`
	Focal       *float64 `json:"focal,omitempty" yaml:"focal,omitempty"`
	AngleXU     *float64 `json:"angle_xu,omitempty" yaml:"angle_xu,omitempty"`
	StartAngle  *float64 `json:"start_angle,omitempty" yaml:"start_angle,omitempty"`
	EndAngle    *float64 `json:"end_angle,omitempty" yaml:"end_angle,omitempty"`

	Focus1 *types.Vector `json:"focus1,omitempty" yaml:"focus1,omitempty"`
	Focus2 *types.Vector `json:"focus2,omitempty" yaml:"focus2,omitempty"`

	Degree       *int      `json:"degree,omitempty" yaml:"degree,omitempty"`
	Periodic     *bool     `json:"periodic,omitempty" yaml:"periodic,omitempty"`
	PoleCount    *int      `json:"pole_count,omitempty" yaml:"pole_count,omitempty"`
	KnotSequence []float64 `json:"knot_sequence,omitempty" yaml:"knot_sequence,omitempty"`
}

// ExportSketch is one sketch flattened for serialization. ExternalByID
// mirrors the sketch's id-keyed external map; ids are the stored negative
// integers.
type ExportSketch struct {
	Name             string                 `json:"name" yaml:"name"`
	Label            string                 `json:"label" yaml:"label"`
	FullyConstrained bool                   `json:"fully_constrained" yaml:"fully_constrained"`
	Geometry         []ExportGeometry       `json:"geometry" yaml:"geometry"`
	ExternalGeometry []ExportGeometry       `json:"external_geometry,omitempty" yaml:"external_geometry,omitempty"`
	ExternalByID     map[int]ExportGeometry `json:"external_by_id,omitempty" yaml:"external_by_id,omitempty"`
	Constraints      []types.Constraint     `json:"constraints" yaml:"constraints"`
}

// Export flattens a scan result into export records, ordered by sketch name.
func Export(sketches map[string]types.Sketch) []ExportSketch {
	names := make([]string, 0, len(sketches))
	for name := range sketches {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]ExportSketch, 0, len(names))
	for _, name := range names {
		sk := sketches[name]
		es := ExportSketch{
			Name:             sk.Name,
			Label:            sk.Label,
			FullyConstrained: sk.FullyConstrained,
			Constraints:      sk.Constraints,
		}
		for _, g := range sk.Geometry {
			es.Geometry = append(es.Geometry, exportGeometry(g))
		}
		for _, g := range sk.ExternalGeo {
			es.ExternalGeometry = append(es.ExternalGeometry, exportGeometry(g))
		}
		if len(sk.ExternalGeoByID) > 0 {
			es.ExternalByID = make(map[int]ExportGeometry, len(sk.ExternalGeoByID))
			for id, g := range sk.ExternalGeoByID {
				es.ExternalByID[id] = exportGeometry(g)
			}
		}
		out = append(out, es)
	}
	return out
}

// WriteYAML serializes a scan result to w as YAML.
func WriteYAML(w io.Writer, sketches map[string]types.Sketch) error {
	data, err := yaml.Marshal(Export(sketches))
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON serializes a scan result to w as indented JSON.
func WriteJSON(w io.Writer, sketches map[string]types.Sketch) error {
	data, err := json.MarshalIndent(Export(sketches), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func exportGeometry(g types.Geometry) ExportGeometry {
	eg := ExportGeometry{
		Kind:         g.Kind(),
		Construction: g.IsConstruction(),
	}

	if start, ok := types.StartPoint(g); ok {
		end, _ := types.EndPoint(g)
		eg.Start = &start
		eg.End = &end
	}

	switch g := g.(type) {
	case types.Point:
		eg.Location = &types.Vector{X: g.X, Y: g.Y, Z: g.Z}
	case types.Line:
		eg.Location, eg.Direction = vptr(g.Location), vptr(g.Direction)
	case types.Circle:
		eg.Center, eg.Radius, eg.AngleXU = vptr(g.Center), fptr(g.Radius), fptr(g.AngleXU)
	case types.ArcOfCircle:
		eg.Center, eg.Radius, eg.AngleXU = vptr(g.Center), fptr(g.Radius), fptr(g.AngleXU)
		eg.StartAngle, eg.EndAngle = fptr(g.StartAngle), fptr(g.EndAngle)
	case types.Ellipse:
		eg.Center, eg.AngleXU = vptr(g.Center), fptr(g.AngleXU)
		eg.MajorRadius, eg.MinorRadius = fptr(g.MajorRadius), fptr(g.MinorRadius)
		eg.Focal = fptr(g.Focal())
		eg.Focus1, eg.Focus2 = vptr(g.Focus1()), vptr(g.Focus2())
	case types.ArcOfEllipse:
		eg.Center, eg.AngleXU = vptr(g.Center), fptr(g.AngleXU)
		eg.MajorRadius, eg.MinorRadius = fptr(g.MajorRadius), fptr(g.MinorRadius)
		eg.StartAngle, eg.EndAngle = fptr(g.StartAngle), fptr(g.EndAngle)
	case types.Hyperbola:
		eg.Center, eg.AngleXU = vptr(g.Center), fptr(g.AngleXU)
		eg.MajorRadius, eg.MinorRadius = fptr(g.MajorRadius), fptr(g.MinorRadius)
	case types.ArcOfHyperbola:
		eg.Center, eg.AngleXU = vptr(g.Center), fptr(g.AngleXU)
		eg.MajorRadius, eg.MinorRadius = fptr(g.MajorRadius), fptr(g.MinorRadius)
		eg.StartAngle, eg.EndAngle = fptr(g.StartAngle), fptr(g.EndAngle)
	case types.Parabola:
		eg.Center, eg.Focal, eg.AngleXU = vptr(g.Center), fptr(g.Focal), fptr(g.AngleXU)
	case types.ArcOfParabola:
		eg.Center, eg.Focal, eg.AngleXU = vptr(g.Center), fptr(g.Focal), fptr(g.AngleXU)
		eg.StartAngle, eg.EndAngle = fptr(g.StartAngle), fptr(g.EndAngle)
	case types.BSplineCurve:
		eg.Degree = iptr(g.Degree)
		eg.Periodic = bptr(g.Periodic)
		eg.PoleCount = iptr(len(g.Poles))
		eg.KnotSequence = g.KnotSequence()
	}
	return eg
}

func fptr(v float64) *float64           { return &v }
func iptr(v int) *int                   { return &v }
func bptr(v bool) *bool                 { return &v }
func vptr(v types.Vector) *types.Vector { return &v }
