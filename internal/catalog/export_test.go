package catalog

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/fcsketch/pkg/types"
)

func exportFixture() map[string]types.Sketch {
	ext := types.LineSegment{EndPoint: types.Vector{X: 1}, Construction: true}
	return map[string]types.Sketch{
		"Sketch": {
			Name:  "Sketch",
			Label: "BasePlate",
			Geometry: []types.Geometry{
				types.LineSegment{EndPoint: types.Vector{X: 67.5}},
				types.Ellipse{MajorRadius: 5, MinorRadius: 3, Axis: types.Vector{Z: 1}},
				types.BSplineCurve{
					Degree: 3,
					Poles: []types.BSplinePole{
						{Point: types.Vector{}, Weight: 1},
						{Point: types.Vector{X: 2, Y: 1}, Weight: 1},
					},
					Knots: []types.BSplineKnot{{Value: 0, Mult: 4}, {Value: 1, Mult: 4}},
				},
			},
			ExternalGeo:     []types.Geometry{ext},
			ExternalGeoByID: map[int]types.Geometry{-1: ext},
			Constraints: []types.Constraint{
				{Type: types.ConstraintRadius, Value: 4, First: 0, FirstPos: types.PosNone,
					Second: types.NoGeometry, Third: types.NoGeometry,
					SecondPos: types.PosNone, ThirdPos: types.PosNone,
					Driving: true, IsActive: true, LabelDistance: 10},
			},
		},
	}
}

func TestExportFlattening(t *testing.T) {
	out := Export(exportFixture())
	require.Len(t, out, 1)
	sk := out[0]

	require.Equal(t, "Sketch", sk.Name)
	require.Equal(t, "BasePlate", sk.Label)
	require.Len(t, sk.Geometry, 3)

	seg := sk.Geometry[0]
	require.Equal(t, types.KindLineSegment, seg.Kind)
	require.NotNil(t, seg.Start)
	require.NotNil(t, seg.End)
	require.Equal(t, 67.5, seg.End.X)

	ellipse := sk.Geometry[1]
	require.Equal(t, types.KindEllipse, ellipse.Kind)
	require.Nil(t, ellipse.Start)
	require.NotNil(t, ellipse.Focal)
	require.Equal(t, 4.0, *ellipse.Focal)
	require.NotNil(t, ellipse.Focus1)
	require.Equal(t, 4.0, ellipse.Focus1.X)
	require.Equal(t, -4.0, ellipse.Focus2.X)

	spline := sk.Geometry[2]
	require.Equal(t, types.KindBSplineCurve, spline.Kind)
	require.Equal(t, 3, *spline.Degree)
	require.Equal(t, 2, *spline.PoleCount)
	require.Equal(t, []float64{0, 0, 0, 0, 1, 1, 1, 1}, spline.KnotSequence)
	// Start point is the first pole's location.
	require.NotNil(t, spline.Start)
	require.Equal(t, 0.0, spline.Start.X)
	require.Equal(t, 2.0, spline.End.X)

	require.Len(t, sk.ExternalGeometry, 1)
	require.True(t, sk.ExternalGeometry[0].Construction)
	require.Contains(t, sk.ExternalByID, -1)
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, exportFixture()))

	var decoded []ExportSketch
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "BasePlate", decoded[0].Label)
	require.Len(t, decoded[0].Geometry, 3)
	require.Equal(t, types.ConstraintRadius, decoded[0].Constraints[0].Type)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, exportFixture()))

	var decoded []ExportSketch
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "Sketch", decoded[0].Name)
	require.Equal(t, 4.0, decoded[0].Constraints[0].Value)
	require.True(t, decoded[0].Constraints[0].Driving)
}
