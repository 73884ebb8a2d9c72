// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sketch

import (
	"fmt"

	"github.com/pdiddy/fcsketch/internal/document"
	"github.com/pdiddy/fcsketch/pkg/types"
)

// assembleSketch builds one Sketch from its <Object> block in <ObjectData>.
// Missing optional properties fall back to documented defaults; only decode
// errors from the geometry and constraint lists propagate.
func assembleSketch(objEl *document.Element, name string) (types.Sketch, error) {
	sk := types.Sketch{Name: name, Label: name}

	props := objEl.Child("Properties")
	if props == nil {
		return sk, nil
	}

	if labelProp := document.FindProperty(props, "Label"); labelProp != nil {
		if strEl := labelProp.Child("String"); strEl != nil {
			sk.Label = document.NewReader(strEl).Str("value", name)
		}
	}

	if geomProp := document.FindProperty(props, "Geometry"); geomProp != nil {
		geometry, err := decodeGeometryList(geomProp)
		if err != nil {
			return types.Sketch{}, fmt.Errorf("property Geometry: %w", err)
		}
		sk.Geometry = geometry
	}

	if extProp := document.FindProperty(props, "ExternalGeo"); extProp != nil {
		seq, byID, err := decodeExternalGeometry(extProp)
		if err != nil {
			return types.Sketch{}, fmt.Errorf("property ExternalGeo: %w", err)
		}
		sk.ExternalGeo = seq
		sk.ExternalGeoByID = byID
	}

	if consProp := document.FindProperty(props, "Constraints"); consProp != nil {
		constraints, err := decodeConstraints(consProp)
		if err != nil {
			return types.Sketch{}, fmt.Errorf("property Constraints: %w", err)
		}
		sk.Constraints = constraints
	}

	if fcProp := document.FindProperty(props, "FullyConstrained"); fcProp != nil {
		if boolEl := fcProp.Child("Bool"); boolEl != nil {
			sk.FullyConstrained = document.NewReader(boolEl).Str("value", "false") == "true"
		}
	}

	return sk, nil
}
