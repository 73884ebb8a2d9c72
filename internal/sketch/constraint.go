// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sketch

import (
	"fmt"

	"github.com/pdiddy/fcsketch/internal/document"
	"github.com/pdiddy/fcsketch/pkg/types"
)

// decodeConstraint converts one <Constrain> node into a constraint record.
func decodeConstraint(el *document.Element) (types.Constraint, error) {
	r := document.NewReader(el)

	code := r.Int("Type", 0)
	kind, ok := types.ConstraintTypeFromCode(code)
	if !ok {
		return types.Constraint{}, fmt.Errorf("%w: code %d", ErrUnknownConstraintType, code)
	}

	c := types.Constraint{
		Type:           kind,
		Name:           r.Str("Name", ""),
		Value:          r.Float("Value", 0),
		First:          r.Int("First", types.NoGeometry),
		Second:         r.Int("Second", types.NoGeometry),
		Third:          r.Int("Third", types.NoGeometry),
		Driving:        r.Flag("IsDriving", true),
		InVirtualSpace: r.Flag("IsInVirtualSpace", false),
		IsActive:       r.Flag("IsActive", true),
		LabelDistance:  r.Float("LabelDistance", 10.0),
		LabelPosition:  r.Float("LabelPosition", 0),
	}

	for _, pos := range []struct {
		attr string
		dst  *types.PointPos
	}{
		{"FirstPos", &c.FirstPos},
		{"SecondPos", &c.SecondPos},
		{"ThirdPos", &c.ThirdPos},
	} {
		p, ok := types.PointPosFromCode(r.Int(pos.attr, 0))
		if !ok {
			return types.Constraint{}, fmt.Errorf("constraint %s: invalid %s code %q", kind, pos.attr, r.Str(pos.attr, ""))
		}
		*pos.dst = p
	}

	if err := r.Err(); err != nil {
		return types.Constraint{}, fmt.Errorf("constraint %s: %w", kind, err)
	}
	return c, nil
}

// decodeConstraints reads the <Constrain> children of a property's
// <ConstraintList>, preserving document order. A missing list yields an
// empty sequence.
func decodeConstraints(prop *document.Element) ([]types.Constraint, error) {
	listEl := prop.Child("ConstraintList")
	if listEl == nil {
		return nil, nil
	}
	var out []types.Constraint
	for i, el := range listEl.ChildrenByTag("Constrain") {
		c, err := decodeConstraint(el)
		if err != nil {
			return nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}
