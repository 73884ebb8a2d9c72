// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document materializes a FreeCAD Document.xml byte stream into a
// generic named-property tree. FreeCAD property payloads are heterogeneous
// (a <Property> may carry a <String>, a <Bool>, a <GeometryList>, ...), so
// the tree is kept generic and decoders read typed attributes off it with
// documented defaults.
package document

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Element is one node of the decoded tree: a tag, its attributes, and its
// child elements in document order. Character data is discarded; the format
// stores everything in attributes.
type Element struct {
	Tag      string
	Children []*Element

	attrs map[string]string
}

// UnmarshalXML decodes the element's attributes and recursively decodes its
// children until the matching end tag.
func (e *Element) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	e.Tag = start.Name.Local
	if len(start.Attr) > 0 {
		e.attrs = make(map[string]string, len(start.Attr))
		for _, a := range start.Attr {
			e.attrs[a.Name.Local] = a.Value
		}
	}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &Element{}
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			e.Children = append(e.Children, child)
		case xml.EndElement:
			return nil
		}
	}
}

// Parse reads one XML document from r and returns its root element.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, errors.New("document has no root element")
		}
		if err != nil {
			return nil, fmt.Errorf("parsing document: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			root := &Element{}
			if err := root.UnmarshalXML(dec, start); err != nil {
				return nil, fmt.Errorf("parsing document: %w", err)
			}
			return root, nil
		}
	}
}

// Child returns the first child with the given tag, or nil.
func (e *Element) Child(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// ChildrenByTag returns all children with the given tag, in document order.
func (e *Element) ChildrenByTag(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Attr returns the named attribute's raw value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// FindProperty returns the <Property name="..."> child of a property list
// element, or nil when absent. Absence is not an error; callers supply
// field-level defaults.
func FindProperty(props *Element, name string) *Element {
	for _, c := range props.Children {
		if c.Tag != "Property" {
			continue
		}
		if n, ok := c.Attr("name"); ok && n == name {
			return c
		}
	}
	return nil
}
