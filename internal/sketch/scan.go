// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sketch

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdiddy/fcsketch/internal/archive"
	"github.com/pdiddy/fcsketch/internal/document"
	"github.com/pdiddy/fcsketch/pkg/types"
)

// sketchObjectType is the declared type marking sketch objects in the
// document's object table.
const sketchObjectType = "Sketcher::SketchObject"

// Scan reads a Document.xml byte stream and returns every sketch object by
// name. A document with no sketch objects yields an empty map. Any decode
// error aborts the whole scan: the result is either complete or nil.
func Scan(r io.Reader) (map[string]types.Sketch, error) {
	root, err := document.Parse(r)
	if err != nil {
		return nil, err
	}
	return scanDocument(root)
}

// ReadFile reads sketches from an .FCStd archive on disk.
func ReadFile(path string) (map[string]types.Sketch, error) {
	data, err := archive.DocumentXML(path)
	if err != nil {
		return nil, err
	}
	return Scan(bytes.NewReader(data))
}

func scanDocument(root *document.Element) (map[string]types.Sketch, error) {
	names := sketchObjectNames(root)
	sketches := make(map[string]types.Sketch, len(names))
	if len(names) == 0 {
		return sketches, nil
	}

	if objData := root.Child("ObjectData"); objData != nil {
		for _, objEl := range objData.ChildrenByTag("Object") {
			name, ok := objEl.Attr("name")
			if !ok || !names[name] {
				continue
			}
			sk, err := assembleSketch(objEl, name)
			if err != nil {
				return nil, fmt.Errorf("sketch %s: %w", name, err)
			}
			sketches[name] = sk
		}
	}

	// A declared sketch whose data block is absent is still reported,
	// with empty geometry and constraints.
	for name := range names {
		if _, ok := sketches[name]; !ok {
			sketches[name] = types.Sketch{Name: name, Label: name}
		}
	}

	return sketches, nil
}

// sketchObjectNames collects the names of sketch-typed objects from the
// document's object table.
func sketchObjectNames(root *document.Element) map[string]bool {
	names := make(map[string]bool)
	objects := root.Child("Objects")
	if objects == nil {
		return names
	}
	for _, objEl := range objects.ChildrenByTag("Object") {
		typ, _ := objEl.Attr("type")
		if typ != sketchObjectType {
			continue
		}
		if name, ok := objEl.Attr("name"); ok && name != "" {
			names[name] = true
		}
	}
	return names
}
