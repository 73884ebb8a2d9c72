// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive extracts the Document.xml byte stream from an .FCStd
// file, the zip container FreeCAD saves documents into. The container is
// not interpreted beyond locating that one entry.
package archive

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// DocumentEntry is the archive entry holding the property-tree document.
const DocumentEntry = "Document.xml"

// DocumentXML reads the Document.xml entry from the .FCStd archive at path.
func DocumentXML(path string) ([]byte, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	defer zr.Close()

	zr.RegisterDecompressor(zip.Deflate, func(r io.Reader) io.ReadCloser {
		return flate.NewReader(r)
	})

	f, err := zr.Open(DocumentEntry)
	if err != nil {
		return nil, fmt.Errorf("archive %s has no %s entry: %w", path, DocumentEntry, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s from %s: %w", DocumentEntry, path, err)
	}
	return data, nil
}
