package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/fcsketch/internal/sketch"
	"github.com/pdiddy/fcsketch/pkg/types"
)

// readSketches scans one input file. A .xml suffix selects the raw
// Document.xml path; anything else is treated as an .FCStd archive.
func readSketches(path string) (map[string]types.Sketch, error) {
	if strings.EqualFold(filepath.Ext(path), ".xml") {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		return sketch.Scan(f)
	}
	return sketch.ReadFile(path)
}
