// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"strconv"
)

// Reader reads typed attributes off one element. A missing attribute yields
// the caller's default; a present but unconvertible one records the first
// error, checked once via Err after the reads. Every optional field's
// default in the format flows through here.
type Reader struct {
	el  *Element
	err error
}

// NewReader wraps el for typed attribute reads.
func NewReader(el *Element) *Reader {
	return &Reader{el: el}
}

// Err returns the first conversion error encountered, or nil.
func (r *Reader) Err() error {
	return r.err
}

// Str returns the named attribute or def when absent.
func (r *Reader) Str(name, def string) string {
	v, ok := r.el.Attr(name)
	if !ok {
		return def
	}
	return v
}

// Float returns the named attribute parsed as float64, or def when absent.
func (r *Reader) Float(name string, def float64) float64 {
	v, ok := r.el.Attr(name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(name, v, err)
		return def
	}
	return f
}

// Int returns the named attribute parsed as int, or def when absent.
func (r *Reader) Int(name string, def int) int {
	v, ok := r.el.Attr(name)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		r.fail(name, v, err)
		return def
	}
	return i
}

// Flag returns whether the named attribute holds "1", or def when absent.
// FreeCAD encodes boolean attributes as "0"/"1".
func (r *Reader) Flag(name string, def bool) bool {
	v, ok := r.el.Attr(name)
	if !ok {
		return def
	}
	return v == "1"
}

func (r *Reader) fail(name, value string, err error) {
	if r.err == nil {
		r.err = fmt.Errorf("attribute %s=%q on <%s>: %w", name, value, r.el.Tag, err)
	}
}
