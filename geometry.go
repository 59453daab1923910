// Copyright 2026 The hittest (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hittest

import (
	"github.com/gogama/hittest/packedrtree"
)

// A Coord is a position in map units.
type Coord struct {
	X float64
	Y float64
}

// GeometryType identifies the shape variant stored in a Geometry.
type GeometryType int

const (
	// TypePoint is a single coordinate.
	TypePoint GeometryType = iota
	// TypeLineString is an ordered sequence of two or more
	// coordinates.
	TypeLineString
	// TypePolygon is one or more rings. Only the first (exterior)
	// ring participates in hit detection; holes are not modeled.
	TypePolygon
	// TypeExtent is any geometry the engine does not specialize,
	// reduced to its axis-aligned bounding box.
	TypeExtent
)

// String returns the name of the geometry type.
func (t GeometryType) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypePolygon:
		return "Polygon"
	case TypeExtent:
		return "Extent"
	default:
		return "Unknown"
	}
}

// A Geometry is a closed tagged union over the shape variants the
// engine understands. Construct one with NewPoint, NewLineString,
// NewPolygon or NewExtent. A Geometry is immutable after
// construction; the constructors copy their inputs.
type Geometry struct {
	typ    GeometryType
	coords []Coord
	rings  [][]Coord
	bounds packedrtree.Box
}

// NewPoint creates a point geometry at the given coordinate.
func NewPoint(c Coord) *Geometry {
	return &Geometry{
		typ:    TypePoint,
		coords: []Coord{c},
		bounds: packedrtree.Box{XMin: c.X, YMin: c.Y, XMax: c.X, YMax: c.Y},
	}
}

// NewLineString creates a line string geometry from an ordered
// sequence of at least two coordinates.
func NewLineString(coords []Coord) (*Geometry, error) {
	if len(coords) < 2 {
		return nil, fmtErr("line string requires at least 2 coordinates, got %d", len(coords))
	}
	dup := make([]Coord, len(coords))
	copy(dup, coords)
	return &Geometry{
		typ:    TypeLineString,
		coords: dup,
		bounds: coordsBounds(dup),
	}, nil
}

// NewPolygon creates a polygon geometry from one or more rings. Each
// ring must contain at least three coordinates and is treated as
// closed whether or not the last coordinate repeats the first. Only
// the first ring, the exterior, participates in hit detection.
func NewPolygon(rings [][]Coord) (*Geometry, error) {
	if len(rings) < 1 {
		return nil, textErr("polygon requires at least 1 ring")
	}
	dup := make([][]Coord, len(rings))
	for i := range rings {
		if len(rings[i]) < 3 {
			return nil, fmtErr("polygon ring %d requires at least 3 coordinates, got %d", i, len(rings[i]))
		}
		dup[i] = make([]Coord, len(rings[i]))
		copy(dup[i], rings[i])
	}
	return &Geometry{
		typ:    TypePolygon,
		rings:  dup,
		bounds: coordsBounds(dup[0]),
	}, nil
}

// NewExtent creates an extent geometry: an unspecialized shape known
// to the engine only by its axis-aligned bounding box.
func NewExtent(b packedrtree.Box) *Geometry {
	return &Geometry{
		typ:    TypeExtent,
		bounds: b,
	}
}

// Type returns the shape variant stored in the geometry.
func (g *Geometry) Type() GeometryType {
	return g.typ
}

// Bounds returns the axis-aligned bounding box of the geometry.
func (g *Geometry) Bounds() packedrtree.Box {
	return g.bounds
}

// Coords returns the coordinate sequence of a point or line string
// geometry, or nil for other types. The returned slice is owned by
// the geometry and must not be modified.
func (g *Geometry) Coords() []Coord {
	return g.coords
}

// ExteriorRing returns the exterior ring of a polygon geometry, or
// nil for other types. The returned slice is owned by the geometry
// and must not be modified.
func (g *Geometry) ExteriorRing() []Coord {
	if g.typ != TypePolygon {
		return nil
	}
	return g.rings[0]
}

// Rings returns all rings of a polygon geometry, or nil for other
// types. The returned slices are owned by the geometry and must not
// be modified.
func (g *Geometry) Rings() [][]Coord {
	return g.rings
}

func coordsBounds(coords []Coord) packedrtree.Box {
	b := packedrtree.EmptyBox
	for i := range coords {
		b.ExpandXY(coords[i].X, coords[i].Y)
	}
	return b
}
