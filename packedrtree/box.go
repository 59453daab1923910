// Copyright 2026 The hittest (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package packedrtree

import (
	"fmt"
	"math"
)

// A Box is an axis-aligned bounding rectangle.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// EmptyBox is the null rectangle, the identity element of Expand.
// Expanding any box by EmptyBox leaves the box unchanged, and
// expanding EmptyBox by any box yields that box. EmptyBox intersects
// nothing, including itself.
//
// Use EmptyBox, not the zero Box, as the starting value when
// accumulating the extent of a set of boxes. The zero Box contains
// the origin.
var EmptyBox = Box{
	XMin: math.Inf(1),
	YMin: math.Inf(1),
	XMax: math.Inf(-1),
	YMax: math.Inf(-1),
}

// String returns a compact text representation of the box.
func (b Box) String() string {
	return fmt.Sprintf("[%.8g,%.8g,%.8g,%.8g]", b.XMin, b.YMin, b.XMax, b.YMax)
}

// Width returns the horizontal size of the box.
func (b *Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the vertical size of the box.
func (b *Box) Height() float64 {
	return b.YMax - b.YMin
}

func (b *Box) midX() float64 {
	return (b.XMin + b.XMax) / 2
}

func (b *Box) midY() float64 {
	return (b.YMin + b.YMax) / 2
}

// Expand grows b to the smallest box containing both b and c. The
// parameter box is not modified.
func (b *Box) Expand(c *Box) {
	if c.XMin < b.XMin {
		b.XMin = c.XMin
	}
	if c.YMin < b.YMin {
		b.YMin = c.YMin
	}
	if c.XMax > b.XMax {
		b.XMax = c.XMax
	}
	if c.YMax > b.YMax {
		b.YMax = c.YMax
	}
}

// ExpandXY grows b to the smallest box containing both b and the
// point (x, y).
func (b *Box) ExpandXY(x, y float64) {
	if x < b.XMin {
		b.XMin = x
	}
	if y < b.YMin {
		b.YMin = y
	}
	if x > b.XMax {
		b.XMax = x
	}
	if y > b.YMax {
		b.YMax = y
	}
}

// Buffer grows the box outward by the distance d on all four sides.
func (b *Box) Buffer(d float64) {
	b.XMin -= d
	b.YMin -= d
	b.XMax += d
	b.YMax += d
}

// ContainsXY reports whether the point (x, y) lies within the box,
// boundary included.
func (b *Box) ContainsXY(x, y float64) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

func (b *Box) intersects(o *Box) bool {
	if b.XMax < o.XMin {
		return false
	}
	if b.YMax < o.YMin {
		return false
	}
	if b.XMin > o.XMax {
		return false
	}
	if b.YMin > o.YMax {
		return false
	}
	return true
}
