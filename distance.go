// Copyright 2026 The hittest (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hittest

import (
	"math"

	"github.com/gogama/hittest/packedrtree"
)

// coordDistance returns the Euclidean distance between two
// coordinates.
func coordDistance(p, q Coord) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// segmentDistance returns the distance from p to the closed line
// segment ab: the projection of p onto the infinite line through a
// and b is clamped to the segment, and the result is the distance
// from p to the clamped projection. A degenerate segment (a == b)
// collapses to point distance.
func segmentDistance(p, a, b Coord) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	den := dx*dx + dy*dy
	if den == 0 {
		return coordDistance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / den
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}

// lineDistance returns the minimum distance from p to a polyline. In
// addition to the per-segment minimum, every vertex is tested
// directly so that segment joints are always captured.
func lineDistance(p Coord, coords []Coord) float64 {
	min := math.Inf(1)
	for i := 0; i+1 < len(coords); i++ {
		if d := segmentDistance(p, coords[i], coords[i+1]); d < min {
			min = d
		}
	}
	for i := range coords {
		if d := coordDistance(p, coords[i]); d < min {
			min = d
		}
	}
	return min
}

// ringDistance returns the minimum distance from p to the boundary of
// a ring. The closing segment from the last coordinate back to the
// first is included whether or not the ring repeats its first
// coordinate.
func ringDistance(p Coord, ring []Coord) float64 {
	min := lineDistance(p, ring)
	n := len(ring)
	if n >= 2 && ring[0] != ring[n-1] {
		if d := segmentDistance(p, ring[n-1], ring[0]); d < min {
			min = d
		}
	}
	return min
}

// ringContains reports whether p lies inside the ring, using the
// even-odd (ray casting) rule. The ring is treated as closed whether
// or not it repeats its first coordinate. Points exactly on the
// boundary may fall on either side; hit detection does not depend on
// the boundary case because ringDistance reports 0 there.
func ringContains(p Coord, ring []Coord) bool {
	in := false
	n := len(ring)
	j := n - 1
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

// boxDistance returns the distance from p to the box: 0 if p is
// inside or on the boundary, otherwise the distance to the nearest
// point of the boundary.
func boxDistance(p Coord, b packedrtree.Box) float64 {
	var dx, dy float64
	if p.X < b.XMin {
		dx = b.XMin - p.X
	} else if p.X > b.XMax {
		dx = p.X - b.XMax
	}
	if p.Y < b.YMin {
		dy = b.YMin - p.Y
	} else if p.Y > b.YMax {
		dy = p.Y - b.YMax
	}
	return math.Hypot(dx, dy)
}

// geometryDistance returns the exact distance from p to a geometry.
// For polygons the distance is 0 anywhere inside the exterior ring;
// holes are not modeled. For extent geometries the distance is 0
// anywhere inside the box.
func geometryDistance(p Coord, g *Geometry) float64 {
	switch g.Type() {
	case TypePoint:
		return coordDistance(p, g.coords[0])
	case TypeLineString:
		return lineDistance(p, g.coords)
	case TypePolygon:
		ring := g.rings[0]
		if ringContains(p, ring) {
			return 0
		}
		return ringDistance(p, ring)
	default: // TypeExtent
		return boxDistance(p, g.bounds)
	}
}
