// Copyright 2026 The hittest (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hittest

import (
	"fmt"
)

// String returns a summary description of the geometry.
func (g *Geometry) String() string {
	b := g.Bounds()
	return fmt.Sprintf("Geometry{Type:%s,Bounds:%s}", g.Type(), b.String())
}

// String returns a compact text representation of the match.
func (m *Match) String() string {
	return fmt.Sprintf("Match{Feature:%v,Distance:%.8g}", m.Feature, m.Distance)
}

// String returns a compact text representation of the stats snapshot.
func (s Stats) String() string {
	return fmt.Sprintf("Stats{Features:%d,Items:%d,Depth:%d}", s.FeatureCount, s.IndexedItemCount, s.IndexDepth)
}
