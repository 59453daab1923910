// Copyright 2026 The hittest (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hittest

import (
	"log/slog"
	"math"
	"sort"
	"sync"

	"github.com/gogama/hittest/packedrtree"
	"github.com/jonboulle/clockwork"
)

// A Feature is a caller-owned entity with a stable identity and
// exactly one geometry. The engine never mutates a feature and holds
// only non-owning references to it; any highlighting or restyling on
// hit is the caller's business, applied to the Feature values the
// engine returns.
//
// Geometry must return the same non-nil geometry for the lifetime of
// the feature's membership in a Detector. A nil geometry is an input
// contract violation reported as ErrNoGeometry.
type Feature interface {
	Geometry() *Geometry
}

// A Match is a single hit-detection result: a feature together with
// its exact distance, in map units, from the query coordinate.
type Match struct {
	// Feature is the matched feature, as supplied to New or Update.
	Feature Feature
	// Distance is the minimum distance observed between the query
	// coordinate and the feature's geometry.
	Distance float64
}

// Matches is a slice of Match structures which implements
// sort.Interface. The sort.Sort function will sort Matches in
// ascending order of Match.Distance.
type Matches []Match

// Len returns the length of the slice. It implements the
// corresponding method of sort.Interface.
func (ms Matches) Len() int {
	return len(ms)
}

// Less establishes an absolute ordering by ascending order of
// Match.Distance. It implements the corresponding method of
// sort.Interface.
func (ms Matches) Less(i, j int) bool {
	return ms[i].Distance < ms[j].Distance
}

// Swap swaps two elements of the slice. It implements the
// corresponding method of sort.Interface.
func (ms Matches) Swap(i, j int) {
	ms[i], ms[j] = ms[j], ms[i]
}

// Stats is a diagnostic snapshot of a Detector's internal sizes.
type Stats struct {
	// FeatureCount is the number of features currently tracked.
	FeatureCount int
	// IndexedItemCount is the number of index items the features
	// decomposed into.
	IndexedItemCount int
	// IndexDepth is the level count of the underlying R-tree, 0 when
	// the index is empty.
	IndexDepth int
}

// An item is the indexable unit a feature decomposes into: a bounding
// box plus a back-reference to the owning feature's slot. A segment
// item represents one edge of a line or polygon exterior ring and
// carries the raw endpoints for exact distance computation; its box
// is padded so thin or axis-aligned edges still have non-degenerate,
// queryable boxes. A non-segment item covers the feature's whole
// extent.
type item struct {
	box     packedrtree.Box
	slot    int
	segment bool
	a, b    Coord
}

// A Detector answers point hit-detection queries against a feature
// set. It owns a full-replacement spatial index over the decomposed
// feature items and a keyed debounce timer map for the asynchronous
// query path.
//
// A Detector assumes single-writer discipline: the caller must
// serialize Update and Clear against queries. Queries never mutate
// detector state. The timer map is internally synchronized because
// scheduled callbacks fire on their own goroutine.
type Detector struct {
	nodeSize uint16
	padFloor float64
	logger   *slog.Logger
	clock    clockwork.Clock

	features []Feature
	items    []item
	index    *packedrtree.Index

	timerMu  sync.Mutex
	timers   map[string]*debounceTimer
	seq      uint64
	inflight sync.WaitGroup
}

// New creates a Detector tracking the given feature set, which may be
// empty or nil, and eagerly builds the index. Returns an error
// wrapping ErrNoGeometry if any feature lacks a geometry.
func New(features []Feature, opts ...Option) (*Detector, error) {
	d := &Detector{
		padFloor: DefaultSegmentPadding,
		logger:   nopLogger(),
		clock:    clockwork.NewRealClock(),
		timers:   make(map[string]*debounceTimer),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.index = packedrtree.NewIndex(d.nodeSize)
	if err := d.Update(features); err != nil {
		return nil, err
	}
	return d, nil
}

// Update replaces the tracked feature set and fully rebuilds the
// index. There is no incremental maintenance: every feature-set
// change pays for a complete bulk rebuild, which the packed R-tree
// makes cheap enough at the intended scale.
//
// Update is all-or-nothing. If any feature lacks a geometry, an error
// wrapping ErrNoGeometry is returned and the previous feature set and
// index remain in effect. An empty or nil feature set yields an
// empty, queryable index.
func (d *Detector) Update(features []Feature) error {
	items, err := decompose(features, d.padFloor)
	if err != nil {
		return err
	}

	refs := make([]packedrtree.Ref, len(items))
	for i := range items {
		refs[i] = packedrtree.Ref{Box: items[i].box, Item: int64(i)}
	}
	if err = d.index.Load(refs); err != nil {
		return err
	}

	dup := make([]Feature, len(features))
	copy(dup, features)
	d.features = dup
	d.items = items
	d.logger.Debug(packageName+"index rebuilt",
		"features", len(d.features),
		"items", len(d.items),
		"depth", d.index.Depth())
	return nil
}

// decompose converts a feature set into index items: one whole-extent
// item per feature, plus one padded segment item per consecutive
// coordinate pair of every line string or polygon exterior ring with
// more than two coordinates. Single-segment lines keep only the
// whole-extent item, which already is the segment's box.
func decompose(features []Feature, padFloor float64) ([]item, error) {
	items := make([]item, 0, len(features))
	for slot, f := range features {
		if f == nil || f.Geometry() == nil {
			return nil, wrapErr("feature %d", ErrNoGeometry, slot)
		}
		g := f.Geometry()
		whole := item{box: g.Bounds(), slot: slot}
		if !finiteBox(&whole.box) {
			return nil, fmtErr("feature %d: non-finite extent %s", slot, whole.box.String())
		}
		items = append(items, whole)

		var coords []Coord
		closed := false
		switch g.Type() {
		case TypeLineString:
			coords = g.Coords()
		case TypePolygon:
			coords = g.ExteriorRing()
			closed = true
		}
		// A NaN vertex slips past the extent check because box
		// expansion skips NaN coordinates, so vertices are vetted
		// individually.
		for i := range coords {
			if !finiteCoord(coords[i]) {
				return nil, fmtErr("feature %d: non-finite coordinate (%g, %g)", slot, coords[i].X, coords[i].Y)
			}
		}
		if len(coords) <= 2 && !closed {
			continue
		}
		for i := 0; i+1 < len(coords); i++ {
			items = append(items, segmentItem(slot, coords[i], coords[i+1], padFloor))
		}
		if closed && coords[0] != coords[len(coords)-1] {
			items = append(items, segmentItem(slot, coords[len(coords)-1], coords[0], padFloor))
		}
	}
	return items, nil
}

// segmentItem builds the padded index item for one edge. The padding
// margin is max(10% of box width, 10% of box height, padFloor) on all
// four sides.
func segmentItem(slot int, a, b Coord, padFloor float64) item {
	box := packedrtree.Box{
		XMin: math.Min(a.X, b.X),
		YMin: math.Min(a.Y, b.Y),
		XMax: math.Max(a.X, b.X),
		YMax: math.Max(a.Y, b.Y),
	}
	pad := 0.1 * box.Width()
	if h := 0.1 * box.Height(); h > pad {
		pad = h
	}
	if padFloor > pad {
		pad = padFloor
	}
	box.Buffer(pad)
	return item{box: box, slot: slot, segment: true, a: a, b: b}
}

func finiteCoord(c Coord) bool {
	return !math.IsNaN(c.X) && !math.IsInf(c.X, 0) &&
		!math.IsNaN(c.Y) && !math.IsInf(c.Y, 0)
}

func finiteBox(b *packedrtree.Box) bool {
	return !math.IsNaN(b.XMin) && !math.IsInf(b.XMin, 0) &&
		!math.IsNaN(b.YMin) && !math.IsInf(b.YMin, 0) &&
		!math.IsNaN(b.XMax) && !math.IsInf(b.XMax, 0) &&
		!math.IsNaN(b.YMax) && !math.IsInf(b.YMax, 0)
}

// DetectAtCoordinate returns the features whose exact distance from c
// is within tolerance, nearest first. Each feature appears at most
// once, carrying the minimum distance observed across all of its
// candidate items. "Nothing within tolerance" is an empty result, not
// an error.
//
// Returns a validation error for a non-finite coordinate or a
// negative or NaN tolerance rather than letting either propagate
// into box comparisons.
func (d *Detector) DetectAtCoordinate(c Coord, tolerance float64) (Matches, error) {
	if math.IsNaN(c.X) || math.IsInf(c.X, 0) || math.IsNaN(c.Y) || math.IsInf(c.Y, 0) {
		return nil, fmtErr("non-finite query coordinate (%g, %g)", c.X, c.Y)
	}
	if math.IsNaN(tolerance) || tolerance < 0 {
		return nil, fmtErr("invalid tolerance %g (must be >= 0)", tolerance)
	}

	qb := packedrtree.Box{
		XMin: c.X - tolerance,
		YMin: c.Y - tolerance,
		XMax: c.X + tolerance,
		YMax: c.Y + tolerance,
	}
	rs := d.index.Search(qb)

	ms := make(Matches, 0, len(rs))
	best := make(map[int]int, len(rs)) // feature slot -> index into ms
	for i := range rs {
		it := &d.items[rs[i].Item]
		var dist float64
		if it.segment {
			dist = segmentDistance(c, it.a, it.b)
		} else {
			dist = geometryDistance(c, d.features[it.slot].Geometry())
		}
		if dist > tolerance {
			continue
		}
		if k, ok := best[it.slot]; ok {
			// A feature contributes several items. Keep the true
			// minimum distance, not the first observed one.
			if dist < ms[k].Distance {
				ms[k].Distance = dist
			}
			continue
		}
		best[it.slot] = len(ms)
		ms = append(ms, Match{Feature: d.features[it.slot], Distance: dist})
	}
	sort.Sort(ms)
	return ms, nil
}

// NearestAtCoordinate returns the single nearest feature within
// tolerance of c, or nil if no feature is within tolerance.
func (d *Detector) NearestAtCoordinate(c Coord, tolerance float64) (*Match, error) {
	ms, err := d.DetectAtCoordinate(c, tolerance)
	if err != nil || len(ms) == 0 {
		return nil, err
	}
	m := ms[0]
	return &m, nil
}

// Stats returns a diagnostic snapshot of the detector's internal
// sizes. It carries no contract beyond reflecting the current state.
func (d *Detector) Stats() Stats {
	return Stats{
		FeatureCount:     len(d.features),
		IndexedItemCount: d.index.Len(),
		IndexDepth:       d.index.Depth(),
	}
}

// Bounds returns the extent of the tracked feature set, or the empty
// box if no features are tracked.
func (d *Detector) Bounds() packedrtree.Box {
	return d.index.Bounds()
}

// Clear resets the detector to the just-constructed empty state: the
// index is emptied, the tracked features are dropped, and every
// pending debounce timer is cancelled.
func (d *Detector) Clear() {
	d.ClearDebounceTimers()
	d.index.Clear()
	d.features = nil
	d.items = nil
}
