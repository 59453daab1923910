// Copyright 2026 The hittest (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package packedrtree

import "fmt"

// DefaultNodeSize is the R-Tree child node count used by NewIndex
// when no explicit node size is given.
const DefaultNodeSize = 16

// An Index is a full-replacement spatial index over item references.
// Internally it is a packed Hilbert R-Tree which is discarded and
// rebuilt from scratch on every Load. There is no incremental insert
// or delete: callers whose data changes reload the whole reference
// set, which is the intended access pattern for infrequent data
// changes and frequent searches.
//
// The zero Index is empty, uses DefaultNodeSize, and is ready to use.
// An Index is not safe for concurrent mutation; the caller must
// serialize Load and Clear against Search.
type Index struct {
	nodeSize uint16
	refs     []Ref
	tree     *PackedRTree
}

// NewIndex creates an empty Index whose trees are built with the
// given node size. A nodeSize of 0 selects DefaultNodeSize. Panics if
// nodeSize is 1, which can never form a tree.
func NewIndex(nodeSize uint16) *Index {
	if nodeSize == 0 {
		nodeSize = DefaultNodeSize
	} else if nodeSize < 2 {
		textPanic("node size must be at least 2")
	}
	return &Index{nodeSize: nodeSize}
}

// Load replaces the entire contents of the index with the given item
// references in one bulk operation. The input slice is copied and
// Hilbert-sorted internally, so the caller's slice is not modified
// and may be reused. Loading an empty or nil slice empties the index.
func (ix *Index) Load(refs []Ref) error {
	if len(refs) == 0 {
		ix.Clear()
		return nil
	}

	sorted := make([]Ref, len(refs))
	copy(sorted, refs)

	extent := EmptyBox
	for i := range sorted {
		extent.Expand(&sorted[i].Box)
	}
	HilbertSort(sorted, extent)

	tree, err := New(sorted, ix.effectiveNodeSize())
	if err != nil {
		return err
	}
	ix.refs = sorted
	ix.tree = tree
	return nil
}

// Search returns all item references whose boxes intersect the query
// box. The order of the results is not defined. Searching an empty
// index returns an empty result set.
func (ix *Index) Search(b Box) Results {
	if ix.tree == nil {
		return Results{}
	}
	return ix.tree.Search(b)
}

// Clear removes all item references from the index. It is safe to
// call repeatedly.
func (ix *Index) Clear() {
	ix.refs = nil
	ix.tree = nil
}

// All returns the item references currently held by the index, in
// internal (Hilbert) order. The returned slice is owned by the index
// and must not be modified.
func (ix *Index) All() []Ref {
	return ix.refs
}

// Len returns the number of item references currently held by the
// index.
func (ix *Index) Len() int {
	return len(ix.refs)
}

// Depth returns the number of levels in the current tree, or 0 if the
// index is empty.
func (ix *Index) Depth() int {
	if ix.tree == nil {
		return 0
	}
	return ix.tree.Depth()
}

// Bounds returns the bounding box around all indexed item references,
// or EmptyBox if the index is empty.
func (ix *Index) Bounds() Box {
	if ix.tree == nil {
		return EmptyBox
	}
	return ix.tree.Bounds()
}

// String returns a summary description of the index.
func (ix *Index) String() string {
	b := ix.Bounds()
	return fmt.Sprintf("Index{Bounds:%s,Len:%d,NodeSize:%d}", b.String(), ix.Len(), ix.effectiveNodeSize())
}

func (ix *Index) effectiveNodeSize() uint16 {
	if ix.nodeSize == 0 {
		return DefaultNodeSize
	}
	return ix.nodeSize
}
