// Copyright 2026 The hittest (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package packedrtree

import (
	"fmt"
	"math"
)

// A Ref is a single item within the PackedRTree and represents a
// reference to an item owned by the caller. Each Ref consists of an
// opaque item number, meaningful only to the caller, plus a Box
// representing the bounding box of the item.
type Ref struct {
	Box

	// Item is the referenced item's number. The tree never interprets
	// it.
	Item int64
}

// String returns a compact text representation of the feature
// reference.
func (r Ref) String() string {
	return fmt.Sprintf("Ref{%s,Item:%d}", r.Box.String(), r.Item)
}

// A node is a private version of Ref used to (hopefully) reduce
// confusion. A leaf node is exactly the same as a Ref and has the
// same meaning. A non-leaf node is subtly different: the Box is the
// extent of the entire subtree rooted at the non-leaf node; and the
// Item field holds the node index of the node's first child node.
type node struct {
	Ref
}

func validateParams(numRefs int, nodeSize uint16) {
	if numRefs < 1 {
		textPanic("empty tree not allowed (num refs must be > 0)")
	} else if nodeSize < 2 {
		textPanic("node size must be at least 2")
	}
}

// A levelRange represents the range of node indices that comprise a
// level. Each levelRange is a closed/open node index pair [start, end)
// where start is the index (into packedRTree's nodes list) of the
// first node in the level and end is the index that is one past the
// last node in the level.
type levelRange struct {
	start, end int
}

// levelify creates the list of levelRange structures which
// deterministically results from a given leaf node count (numRefs) and
// child node count (nodeSize).
//
// For example, assume numRefs = 4, nodeSize = 2. The output of this
// function will be [[3, 7], [1, 3], [0, 1]], where the first item in
// the list represents the leaf node level, and the last item in the
// list is the root level.
func levelify(numRefs, nodeSize int) ([]levelRange, error) {
	// numInternal is the number of internal nodes in the tree, a
	// number strictly less than numRefs.
	var numInternal int

	// Generate a list of node counts per level, in the same order as
	// the final levelRange list, i.e. the leaf level 0 is first and
	// the root level is last.
	//
	// Keeping with the example numRefs = 4, nodeSize = 2, the result
	// of this logic is nodesPerLevel = [4, 2, 1].
	nodesThisLevel := numRefs
	nodesPerLevel := make([]int, 1, 16)
	nodesPerLevel[0] = nodesThisLevel
	for {
		nodesThisLevel = (nodesThisLevel + nodeSize - 1) / nodeSize
		nodesPerLevel = append(nodesPerLevel, nodesThisLevel)
		numInternal += nodesThisLevel
		if nodesThisLevel == 1 {
			break
		}
	}

	// Sum up the total number of nodes, ensuring it does not
	// overflow int.
	numNodes, err := totalNodes(numRefs, numInternal)
	if err != nil {
		return nil, err
	}

	// Generate a list of node start indices per level, in the same
	// order as the final levelRange list.
	//
	// Keeping with the example numRefs = 4, nodeSize = 2, the result
	// of this logic is levelIndices = [3, 1, 0].
	levelIndices := make([]int, len(nodesPerLevel))
	nodesRemaining := numNodes
	for i := range nodesPerLevel {
		nodesRemaining -= nodesPerLevel[i]
		levelIndices[i] = nodesRemaining
	}

	// Generate and return the final list of levelRange structures.
	levels := make([]levelRange, len(levelIndices))
	for i := range levelIndices {
		levels[i].start = levelIndices[i]
		levels[i].end = levelIndices[i] + nodesPerLevel[i]
	}
	return levels, nil
}

// totalNodes sums numRefs and numInternal, returning an error if
// integer overflow occurs.
func totalNodes(numRefs, numInternal int) (n int, err error) {
	if numInternal > math.MaxInt-numRefs {
		err = textErr("total node count overflows int")
	} else {
		n = numRefs + numInternal
	}
	return
}

// A ticket is a pending work item in the tree search loop: the index
// of the first node to search, and the R-Tree level that node belongs
// to. Recall that level 0 contains the leaf nodes.
type ticket struct {
	nodeIndex int
	level     int
}

// A ticketStack is a LIFO collection of pending work items in the
// tree search loop.
type ticketStack []ticket

func (ts *ticketStack) push(t ticket) {
	*ts = append(*ts, t)
}

func (ts *ticketStack) pop() ticket {
	old := *ts
	n := len(old)
	x := old[n-1]
	*ts = old[0 : n-1]
	return x
}

// Result is a single index search result. A Result's fields can be
// used to locate the corresponding item in the Ref list passed to New
// when creating the PackedRTree.
type Result struct {
	// Item is the result item's number, as given in the matched Ref.
	Item int64
	// RefIndex is the index of the matched reference in the
	// Hilbert-sorted list of Ref values passed to New.
	RefIndex int
}

// Results is a slice of Result structures which implements
// sort.Interface. The sort.Sort function will sort Results in
// ascending order of Result.Item.
type Results []Result

// Len returns the length of the slice. It implements the
// corresponding method of sort.Interface.
func (rs Results) Len() int {
	return len(rs)
}

// Less establishes an absolute ordering by ascending order of
// Result.Item. It implements the corresponding method of
// sort.Interface.
func (rs Results) Less(i, j int) bool {
	return rs[i].Item < rs[j].Item
}

// Swap swaps two elements of the slice. It implements the
// corresponding method of sort.Interface.
func (rs Results) Swap(i, j int) {
	rs[i], rs[j] = rs[j], rs[i]
}

// PackedRTree is a packed Hilbert R-Tree. It is built once from a
// bulk load and is immutable afterward.
type PackedRTree struct {
	// numRefs is the number of leaf nodes, i.e. Ref values, in the
	// tree.
	numRefs int
	// nodeSize is the number of child nodes per parent node.
	nodeSize int
	// levels is the list of levelRange boundaries. The leaf nodes are
	// at level 0 and the root node is at len(levels)-1.
	levels []levelRange
	// nodes is the complete list of nodes in the tree, including
	// internal and leaf nodes.
	nodes []node
}

// New creates a new packed Hilbert R-Tree from a non-empty,
// Hilbert-sorted list of item references and a given R-Tree node
// size. Panics if the reference list is empty or node size is less
// than 2.
//
// Use HilbertSort to sort the item references. If the input slice is
// not Hilbert-sorted, the new PackedRTree still finds every
// intersecting reference, but search performance degrades.
func New(refs []Ref, nodeSize uint16) (*PackedRTree, error) {
	validateParams(len(refs), nodeSize)

	levels, err := levelify(len(refs), int(nodeSize))
	if err != nil {
		return nil, err
	}

	prt := &PackedRTree{
		numRefs:  len(refs),
		nodeSize: int(nodeSize),
		levels:   levels,
		nodes:    make([]node, levels[0].end),
	}

	// Save copies of the leaf nodes.
	i := prt.levels[0].start
	for j := range refs {
		prt.nodes[i] = node{refs[j]}
		i++
	}
	// Generate the internal nodes, one level at a time, bottom up.
	for i = 0; i < len(prt.levels)-1; i++ {
		level := prt.levels[i]
		nodeIndex := level.start
		parentIndex := prt.levels[i+1].start
		for nodeIndex < level.end {
			parent := &prt.nodes[parentIndex]
			*parent = node{Ref: Ref{Box: EmptyBox, Item: int64(nodeIndex)}}
			var j int
			for {
				parent.Expand(&prt.nodes[nodeIndex].Box)
				j++
				nodeIndex++
				if j == prt.nodeSize || nodeIndex == level.end {
					break
				}
			}
			parentIndex++
		}
	}
	return prt, nil
}

// Bounds returns the bounding box around all items referenced by the
// packed Hilbert R-Tree.
func (prt *PackedRTree) Bounds() Box {
	return prt.nodes[0].Box
}

// NumRefs returns the number of item references stored in the packed
// Hilbert R-Tree.
func (prt *PackedRTree) NumRefs() int {
	return prt.numRefs
}

// NodeSize returns the child node count of the packed Hilbert R-Tree.
func (prt *PackedRTree) NodeSize() uint16 {
	return uint16(prt.nodeSize)
}

// Depth returns the number of levels in the packed Hilbert R-Tree,
// counting both the leaf level and the root level.
func (prt *PackedRTree) Depth() int {
	return len(prt.levels)
}

// String returns a summary description of the packed Hilbert R-Tree.
func (prt *PackedRTree) String() string {
	b := prt.Bounds()
	return fmt.Sprintf("PackedRTree{Bounds:%s,NumRefs:%d,NodeSize:%d}", b.String(), prt.numRefs, prt.nodeSize)
}

// Search searches the packed Hilbert R-Tree for qualified matches
// whose bounding rectangles intersect the query box. The order of the
// search results is not defined.
func (prt *PackedRTree) Search(b Box) Results {
	q := make(ticketStack, 1)
	q[0] = ticket{nodeIndex: 0, level: len(prt.levels) - 1}
	r := make(Results, 0)

	for {
		// Pop the next work ticket from the top of the stack.
		t := q.pop()
		// Find the end node index to search this iteration and decide
		// if the target nodes to search are leaves.
		end := t.nodeIndex + prt.nodeSize
		if prt.levels[t.level].end < end {
			end = prt.levels[t.level].end
		}
		isLeafLevel := t.nodeIndex >= prt.levels[0].start
		// Search the nodes.
		for pos := t.nodeIndex; pos < end; pos++ {
			n := &prt.nodes[pos]
			if !b.intersects(&n.Box) {
				continue
			} else if isLeafLevel {
				r = append(r, Result{Item: n.Item, RefIndex: pos - prt.levels[0].start})
			} else {
				q.push(ticket{nodeIndex: int(n.Item), level: t.level - 1})
			}
		}
		// Stop and return if there is no remaining work.
		if len(q) == 0 {
			return r
		}
	}
}
