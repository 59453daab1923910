// Copyright 2026 The hittest (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package hittest is a spatial hit-detection engine: given a mutable
// collection of 2-D geometric features, it answers "which features
// lie within tolerance of this query point?" fast enough to run on
// every pointer move against tens of thousands of features.
//
// The engine is a Detector wrapping a packed Hilbert R-Tree (package
// packedrtree). Features are decomposed into indexable items: a
// whole-extent item per feature, plus one padded item per line or
// polygon-ring segment. A query expands the coordinate by the
// tolerance into a box, collects candidate items from the index, then
// refines each candidate with an exact geometric distance.
//
// The Detector is single-writer: Update and Clear must be serialized
// against queries by the caller. The debounced query path is the only
// asynchronous surface, and ClearDebounceTimers must be called before
// tearing down a Detector or the View it queries.
package hittest
