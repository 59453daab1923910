// Copyright 2026 The hittest (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package packedrtree provides a packed Hilbert R-Tree: a static,
// bulk-loaded spatial index mapping axis-aligned bounding boxes to
// opaque item references.
//
// The tree itself (PackedRTree) is immutable once built. The Index
// type wraps it with a full-replacement bulk load so callers that
// rebuild on every data change can treat it as a mutable container.
package packedrtree
