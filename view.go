// Copyright 2026 The hittest (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hittest

// A Pixel is a position in screen units.
type Pixel struct {
	X float64
	Y float64
}

// A View converts between screen space and map space. It is the only
// collaborator the pixel-space query paths depend on; the engine
// never reaches into view internals beyond these two queries. The
// coordinate-space query path has no dependency on it at all.
type View interface {
	// PixelToCoordinate converts a screen pixel to a map coordinate
	// under the view's current transform.
	PixelToCoordinate(p Pixel) Coord
	// Resolution returns the view's current resolution in map units
	// per pixel.
	Resolution() float64
}

// DetectAtPixel converts the pixel to a map coordinate and the pixel
// tolerance (WithHitTolerance, default DefaultHitTolerance) to a
// map-unit tolerance using the view's current transform, then
// delegates to DetectAtCoordinate. Panics if view is nil.
func (d *Detector) DetectAtPixel(view View, p Pixel, opts ...DetectOption) (Matches, error) {
	if view == nil {
		textPanic("nil view")
	}
	cfg := newDetectConfig(opts)
	return d.detectAtPixel(view, p, &cfg)
}

func (d *Detector) detectAtPixel(view View, p Pixel, cfg *detectConfig) (Matches, error) {
	c := view.PixelToCoordinate(p)
	return d.DetectAtCoordinate(c, cfg.hitTolerance*view.Resolution())
}
