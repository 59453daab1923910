// Copyright 2026 The hittest (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hittest

import (
	"io"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// DefaultSegmentPadding is the absolute floor, in map units, of
	// the margin added around each segment item's box. The relative
	// margin (10% of the larger box dimension) collapses to zero for
	// horizontal, vertical and degenerate segments; the floor keeps
	// their boxes non-degenerate and queryable.
	DefaultSegmentPadding = 1e-6

	// DefaultHitTolerance is the pixel tolerance used by the
	// pixel-space query paths when WithHitTolerance is not given.
	DefaultHitTolerance = 5.0

	// DefaultDebounceDelay is the quiescence window used by
	// DetectAtPixelDebounced when WithDebounceDelay is not given.
	DefaultDebounceDelay = 50 * time.Millisecond

	// defaultDebounceKey is the shared timer key used when
	// WithDebounceKey is not given.
	defaultDebounceKey = "hittest"
)

// An Option configures a Detector at construction time.
type Option func(*Detector)

// WithNodeSize configures the child node count of the underlying
// R-tree. A value of 0 selects packedrtree.DefaultNodeSize.
func WithNodeSize(nodeSize uint16) Option {
	return func(d *Detector) {
		d.nodeSize = nodeSize
	}
}

// WithSegmentPadding configures the absolute floor, in map units, of
// the padding margin around segment item boxes. If floor is not
// positive, DefaultSegmentPadding is used.
func WithSegmentPadding(floor float64) Option {
	return func(d *Detector) {
		if floor <= 0 {
			floor = DefaultSegmentPadding
		}
		d.padFloor = floor
	}
}

// WithLogger configures structured logging for the Detector. Index
// rebuilds are logged at debug level. If l is nil, logging is
// disabled, which is also the default.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) {
		if l == nil {
			l = nopLogger()
		}
		d.logger = l
	}
}

// WithClock configures the clock used to schedule debounced queries.
// The default is the real wall clock; tests substitute a fake clock
// so debounce behavior can be driven deterministically.
func WithClock(c clockwork.Clock) Option {
	return func(d *Detector) {
		if c == nil {
			c = clockwork.NewRealClock()
		}
		d.clock = c
	}
}

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// detectConfig carries the per-query settings of the pixel-space
// query paths.
type detectConfig struct {
	hitTolerance float64
	delay        time.Duration
	key          string
}

// A DetectOption configures a single pixel-space query.
type DetectOption func(*detectConfig)

func newDetectConfig(opts []DetectOption) detectConfig {
	cfg := detectConfig{
		hitTolerance: DefaultHitTolerance,
		delay:        DefaultDebounceDelay,
		key:          defaultDebounceKey,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithHitTolerance configures the query tolerance in pixels. It is
// converted to map units with the view's resolution at query time. A
// negative value is rejected by the underlying coordinate query.
func WithHitTolerance(pixels float64) DetectOption {
	return func(cfg *detectConfig) {
		cfg.hitTolerance = pixels
	}
}

// WithDebounceDelay configures the quiescence window of a debounced
// query. A non-positive delay selects DefaultDebounceDelay. Ignored
// by the synchronous query paths.
func WithDebounceDelay(delay time.Duration) DetectOption {
	return func(cfg *detectConfig) {
		if delay <= 0 {
			delay = DefaultDebounceDelay
		}
		cfg.delay = delay
	}
}

// WithDebounceKey configures the timer key of a debounced query.
// Queries with distinct keys debounce independently; queries sharing
// a key displace each other's pending timers. Ignored by the
// synchronous query paths.
func WithDebounceKey(key string) DetectOption {
	return func(cfg *detectConfig) {
		cfg.key = key
	}
}
