// Copyright 2026 The hittest (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hittest

import (
	"github.com/jonboulle/clockwork"
)

// A debounceTimer is the at-most-one pending scheduled query for one
// timer key. The sequence number distinguishes a live timer from a
// stale one whose Stop raced with its own firing: a fired callback
// only runs if its sequence still owns the key's map entry.
type debounceTimer struct {
	timer clockwork.Timer
	seq   uint64
}

// DetectAtPixelDebounced schedules DetectAtPixel to run after the
// debounce delay (WithDebounceDelay) of quiescence for the debounce
// key (WithDebounceKey), then passes the result to callback. A new
// call with the same key before the delay elapses cancels the pending
// query and reschedules: classic trailing-edge debounce, one
// independent timer per key. Calls with distinct keys do not affect
// each other.
//
// The pixel and tolerance are captured now, at schedule time; the
// pixel-to-coordinate conversion runs at fire time against the view's
// then-current transform. The callback fires on its own goroutine.
//
// Panics if view or callback is nil. Call ClearDebounceTimers before
// tearing down the detector or the view.
func (d *Detector) DetectAtPixelDebounced(view View, p Pixel, callback func(Matches, error), opts ...DetectOption) {
	if view == nil {
		textPanic("nil view")
	}
	if callback == nil {
		textPanic("nil callback")
	}
	cfg := newDetectConfig(opts)

	d.timerMu.Lock()
	defer d.timerMu.Unlock()

	if old, ok := d.timers[cfg.key]; ok {
		old.timer.Stop()
	}
	d.seq++
	dt := &debounceTimer{seq: d.seq}
	key, seq := cfg.key, d.seq
	dt.timer = d.clock.AfterFunc(cfg.delay, func() {
		if !d.claimTimer(key, seq) {
			return
		}
		defer d.inflight.Done()
		callback(d.detectAtPixel(view, p, &cfg))
	})
	d.timers[key] = dt
}

// claimTimer removes the timer (key, seq) from the timer map and
// reports whether it was still registered. A fired callback whose
// timer was cancelled or displaced after the firing goroutine was
// already committed finds the map entry gone, or owned by a newer
// sequence, and must not run.
//
// A successful claim registers the query with the in-flight wait
// group before the timer map entry disappears. Both happen under
// timerMu, so ClearDebounceTimers always observes a fired query in
// one of two states: still claimable (and cancellable by emptying the
// map) or already counted in the wait group.
func (d *Detector) claimTimer(key string, seq uint64) bool {
	d.timerMu.Lock()
	defer d.timerMu.Unlock()
	dt, ok := d.timers[key]
	if !ok || dt.seq != seq {
		return false
	}
	delete(d.timers, key)
	d.inflight.Add(1)
	return true
}

// ClearDebounceTimers cancels every pending debounced query across
// all keys. It is idempotent. When it returns, no previously
// scheduled callback is running or will run: pending timers are
// stopped, a timer that already fired but has not claimed its map
// entry loses the claim and does nothing, and a claimed query that is
// already executing is waited for.
//
// Callers must invoke ClearDebounceTimers before disposing the
// detector or any view captured by a pending query; a timer that
// fires later must not be allowed to dereference a torn-down view.
// Do not call ClearDebounceTimers (or Clear) from within a debounced
// callback: waiting for the callback's own completion would deadlock.
func (d *Detector) ClearDebounceTimers() {
	d.timerMu.Lock()
	for _, dt := range d.timers {
		dt.timer.Stop()
	}
	d.timers = make(map[string]*debounceTimer)
	d.timerMu.Unlock()
	d.inflight.Wait()
}
